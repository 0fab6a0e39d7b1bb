// Package seat defines the seat coordinate value type used throughout the
// booking domain. A coordinate addresses one seat inside a room's grid by
// row letter (A..Z) and column number (1..52). Coordinates are immutable
// values compared by (row, column).
package seat

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxRow and MaxCol bound the coordinate space. Rooms may be smaller; the
// per-room geometry check happens in the reservation engine.
const (
	MaxRow = 26
	MaxCol = 52
)

// Sentinel errors for malformed seat text. Each carries the fixed message
// shown to callers; handlers match them with errors.Is.
var (
	ErrFormat = errors.New("invalid format for seat")
	ErrRow    = errors.New("seat row must be between A and Z")
	ErrCol    = errors.New("seat column is out of boundary")
)

// Seat is a value type: row and column are both 1-based.
type Seat struct {
	Row int // 1..26, rendered as A..Z
	Col int // 1..52, rendered zero-padded
}

// Parse converts text like "A01" or "J20" into a Seat. The first rune must
// be a row letter and the remainder a column integer. Validation order:
// empty/garbage suffix, then row, then column bounds.
func Parse(text string) (Seat, error) {
	if len(text) == 0 {
		return Seat{}, ErrFormat
	}
	row := RowNumber(rune(text[0]))
	col, err := strconv.Atoi(text[1:])
	if err != nil {
		return Seat{}, ErrFormat
	}
	if row < 1 {
		return Seat{}, ErrRow
	}
	if col < 1 || col > MaxCol {
		return Seat{}, ErrCol
	}
	return Seat{Row: row, Col: col}, nil
}

// String renders the seat as row letter plus two-digit column, e.g.
// {1,2} -> "A02". Parsing the result yields the original value.
func (s Seat) String() string {
	return fmt.Sprintf("%s%02d", RowLetter(s.Row), s.Col)
}

// RowLetter maps 1..26 to "A".."Z". Out-of-range input returns "" so that
// range-scanning callers can probe without error handling.
func RowLetter(n int) string {
	if n < 1 || n > MaxRow {
		return ""
	}
	return string(rune('A' + n - 1))
}

// RowNumber maps 'A'..'Z' to 1..26, returning 0 for any other rune.
func RowNumber(c rune) int {
	if c < 'A' || c > 'Z' {
		return 0
	}
	return int(c-'A') + 1
}
