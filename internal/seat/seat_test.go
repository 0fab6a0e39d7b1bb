package seat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse("A01")
	require.NoError(t, err)
	assert.Equal(t, Seat{Row: 1, Col: 1}, s)

	s, err = Parse("J20")
	require.NoError(t, err)
	assert.Equal(t, Seat{Row: 10, Col: 20}, s)

	s, err = Parse("Z52")
	require.NoError(t, err)
	assert.Equal(t, Seat{Row: 26, Col: 52}, s)

	// Column digits need no padding on input.
	s, err = Parse("B7")
	require.NoError(t, err)
	assert.Equal(t, Seat{Row: 2, Col: 7}, s)
}

func TestParseFailures(t *testing.T) {
	// Empty input and non-numeric suffixes are format failures, checked
	// before the row letter.
	for _, text := range []string{"", "A", "Axx", "a1x", "B 4"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrFormat, "input %q", text)
	}

	// With a parseable column, anything that is not an upper-case letter
	// in the first position is a row failure.
	for _, text := range []string{"a01", "z10", "101", "@05"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrRow, "input %q", text)
	}

	// Column bound failures come last.
	_, err := Parse("A00")
	assert.ErrorIs(t, err, ErrCol)
	_, err = Parse("A53")
	assert.ErrorIs(t, err, ErrCol)
	_, err = Parse("A-1")
	assert.ErrorIs(t, err, ErrCol)
}

func TestStringRoundTrip(t *testing.T) {
	for row := 1; row <= MaxRow; row++ {
		for col := 1; col <= MaxCol; col++ {
			s := Seat{Row: row, Col: col}
			parsed, err := Parse(s.String())
			require.NoError(t, err, "seat %s", s)
			assert.Equal(t, s, parsed)
		}
	}
}

func TestStringPadsColumn(t *testing.T) {
	assert.Equal(t, "A02", Seat{Row: 1, Col: 2}.String())
	assert.Equal(t, "C10", Seat{Row: 3, Col: 10}.String())
	assert.Equal(t, "Z52", Seat{Row: 26, Col: 52}.String())
}

func TestRowLetter(t *testing.T) {
	assert.Equal(t, "A", RowLetter(1))
	assert.Equal(t, "Z", RowLetter(26))
	assert.Equal(t, "", RowLetter(0))
	assert.Equal(t, "", RowLetter(27))
	assert.Equal(t, "", RowLetter(-3))
}

func TestRowNumber(t *testing.T) {
	assert.Equal(t, 1, RowNumber('A'))
	assert.Equal(t, 26, RowNumber('Z'))
	assert.Equal(t, 0, RowNumber('a'))
	assert.Equal(t, 0, RowNumber('1'))
	assert.Equal(t, 0, RowNumber('@'))
}

func ExampleParse() {
	s, _ := Parse("J20")
	fmt.Println(s.Row, s.Col, s)
	// Output: 10 20 J20
}
