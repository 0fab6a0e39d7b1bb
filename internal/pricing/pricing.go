// Package pricing derives per-seat prices and room income from room
// geometry. All rules are exact integer arithmetic; the only division is
// the integer half-split used for large rooms.
package pricing

import "github.com/agenson/cinema-booking/internal/seat"

// Seat prices in whole currency units. Rooms with more than largeRoom
// seats charge the front half at the premium rate.
const (
	basePrice    = 10
	premiumPrice = 12
	largeRoom    = 50
)

// Capacity returns the number of seats in a rows x cols grid.
func Capacity(rows, cols int) int {
	return rows * cols
}

// Price returns the price of one seat in a room. In rooms above the
// largeRoom threshold, seats in the front half (row <= rows/2, integer
// division) cost the premium rate; every other seat costs the base rate.
func Price(rows, cols int, s seat.Seat) int {
	if Capacity(rows, cols) > largeRoom && s.Row <= rows/2 {
		return premiumPrice
	}
	return basePrice
}

// PotentialIncome returns the income of a fully ticketed room. Large rooms
// assume an even split between the two tiers: (capacity/2) * (10+12) with
// integer division. Small rooms are capacity * 10.
func PotentialIncome(rows, cols int) int {
	capacity := Capacity(rows, cols)
	if capacity > largeRoom {
		return (capacity / 2) * (basePrice + premiumPrice)
	}
	return capacity * basePrice
}

// Income sums the price of every currently ticketed seat in the room.
func Income(rows, cols int, ticketed []seat.Seat) int {
	total := 0
	for _, s := range ticketed {
		total += Price(rows, cols, s)
	}
	return total
}
