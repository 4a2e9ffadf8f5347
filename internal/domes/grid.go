package domes

import "fmt"

// SeatingGrid is the (rows, seatsPerRow) shape of a dome. Both dimensions are
// at least 1 for any persisted dome; the validator itself accepts arbitrary
// integers from untrusted callers.
type SeatingGrid struct {
	Rows        int
	SeatsPerRow int
}

// Capacity returns the number of seats in the grid.
func (g SeatingGrid) Capacity() int {
	return g.Rows * g.SeatsPerRow
}

// SeatError reports a seat coordinate outside the grid. Field is "row" or
// "seat" so API callers can address the offending dimension.
type SeatError struct {
	Field string
	Value int
	Max   int
}

func (e *SeatError) Error() string {
	return fmt.Sprintf("%s number must be in available range: (1, %d), got %d", e.Field, e.Max, e.Value)
}

// ValidateSeat checks that (row, seat) lies within the grid. Dimensions are
// checked in order, row first, and the first violation is reported.
func ValidateSeat(row, seat int, grid SeatingGrid) error {
	for _, check := range []struct {
		value int
		field string
		max   int
	}{
		{row, "row", grid.Rows},
		{seat, "seat", grid.SeatsPerRow},
	} {
		if check.value < 1 || check.value > check.max {
			return &SeatError{
				Field: check.field,
				Value: check.value,
				Max:   check.max,
			}
		}
	}
	return nil
}
