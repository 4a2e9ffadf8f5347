package domes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatingGridCapacity(t *testing.T) {
	tests := []struct {
		name     string
		grid     SeatingGrid
		expected int
	}{
		{"small dome", SeatingGrid{Rows: 2, SeatsPerRow: 3}, 6},
		{"single seat", SeatingGrid{Rows: 1, SeatsPerRow: 1}, 1},
		{"large dome", SeatingGrid{Rows: 12, SeatsPerRow: 20}, 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.grid.Capacity())
		})
	}
}

func TestValidateSeat(t *testing.T) {
	grid := SeatingGrid{Rows: 2, SeatsPerRow: 3}

	t.Run("accepts every seat inside the grid", func(t *testing.T) {
		for row := 1; row <= grid.Rows; row++ {
			for seat := 1; seat <= grid.SeatsPerRow; seat++ {
				assert.NoError(t, ValidateSeat(row, seat, grid))
			}
		}
	})

	tests := []struct {
		name      string
		row, seat int
		field     string
		max       int
		value     int
	}{
		{"row above range", 3, 1, "row", 2, 3},
		{"row zero", 0, 1, "row", 2, 0},
		{"row negative", -1, 2, "row", 2, -1},
		{"seat above range", 1, 4, "seat", 3, 4},
		{"seat zero", 2, 0, "seat", 3, 0},
		{"row reported before seat when both invalid", 5, 9, "row", 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeat(tt.row, tt.seat, grid)
			require.Error(t, err)

			var seatErr *SeatError
			require.True(t, errors.As(err, &seatErr))
			assert.Equal(t, tt.field, seatErr.Field)
			assert.Equal(t, tt.max, seatErr.Max)
			assert.Equal(t, tt.value, seatErr.Value)
		})
	}
}

func TestSeatErrorMessage(t *testing.T) {
	err := ValidateSeat(3, 1, SeatingGrid{Rows: 2, SeatsPerRow: 3})
	require.Error(t, err)
	assert.Equal(t, "row number must be in available range: (1, 2), got 3", err.Error())

	err = ValidateSeat(1, 7, SeatingGrid{Rows: 2, SeatsPerRow: 3})
	require.Error(t, err)
	assert.Equal(t, "seat number must be in available range: (1, 3), got 7", err.Error())
}

func TestDomeCapacityDerived(t *testing.T) {
	dome := PlanetariumDome{Name: "Small Dome", Rows: 2, SeatsPerRow: 3}
	assert.Equal(t, 6, dome.Capacity())
	assert.Equal(t, SeatingGrid{Rows: 2, SeatsPerRow: 3}, dome.Grid())

	resp := dome.ToResponse()
	assert.Equal(t, 6, resp.Capacity)
}
