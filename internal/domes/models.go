package domes

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanetariumDome is a venue with a fixed rows × seats-per-row layout.
type PlanetariumDome struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:64"`
	Rows        int       `json:"rows" gorm:"not null;check:rows >= 1"`
	SeatsPerRow int       `json:"seats_per_row" gorm:"not null;check:seats_per_row >= 1"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (d *PlanetariumDome) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Capacity is always derived from the grid, never stored.
func (d *PlanetariumDome) Capacity() int {
	return d.Rows * d.SeatsPerRow
}

// Grid returns the seating grid used to bound valid seat coordinates.
func (d *PlanetariumDome) Grid() SeatingGrid {
	return SeatingGrid{Rows: d.Rows, SeatsPerRow: d.SeatsPerRow}
}

func (d *PlanetariumDome) ToResponse() DomeResponse {
	return DomeResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Rows:        d.Rows,
		SeatsPerRow: d.SeatsPerRow,
		Capacity:    d.Capacity(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// TableName specifies the table name for GORM
func (PlanetariumDome) TableName() string {
	return "planetarium_domes"
}

type DomeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Rows        int       `json:"rows"`
	SeatsPerRow int       `json:"seats_per_row"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateDomeRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=64"`
	Rows        int    `json:"rows" binding:"required,min=1"`
	SeatsPerRow int    `json:"seats_per_row" binding:"required,min=1"`
}
