package sessions

import (
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/domes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shows"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShowSession schedules one astronomy show in one dome.
type ShowSession struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ShowID   uuid.UUID `json:"show_id" gorm:"type:uuid;not null;index"`
	DomeID   uuid.UUID `json:"dome_id" gorm:"type:uuid;not null;index"`
	ShowTime time.Time `json:"show_time" gorm:"autoCreateTime;index"`

	Show shows.AstronomyShow   `json:"-" gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE"`
	Dome domes.PlanetariumDome `json:"-" gorm:"foreignKey:DomeID;constraint:OnDelete:CASCADE"`

	// Derived per read as capacity − booked tickets; never stored.
	TicketsAvailable int `json:"tickets_available" gorm:"->;-:migration"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *ShowSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for GORM
func (ShowSession) TableName() string {
	return "show_sessions"
}

type SessionResponse struct {
	ID               string    `json:"id"`
	ShowTime         time.Time `json:"show_time"`
	AstronomyShow    ShowInfo  `json:"astronomy_show"`
	PlanetariumDome  DomeInfo  `json:"planetarium_dome"`
	TicketsAvailable int       `json:"tickets_available"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ShowInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type DomeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seats_per_row"`
	Capacity    int    `json:"capacity"`
}

func (s *ShowSession) ToResponse() SessionResponse {
	return SessionResponse{
		ID:       s.ID.String(),
		ShowTime: s.ShowTime,
		AstronomyShow: ShowInfo{
			ID:    s.Show.ID.String(),
			Title: s.Show.Title,
		},
		PlanetariumDome: DomeInfo{
			ID:          s.Dome.ID.String(),
			Name:        s.Dome.Name,
			Rows:        s.Dome.Rows,
			SeatsPerRow: s.Dome.SeatsPerRow,
			Capacity:    s.Dome.Capacity(),
		},
		TicketsAvailable: s.TicketsAvailable,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

type CreateSessionRequest struct {
	AstronomyShow   string `json:"astronomy_show" binding:"required,uuid"`
	PlanetariumDome string `json:"planetarium_dome" binding:"required,uuid"`
}

type UpdateSessionRequest struct {
	AstronomyShow   string `json:"astronomy_show" binding:"omitempty,uuid"`
	PlanetariumDome string `json:"planetarium_dome" binding:"omitempty,uuid"`
}

type SessionListQuery struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Date          string `form:"date"`           // YYYY-MM-DD, exact calendar date
	AstronomyShow string `form:"astronomy_show"` // show id
}

type PaginatedSessions struct {
	Sessions   []SessionResponse `json:"sessions"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
