package shows

import (
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/themes"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AstronomyShow is the programme entry sessions are scheduled for.
type AstronomyShow struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:64;index"`
	Description string    `json:"description" gorm:"type:text"`
	ImagePath   string    `json:"image_path" gorm:"size:500"`

	// Many-to-many relationship with show themes
	Themes []themes.ShowTheme `json:"-" gorm:"many2many:show_theme_assignments;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *AstronomyShow) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ShowThemeAssignment is the join row between shows and themes.
type ShowThemeAssignment struct {
	AstronomyShowID uuid.UUID `json:"astronomy_show_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_show_theme_unique"`
	ShowThemeID     uuid.UUID `json:"show_theme_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_show_theme_unique"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (AstronomyShow) TableName() string {
	return "astronomy_shows"
}

func (ShowThemeAssignment) TableName() string {
	return "show_theme_assignments"
}

// ThemeInfo represents basic theme information for show responses
type ThemeInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ShowResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ImagePath   string      `json:"image_path,omitempty"`
	Themes      []ThemeInfo `json:"themes"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type CreateShowRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=64"`
	Description string   `json:"description" binding:"required"`
	Themes      []string `json:"show_theme" binding:"omitempty,dive,uuid"`
}

type ShowListQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Title     string `form:"title"`
	ShowTheme string `form:"show_theme"` // comma-separated theme ids
}

type PaginatedShows struct {
	Shows      []ShowResponse `json:"shows"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// ToResponse converts a show to its API shape, including loaded themes.
func (s *AstronomyShow) ToResponse() ShowResponse {
	themeInfos := make([]ThemeInfo, len(s.Themes))
	for i, theme := range s.Themes {
		themeInfos[i] = ThemeInfo{
			ID:   theme.ID.String(),
			Name: theme.Name,
		}
	}

	return ShowResponse{
		ID:          s.ID.String(),
		Title:       s.Title,
		Description: s.Description,
		ImagePath:   s.ImagePath,
		Themes:      themeInfos,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
