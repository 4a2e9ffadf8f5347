package themes

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShowTheme is reference data attached to astronomy shows (many-to-many).
type ShowTheme struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:64"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (t *ShowTheme) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *ShowTheme) ToResponse() ThemeResponse {
	return ThemeResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// TableName specifies the table name for GORM
func (ShowTheme) TableName() string {
	return "show_themes"
}

type ThemeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateThemeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=64"`
}
