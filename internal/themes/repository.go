package themes

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, theme *ShowTheme) error
	GetByID(ctx context.Context, id uuid.UUID) (*ShowTheme, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]ShowTheme, error)
	GetAll(ctx context.Context) ([]ShowTheme, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, theme *ShowTheme) error {
	return r.db.WithContext(ctx).Create(theme).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*ShowTheme, error) {
	var theme ShowTheme
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&theme).Error
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]ShowTheme, error) {
	var themes []ShowTheme
	if len(ids) == 0 {
		return themes, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&themes).Error
	return themes, err
}

func (r *repository) GetAll(ctx context.Context) ([]ShowTheme, error) {
	var themes []ShowTheme
	err := r.db.WithContext(ctx).Order("name ASC").Find(&themes).Error
	return themes, err
}
