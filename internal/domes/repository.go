package domes

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, dome *PlanetariumDome) error
	GetByID(ctx context.Context, id uuid.UUID) (*PlanetariumDome, error)
	GetAll(ctx context.Context) ([]PlanetariumDome, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, dome *PlanetariumDome) error {
	return r.db.WithContext(ctx).Create(dome).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*PlanetariumDome, error) {
	var dome PlanetariumDome
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dome).Error
	if err != nil {
		return nil, err
	}
	return &dome, nil
}

func (r *repository) GetAll(ctx context.Context) ([]PlanetariumDome, error) {
	var domes []PlanetariumDome
	err := r.db.WithContext(ctx).Order("name ASC").Find(&domes).Error
	return domes, err
}
