package domes

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDomeNotFound = errors.New("planetarium dome not found")

type Service interface {
	CreateDome(ctx context.Context, req CreateDomeRequest) (*DomeResponse, error)
	GetDomeByID(ctx context.Context, id uuid.UUID) (*DomeResponse, error)
	GetAllDomes(ctx context.Context) ([]DomeResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateDome(ctx context.Context, req CreateDomeRequest) (*DomeResponse, error) {
	dome := &PlanetariumDome{
		Name:        req.Name,
		Rows:        req.Rows,
		SeatsPerRow: req.SeatsPerRow,
	}

	if err := s.repo.Create(ctx, dome); err != nil {
		return nil, err
	}

	resp := dome.ToResponse()
	return &resp, nil
}

func (s *service) GetDomeByID(ctx context.Context, id uuid.UUID) (*DomeResponse, error) {
	dome, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDomeNotFound
		}
		return nil, err
	}

	resp := dome.ToResponse()
	return &resp, nil
}

func (s *service) GetAllDomes(ctx context.Context) ([]DomeResponse, error) {
	domes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]DomeResponse, len(domes))
	for i, dome := range domes {
		responses[i] = dome.ToResponse()
	}
	return responses, nil
}
