package themes

import (
	"context"
	"errors"
	"fmt"

	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/dberrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrThemeNotFound      = errors.New("show theme not found")
	ErrThemeAlreadyExists = errors.New("show theme with this name already exists")
)

type Service interface {
	CreateTheme(ctx context.Context, req CreateThemeRequest) (*ThemeResponse, error)
	GetAllThemes(ctx context.Context) ([]ThemeResponse, error)
	GetThemesByIDs(ctx context.Context, ids []uuid.UUID) ([]ShowTheme, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTheme(ctx context.Context, req CreateThemeRequest) (*ThemeResponse, error) {
	theme := &ShowTheme{Name: req.Name}

	if err := s.repo.Create(ctx, theme); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrThemeAlreadyExists
		}
		return nil, err
	}

	resp := theme.ToResponse()
	return &resp, nil
}

func (s *service) GetAllThemes(ctx context.Context) ([]ThemeResponse, error) {
	themes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ThemeResponse, len(themes))
	for i, theme := range themes {
		responses[i] = theme.ToResponse()
	}
	return responses, nil
}

// GetThemesByIDs resolves theme ids for show creation and fails if any id is unknown.
func (s *service) GetThemesByIDs(ctx context.Context, ids []uuid.UUID) ([]ShowTheme, error) {
	themes, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThemeNotFound
		}
		return nil, err
	}
	if len(themes) != len(ids) {
		return nil, fmt.Errorf("%w: %d of %d ids resolved", ErrThemeNotFound, len(themes), len(ids))
	}
	return themes, nil
}
