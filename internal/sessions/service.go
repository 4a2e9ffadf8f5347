package sessions

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/domes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shows"
	"github.com/sasha-semenenko/planetarium-api-service/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("show session not found")
	ErrMalformedDate   = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidShowID   = errors.New("invalid astronomy show id")
)

const dateLayout = "2006-01-02"

type Service interface {
	CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionResponse, error)
	GetSessionByID(ctx context.Context, id uuid.UUID) (*SessionResponse, error)
	GetAllSessions(ctx context.Context, query SessionListQuery) (*PaginatedSessions, error)
	UpdateSession(ctx context.Context, id uuid.UUID, req UpdateSessionRequest) (*SessionResponse, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo        Repository
	showService shows.Service
	domeService domes.Service
	log         *logger.Logger
}

func NewService(repo Repository, showService shows.Service, domeService domes.Service) Service {
	return &service{
		repo:        repo,
		showService: showService,
		domeService: domeService,
		log:         logger.GetDefault(),
	}
}

func (s *service) CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionResponse, error) {
	showID := uuid.MustParse(req.AstronomyShow)
	domeID := uuid.MustParse(req.PlanetariumDome)

	// Validate references before scheduling
	if _, err := s.showService.GetShowByID(ctx, showID); err != nil {
		return nil, err
	}
	if _, err := s.domeService.GetDomeByID(ctx, domeID); err != nil {
		return nil, err
	}

	session := &ShowSession{
		ShowID: showID,
		DomeID: domeID,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.log.LogSessionCreated(ctx, session.ID.String(), showID.String(), domeID.String())

	return s.GetSessionByID(ctx, session.ID)
}

func (s *service) GetSessionByID(ctx context.Context, id uuid.UUID) (*SessionResponse, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	resp := session.ToResponse()
	return &resp, nil
}

func (s *service) GetAllSessions(ctx context.Context, query SessionListQuery) (*PaginatedSessions, error) {
	filters, err := parseFilters(query)
	if err != nil {
		return nil, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	sessions, totalCount, err := s.repo.GetAll(ctx, query, filters)
	if err != nil {
		return nil, err
	}

	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = session.ToResponse()
	}

	return &PaginatedSessions{
		Sessions:   responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

func (s *service) UpdateSession(ctx context.Context, id uuid.UUID, req UpdateSessionRequest) (*SessionResponse, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if req.AstronomyShow != "" {
		showID := uuid.MustParse(req.AstronomyShow)
		if _, err := s.showService.GetShowByID(ctx, showID); err != nil {
			return nil, err
		}
		session.ShowID = showID
	}
	if req.PlanetariumDome != "" {
		domeID := uuid.MustParse(req.PlanetariumDome)
		if _, err := s.domeService.GetDomeByID(ctx, domeID); err != nil {
			return nil, err
		}
		session.DomeID = domeID
	}

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}

	return s.GetSessionByID(ctx, id)
}

// DeleteSession removes the session; its tickets go with it.
func (s *service) DeleteSession(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSessionNotFound
	}
	return err
}

// parseFilters validates the list filters. A malformed date fails the request
// instead of silently matching nothing.
func parseFilters(query SessionListQuery) (Filters, error) {
	var filters Filters

	if query.Date != "" {
		parsed, err := time.Parse(dateLayout, query.Date)
		if err != nil {
			return filters, fmt.Errorf("%w: %q", ErrMalformedDate, query.Date)
		}
		filters.Date = parsed.Format(dateLayout)
	}

	if query.AstronomyShow != "" {
		showID, err := uuid.Parse(query.AstronomyShow)
		if err != nil {
			return filters, fmt.Errorf("%w: %q", ErrInvalidShowID, query.AstronomyShow)
		}
		filters.ShowID = &showID
	}

	return filters, nil
}
