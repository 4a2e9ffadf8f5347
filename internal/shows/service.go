package shows

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/config"
	"github.com/sasha-semenenko/planetarium-api-service/internal/themes"
	"github.com/sasha-semenenko/planetarium-api-service/pkg/cache"
	"github.com/sasha-semenenko/planetarium-api-service/pkg/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrShowNotFound         = errors.New("astronomy show not found")
	ErrInvalidThemeID       = errors.New("invalid show theme id")
	ErrUnsupportedImageType = errors.New("unsupported image type")
)

const (
	showListCachePrefix    = "planetarium:shows:list:"
	showCacheInvalidateAll = "planetarium:shows:*"

	// Subdirectory under the storage root; the recorded image_path is the
	// public path served from /uploads.
	imageUploadDir   = "astronomy_show"
	publicPathPrefix = "uploads"
)

type Service interface {
	SetCacheService(cacheService cache.Service)
	CreateShow(ctx context.Context, req CreateShowRequest) (*ShowResponse, error)
	GetShowByID(ctx context.Context, id uuid.UUID) (*ShowResponse, error)
	GetAllShows(ctx context.Context, query ShowListQuery) (*PaginatedShows, error)
	UploadImage(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (*ShowResponse, error)
}

type service struct {
	repo         Repository
	themeService themes.Service
	files        storage.FileStorage
	cacheService cache.Service
	cacheTTL     time.Duration
}

func NewService(repo Repository, themeService themes.Service, files storage.FileStorage) Service {
	return &service{
		repo:         repo,
		themeService: themeService,
		files:        files,
		cacheTTL:     config.Load().Redis.CacheTTL,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) invalidateShowCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	// Listing caches only; nothing availability-related lives here
	_ = s.cacheService.DeletePattern(ctx, showCacheInvalidateAll)
}

func (s *service) CreateShow(ctx context.Context, req CreateShowRequest) (*ShowResponse, error) {
	themeIDs, err := parseThemeIDs(req.Themes)
	if err != nil {
		return nil, err
	}

	showThemes, err := s.themeService.GetThemesByIDs(ctx, themeIDs)
	if err != nil {
		return nil, err
	}

	show := &AstronomyShow{
		Title:       req.Title,
		Description: req.Description,
		Themes:      showThemes,
	}

	if err := s.repo.Create(ctx, show); err != nil {
		return nil, err
	}

	s.invalidateShowCache(ctx)

	resp := show.ToResponse()
	return &resp, nil
}

func (s *service) GetShowByID(ctx context.Context, id uuid.UUID) (*ShowResponse, error) {
	show, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}

	resp := show.ToResponse()
	return &resp, nil
}

func (s *service) GetAllShows(ctx context.Context, query ShowListQuery) (*PaginatedShows, error) {
	themeIDs, err := parseThemeIDList(query.ShowTheme)
	if err != nil {
		return nil, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	cacheKey := fmt.Sprintf("%s%s:%s:%d:%d",
		showListCachePrefix, strings.ToLower(query.Title), query.ShowTheme, query.Page, query.Limit)

	if s.cacheService != nil {
		var cached PaginatedShows
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	shows, totalCount, err := s.repo.GetAll(ctx, query, themeIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]ShowResponse, len(shows))
	for i, show := range shows {
		responses[i] = show.ToResponse()
	}

	result := &PaginatedShows{
		Shows:      responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, result, s.cacheTTL)
	}

	return result, nil
}

// UploadImage stores artwork for a show and records its path.
func (s *service) UploadImage(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (*ShowResponse, error) {
	show, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return nil, ErrUnsupportedImageType
	}

	storagePath := fmt.Sprintf("%s/%s-%s%s", imageUploadDir, slugify(show.Title), uuid.New(), ext)
	if err := s.files.Save(storagePath, data); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	imagePath := publicPathPrefix + "/" + storagePath
	if err := s.repo.UpdateImagePath(ctx, id, imagePath); err != nil {
		return nil, err
	}

	s.invalidateShowCache(ctx)

	show.ImagePath = imagePath
	resp := show.ToResponse()
	return &resp, nil
}

func parseThemeIDs(ids []string) ([]uuid.UUID, error) {
	themeIDs := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidThemeID, raw)
		}
		themeIDs = append(themeIDs, id)
	}
	return themeIDs, nil
}

// parseThemeIDList parses the comma-separated show_theme query parameter
// (ex. ?show_theme=2f...,5a...). Malformed ids fail the request instead of
// silently matching nothing.
func parseThemeIDList(param string) ([]uuid.UUID, error) {
	if param == "" {
		return nil, nil
	}

	var raw []string
	for _, part := range strings.Split(param, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			raw = append(raw, trimmed)
		}
	}
	return parseThemeIDs(raw)
}
