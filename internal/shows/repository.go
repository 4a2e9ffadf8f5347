package shows

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, show *AstronomyShow) error
	GetByID(ctx context.Context, id uuid.UUID) (*AstronomyShow, error)
	GetAll(ctx context.Context, query ShowListQuery, themeIDs []uuid.UUID) ([]AstronomyShow, int64, error)
	UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, show *AstronomyShow) error {
	return r.db.WithContext(ctx).Create(show).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*AstronomyShow, error) {
	var show AstronomyShow
	err := r.db.WithContext(ctx).
		Preload("Themes").
		Where("id = ?", id).
		First(&show).Error
	if err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *repository) GetAll(ctx context.Context, query ShowListQuery, themeIDs []uuid.UUID) ([]AstronomyShow, int64, error) {
	var shows []AstronomyShow
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&AstronomyShow{})

	// Apply filters
	if query.Title != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query.Title)+"%")
	}

	if len(themeIDs) > 0 {
		subquery := r.db.Table("show_theme_assignments").
			Where("show_theme_id IN ?", themeIDs).
			Select("astronomy_show_id")

		db = db.Where("id IN (?)", subquery)
	}

	// Count total records
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	// Apply pagination
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	offset := (query.Page - 1) * query.Limit

	err := db.Preload("Themes").
		Order("title ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&shows).Error

	return shows, totalCount, err
}

func (r *repository) UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error {
	result := r.db.WithContext(ctx).
		Model(&AstronomyShow{}).
		Where("id = ?", id).
		Update("image_path", imagePath)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
