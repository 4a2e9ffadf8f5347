package sessions

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// availabilitySelect derives tickets_available from the dome grid and the
// booked ticket count at read time. "rows" needs quoting on PostgreSQL.
const availabilitySelect = `show_sessions.*,
(SELECT planetarium_domes."rows" * planetarium_domes.seats_per_row
   FROM planetarium_domes WHERE planetarium_domes.id = show_sessions.dome_id)
- (SELECT COUNT(*) FROM tickets WHERE tickets.session_id = show_sessions.id)
AS tickets_available`

type Filters struct {
	Date   string // YYYY-MM-DD, already validated; empty means no filter
	ShowID *uuid.UUID
}

type Repository interface {
	Create(ctx context.Context, session *ShowSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*ShowSession, error)
	GetAll(ctx context.Context, query SessionListQuery, filters Filters) ([]ShowSession, int64, error)
	Update(ctx context.Context, session *ShowSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, session *ShowSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*ShowSession, error) {
	var session ShowSession
	err := r.db.WithContext(ctx).
		Select(availabilitySelect).
		Preload("Show").
		Preload("Dome").
		Where("show_sessions.id = ?", id).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *repository) GetAll(ctx context.Context, query SessionListQuery, filters Filters) ([]ShowSession, int64, error) {
	var sessions []ShowSession
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&ShowSession{})

	// Apply filters
	if filters.Date != "" {
		db = db.Where("DATE(show_sessions.show_time) = ?", filters.Date)
	}
	if filters.ShowID != nil {
		db = db.Where("show_sessions.show_id = ?", *filters.ShowID)
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

	err := db.Select(availabilitySelect).
		Preload("Show").
		Preload("Dome").
		Order("show_sessions.show_time ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&sessions).Error

	return sessions, totalCount, err
}

func (r *repository) Update(ctx context.Context, session *ShowSession) error {
	return r.db.WithContext(ctx).
		Model(&ShowSession{}).
		Where("id = ?", session.ID).
		Updates(map[string]interface{}{
			"show_id": session.ShowID,
			"dome_id": session.DomeID,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&ShowSession{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
