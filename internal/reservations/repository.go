package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/sasha-semenenko/planetarium-api-service/internal/domes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/sessions"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/dberrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSeatTaken           = errors.New("seat is already reserved for this session")
	ErrSessionNotFound     = errors.New("show session not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

type Repository interface {
	CreateWithTickets(ctx context.Context, userID uuid.UUID, requests []TicketRequest) (*Reservation, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*Reservation, error)
	GetAllForUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]Reservation, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithTickets books the whole batch in one transaction. The reservation
// row goes in first so the transaction holds a write lock from the start; each
// ticket is validated against its session's dome grid before insert, and the
// composite unique index on (session_id, row, seat) turns a concurrent claim
// of the same seat into a unique violation. Any failure rolls everything back.
func (r *repository) CreateWithTickets(ctx context.Context, userID uuid.UUID, requests []TicketRequest) (*Reservation, error) {
	reservation := &Reservation{UserID: userID}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reservation).Error; err != nil {
			return err
		}

		for _, req := range requests {
			var session sessions.ShowSession
			err := tx.Preload("Dome").
				Where("id = ?", req.SessionID).
				First(&session).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrSessionNotFound, req.SessionID)
				}
				return err
			}

			if err := domes.ValidateSeat(req.Row, req.Seat, session.Dome.Grid()); err != nil {
				return err
			}

			ticket := Ticket{
				SessionID:     session.ID,
				ReservationID: reservation.ID,
				Row:           req.Row,
				Seat:          req.Seat,
			}
			if err := tx.Create(&ticket).Error; err != nil {
				if dberrors.IsUniqueViolation(err) {
					return fmt.Errorf("%w: session %s, row %d, seat %d",
						ErrSeatTaken, req.SessionID, req.Row, req.Seat)
				}
				return err
			}

			reservation.Tickets = append(reservation.Tickets, ticket)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

func (r *repository) GetByID(ctx context.Context, id, userID uuid.UUID) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Where("id = ? AND user_id = ?", id, userID).
		First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) GetAllForUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]Reservation, int64, error) {
	var reservations []Reservation
	var totalCount int64

	db := r.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("user_id = ?", userID)

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	err := db.Preload("Tickets").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reservations).Error

	return reservations, totalCount, err
}
