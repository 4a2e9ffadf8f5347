package reservations

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/notifications"
	"github.com/sasha-semenenko/planetarium-api-service/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmptyReservation = errors.New("reservation must contain at least one ticket")

type Service interface {
	SetProducer(producer notifications.Producer)
	CreateReservation(ctx context.Context, userID uuid.UUID, userEmail string, req CreateReservationRequest) (*ReservationResponse, error)
	GetReservationByID(ctx context.Context, id, userID uuid.UUID) (*ReservationResponse, error)
	GetUserReservations(ctx context.Context, userID uuid.UUID, query ReservationListQuery) (*PaginatedReservations, error)
}

type service struct {
	repo     Repository
	producer notifications.Producer
	log      *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		log:  logger.GetDefault(),
	}
}

// SetProducer injects the event producer dependency
func (s *service) SetProducer(producer notifications.Producer) {
	s.producer = producer
}

func (s *service) CreateReservation(ctx context.Context, userID uuid.UUID, userEmail string, req CreateReservationRequest) (*ReservationResponse, error) {
	if len(req.Tickets) == 0 {
		return nil, ErrEmptyReservation
	}

	requests := make([]TicketRequest, len(req.Tickets))
	for i, ticket := range req.Tickets {
		requests[i] = TicketRequest{
			SessionID: uuid.MustParse(ticket.ShowSession),
			Row:       ticket.Row,
			Seat:      ticket.Seat,
		}
	}

	reservation, err := s.repo.CreateWithTickets(ctx, userID, requests)
	if err != nil {
		if errors.Is(err, ErrSeatTaken) {
			for _, r := range requests {
				s.log.LogSeatConflict(ctx, r.SessionID.String(), r.Row, r.Seat)
			}
		}
		return nil, err
	}

	s.log.LogReservationCreated(ctx, reservation.ID.String(), userID.String(), len(reservation.Tickets))
	s.publishCreated(ctx, reservation, userEmail)

	resp := reservation.ToResponse()
	return &resp, nil
}

// publishCreated emits the reservation-created event. Delivery is best-effort;
// the reservation is already durable.
func (s *service) publishCreated(ctx context.Context, reservation *Reservation, userEmail string) {
	if s.producer == nil {
		return
	}

	tickets := make([]notifications.TicketInfo, len(reservation.Tickets))
	for i, ticket := range reservation.Tickets {
		tickets[i] = notifications.TicketInfo{
			SessionID: ticket.SessionID,
			Row:       ticket.Row,
			Seat:      ticket.Seat,
		}
	}

	event := &notifications.ReservationCreatedEvent{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		UserEmail:     userEmail,
		Tickets:       tickets,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.producer.PublishReservationCreated(ctx, event); err != nil {
		s.log.ErrorWithContext(ctx, "Failed to publish reservation event", err, map[string]interface{}{
			"reservation_id": reservation.ID.String(),
		})
	}
}

func (s *service) GetReservationByID(ctx context.Context, id, userID uuid.UUID) (*ReservationResponse, error) {
	reservation, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	resp := reservation.ToResponse()
	return &resp, nil
}

func (s *service) GetUserReservations(ctx context.Context, userID uuid.UUID, query ReservationListQuery) (*PaginatedReservations, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	reservations, totalCount, err := s.repo.GetAllForUser(ctx, userID, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		responses[i] = reservation.ToResponse()
	}

	return &PaginatedReservations{
		Reservations: responses,
		TotalCount:   totalCount,
		Page:         query.Page,
		Limit:        query.Limit,
		TotalPages:   int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}
