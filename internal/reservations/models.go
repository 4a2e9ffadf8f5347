package reservations

import (
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/sessions"
	"github.com/sasha-semenenko/planetarium-api-service/internal/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation is an immutable batch of tickets booked together by one user.
type Reservation struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`

	User    users.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tickets []Ticket   `json:"tickets" gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for GORM
func (Reservation) TableName() string {
	return "reservations"
}

// Ticket claims one physical seat in one session. The composite unique index
// is what makes double-booking impossible under concurrent requests.
type Ticket struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID     uuid.UUID `json:"session_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_ticket_session_row_seat"`
	ReservationID uuid.UUID `json:"reservation_id" gorm:"type:uuid;not null;index"`
	Row           int       `json:"row" gorm:"column:row;not null;uniqueIndex:idx_ticket_session_row_seat"`
	Seat          int       `json:"seat" gorm:"not null;uniqueIndex:idx_ticket_session_row_seat"`

	Session sessions.ShowSession `json:"-" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for GORM
func (Ticket) TableName() string {
	return "tickets"
}

type TicketResponse struct {
	ID        string `json:"id"`
	SessionID string `json:"show_session"`
	Row       int    `json:"row"`
	Seat      int    `json:"seat"`
}

type ReservationResponse struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Tickets   []TicketResponse `json:"tickets"`
	CreatedAt time.Time        `json:"created_at"`
}

func (r *Reservation) ToResponse() ReservationResponse {
	tickets := make([]TicketResponse, len(r.Tickets))
	for i, ticket := range r.Tickets {
		tickets[i] = TicketResponse{
			ID:        ticket.ID.String(),
			SessionID: ticket.SessionID.String(),
			Row:       ticket.Row,
			Seat:      ticket.Seat,
		}
	}

	return ReservationResponse{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		Tickets:   tickets,
		CreatedAt: r.CreatedAt,
	}
}

type CreateReservationRequest struct {
	Tickets []TicketRequestBody `json:"tickets" binding:"required,min=1,dive"`
}

type TicketRequestBody struct {
	ShowSession string `json:"show_session" binding:"required,uuid"`
	Row         int    `json:"row" binding:"required"`
	Seat        int    `json:"seat" binding:"required"`
}

// TicketRequest is the parsed form handed to the repository.
type TicketRequest struct {
	SessionID uuid.UUID
	Row       int
	Seat      int
}

type ReservationListQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type PaginatedReservations struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalCount   int64                 `json:"total_count"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
}
