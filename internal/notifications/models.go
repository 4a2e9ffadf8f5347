package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReservationCreatedEvent is published after a reservation commits.
type ReservationCreatedEvent struct {
	ReservationID uuid.UUID    `json:"reservation_id"`
	UserID        uuid.UUID    `json:"user_id"`
	UserEmail     string       `json:"user_email"`
	Tickets       []TicketInfo `json:"tickets"`
	CreatedAt     time.Time    `json:"created_at"`
}

type TicketInfo struct {
	SessionID uuid.UUID `json:"session_id"`
	Row       int       `json:"row"`
	Seat      int       `json:"seat"`
}

func (e *ReservationCreatedEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all of a user's events to one partition so they are
// consumed in order.
func (e *ReservationCreatedEvent) PartitionKey() string {
	return e.UserID.String()
}
