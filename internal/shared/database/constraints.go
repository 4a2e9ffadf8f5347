package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control.
// AutoMigrate already creates the composite unique index from the model tags;
// the statements here make the invariants explicit and are safe to re-run.
func MigrateConstraints(db *gorm.DB) error {
	// The seat-uniqueness invariant: at most one ticket per (session, row, seat).
	// This is what turns two racing reservation requests for the same seat into
	// one success and one conflict.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_ticket_session_row_seat
		ON tickets (session_id, "row", seat);
	`).Error
	if err != nil {
		return err
	}

	// Index for availability counts per session
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_session_id
		ON tickets (session_id);
	`).Error
	if err != nil {
		return err
	}

	// Index for reservation listing scoped to a user
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_user_id
		ON reservations (user_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
