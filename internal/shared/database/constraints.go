package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes AutoMigrate does not cover.
func MigrateConstraints(db *gorm.DB) error {
	// Composite index for the dashboard's upcoming-bookings query
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_status_appointment
		ON bookings (status, appointment_at);
	`).Error
	if err != nil {
		return err
	}

	// Admin listings page newest-first per status
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_status_created
		ON bookings (status, created_at DESC);
	`).Error
	if err != nil {
		return err
	}

	// Webhook lookups resolve payments by checkout session
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_payments_session
		ON payments (stripe_session_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
