package database

import (
	"glambook/internal/bookings"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&bookings.Booking{},
		&bookings.Payment{},
	)
}
