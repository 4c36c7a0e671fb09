package database

import (
	"log"

	"github.com/premium-auto/showroom-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Booking{}, &models.TestDrive{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique indexes backstop the application-layer duplicate checks:
	// a lost check-then-insert race becomes a duplicate-key error instead of
	// a second active record.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_active
		ON bookings (email, model)
		WHERE status IN ('pending', 'confirmed', 'processing')
	`)
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_test_drive_active
		ON test_drives (email, preferred_date)
		WHERE status IN ('pending', 'confirmed')
	`)

	return db
}
