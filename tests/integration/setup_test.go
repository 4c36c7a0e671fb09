//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/premium-auto/showroom-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5432"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "showroom_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	testDB.Exec("DROP TABLE IF EXISTS bookings")
	testDB.Exec("DROP TABLE IF EXISTS test_drives")

	if err := testDB.AutoMigrate(&models.Booking{}, &models.TestDrive{}); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	testDB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_active
		ON bookings (email, model)
		WHERE status IN ('pending', 'confirmed', 'processing')
	`)
	testDB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_test_drive_active
		ON test_drives (email, preferred_date)
		WHERE status IN ('pending', 'confirmed')
	`)

	code := m.Run()

	testDB.Exec("DROP TABLE IF EXISTS bookings")
	testDB.Exec("DROP TABLE IF EXISTS test_drives")

	os.Exit(code)
}

func cleanTables() {
	testDB.Exec("DELETE FROM bookings")
	testDB.Exec("DELETE FROM test_drives")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
