//go:build integration

package integration

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"

	"github.com/premium-auto/showroom-api/internal/models"
	"github.com/premium-auto/showroom-api/internal/repository"
	"github.com/premium-auto/showroom-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService() service.BookingService {
	repo := repository.NewBookingRepository(testDB)
	return service.NewBookingService(repo, nil, nil)
}

func sampleBooking(email, model string) *models.Booking {
	return &models.Booking{
		Name:    "Ravi Kumar",
		Email:   email,
		Phone:   "+91 98765-43210",
		Address: "12 MG Road, Bengaluru",
		Model:   model,
		Color:   "Red",
	}
}

func TestSubmitBooking_PersistsNormalizedRecord(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	saved, err := svc.SubmitBooking(context.Background(), sampleBooking("  Ravi@Example.COM ", "Nexon"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BK\d{10}$`), saved.BookingID)

	var stored models.Booking
	require.NoError(t, testDB.First(&stored, saved.ID).Error)
	assert.Equal(t, "ravi@example.com", stored.Email)
	assert.Equal(t, "919876543210", stored.Phone)
	assert.Equal(t, models.BookingPending, stored.Status)
	assert.False(t, stored.SubmittedAt.IsZero())
}

func TestSubmitBooking_DuplicateActiveRejected(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	first, err := svc.SubmitBooking(context.Background(), sampleBooking("ravi@example.com", "Nexon"))
	require.NoError(t, err)

	_, err = svc.SubmitBooking(context.Background(), sampleBooking("ravi@example.com", "Nexon"))
	var dup *service.DuplicateBookingError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, first.BookingID, dup.BookingID)
	assert.Equal(t, "Nexon", dup.Model)

	// A different model for the same customer is fine.
	_, err = svc.SubmitBooking(context.Background(), sampleBooking("ravi@example.com", "Harrier"))
	assert.NoError(t, err)
}

func TestSubmitBooking_CancelledDoesNotBlockResubmission(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	first, err := svc.SubmitBooking(context.Background(), sampleBooking("ravi@example.com", "Nexon"))
	require.NoError(t, err)

	_, err = svc.UpdateBookingStatus(context.Background(), first.ID, models.BookingCancelled, "", "")
	require.NoError(t, err)

	_, err = svc.SubmitBooking(context.Background(), sampleBooking("ravi@example.com", "Nexon"))
	assert.NoError(t, err)
}

// Concurrent identical submissions race past the application-layer check;
// the partial unique index must let exactly one through.
func TestSubmitBooking_ConcurrentDuplicates(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	attempts := 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.SubmitBooking(context.Background(), sampleBooking("racer@example.com", "Nexon"))
			if err == nil {
				mu.Lock()
				successCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successCount, "only one concurrent submission should succeed")

	var count int64
	testDB.Model(&models.Booking{}).
		Where("email = ? AND model = ?", "racer@example.com", "Nexon").
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestListBookings_Pagination(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	for i := 0; i < 15; i++ {
		_, err := svc.SubmitBooking(context.Background(),
			sampleBooking(fmt.Sprintf("user-%02d@example.com", i), "Nexon"))
		require.NoError(t, err)
	}

	page2, total, err := svc.ListBookings(context.Background(), repository.BookingFilter{}, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.Len(t, page2, 5)
}

func TestListBookings_FilterByStatusAndModel(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	nexon, err := svc.SubmitBooking(context.Background(), sampleBooking("a@example.com", "Nexon"))
	require.NoError(t, err)
	_, err = svc.SubmitBooking(context.Background(), sampleBooking("b@example.com", "Harrier"))
	require.NoError(t, err)

	_, err = svc.UpdateBookingStatus(context.Background(), nexon.ID, models.BookingConfirmed, "", "")
	require.NoError(t, err)

	confirmed, total, err := svc.ListBookings(context.Background(),
		repository.BookingFilter{Status: "confirmed"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, confirmed, 1)
	assert.Equal(t, "a@example.com", confirmed[0].Email)

	// Model filter matches case-insensitive substrings.
	harriers, total, err := svc.ListBookings(context.Background(),
		repository.BookingFilter{Model: "harr"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, harriers, 1)
	assert.Equal(t, "Harrier", harriers[0].Model)
}

func TestGetBookingByCode_Roundtrip(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	saved, err := svc.SubmitBooking(context.Background(), sampleBooking("ravi@example.com", "Nexon"))
	require.NoError(t, err)

	found, err := svc.GetBookingByCode(context.Background(), "  "+saved.BookingID+"  ")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	_, err = svc.GetBookingByCode(context.Background(), "BK0000000000")
	assert.ErrorIs(t, err, service.ErrBookingNotFound)
}

func TestUpdateBookingStatus_InvalidStatusLeavesRecordUnchanged(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	saved, err := svc.SubmitBooking(context.Background(), sampleBooking("ravi@example.com", "Nexon"))
	require.NoError(t, err)

	_, err = svc.UpdateBookingStatus(context.Background(), saved.ID, "shipped", "note", "")
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)

	var stored models.Booking
	require.NoError(t, testDB.First(&stored, saved.ID).Error)
	assert.Equal(t, models.BookingPending, stored.Status)
	assert.Empty(t, stored.SalesNotes)
}

func TestBookingStats(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitBooking(context.Background(),
			sampleBooking(fmt.Sprintf("n%d@example.com", i), "Nexon"))
		require.NoError(t, err)
	}
	harrier, err := svc.SubmitBooking(context.Background(), sampleBooking("h@example.com", "Harrier"))
	require.NoError(t, err)
	_, err = svc.UpdateBookingStatus(context.Background(), harrier.ID, models.BookingConfirmed, "", "")
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalBookings)
	assert.Equal(t, int64(4), stats.RecentBookings)
	require.NotEmpty(t, stats.PopularModels)
	assert.Equal(t, "Nexon", stats.PopularModels[0].Model)
	assert.Equal(t, int64(3), stats.PopularModels[0].Count)
}
