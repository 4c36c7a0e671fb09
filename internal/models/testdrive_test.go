package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestDrive() *TestDrive {
	return &TestDrive{
		Name:          "Anita Desai",
		Email:         "anita@example.com",
		Phone:         "9876543210",
		PreferredDate: time.Now().AddDate(0, 0, 1),
		PreferredTime: "10:00",
		VehicleModel:  "Harrier",
	}
}

func TestTestDriveValidate_Valid(t *testing.T) {
	assert.NoError(t, validTestDrive().Validate())
}

func TestTestDriveValidate_ReportsEveryFailure(t *testing.T) {
	err := (&TestDrive{}).Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{
		"Name is required",
		"Email is required",
		"Phone number is required",
		"Preferred date is required",
		"Preferred time is required",
		"Vehicle model is required",
	}, verr.Messages)
}

func TestTestDriveValidate_DateFloor(t *testing.T) {
	td := validTestDrive()

	// Yesterday fails regardless of time-of-day.
	td.PreferredDate = time.Now().AddDate(0, 0, -1)
	err := td.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "Preferred date must be today or in the future")

	// Today passes even when the clock has moved past midnight.
	td.PreferredDate = StartOfDay(time.Now())
	assert.NoError(t, td.Validate())
}

func TestTestDriveValidate_TimeSlots(t *testing.T) {
	td := validTestDrive()

	for _, slot := range TimeSlots {
		td.PreferredTime = slot
		assert.NoError(t, td.Validate(), "slot %q should be valid", slot)
	}

	td.PreferredTime = "13:00"
	err := td.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "Please select a valid time slot")
}

func TestTestDriveValidate_PhoneLength(t *testing.T) {
	td := validTestDrive()

	td.Phone = "123456" // 6 digits, below minimum
	err := td.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "Please provide a valid phone number (digits only)")

	td.Phone = "0987654" // leading zero allowed, unlike bookings
	assert.NoError(t, td.Validate())
}

func TestTestDriveBeforeCreate_Normalizes(t *testing.T) {
	td := validTestDrive()
	td.Phone = "+91 98765-43210"

	require.NoError(t, td.BeforeCreate(nil))
	assert.Equal(t, "919876543210", td.Phone)
	assert.Equal(t, TestDrivePending, td.Status)
	assert.False(t, td.SubmittedAt.IsZero())
}
