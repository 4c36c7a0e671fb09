package models

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBooking() *Booking {
	return &Booking{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Phone:   "9876543210",
		Address: "12 MG Road, Bengaluru",
		Model:   "Nexon",
		Color:   "Red",
	}
}

func TestBookingValidate_Valid(t *testing.T) {
	assert.NoError(t, validBooking().Validate())
}

func TestBookingValidate_ReportsEveryFailure(t *testing.T) {
	err := (&Booking{}).Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{
		"Name is required",
		"Email is required",
		"Phone number is required",
		"Address is required",
		"Vehicle model is required",
		"Vehicle color is required",
	}, verr.Messages)
}

func TestBookingValidate_InvalidEmailAndPhone(t *testing.T) {
	b := validBooking()
	b.Email = "not-an-email"
	b.Phone = "0123"

	err := b.Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "Please provide a valid email")
	assert.Contains(t, verr.Messages, "Please provide a valid phone number")
}

func TestBookingValidate_FormattedPhoneAccepted(t *testing.T) {
	b := validBooking()
	b.Phone = "+1 (555) 123-4567"

	assert.NoError(t, b.Validate())
}

func TestBookingValidate_VariantEnum(t *testing.T) {
	b := validBooking()

	for _, variant := range []string{"", "base", "mid", "top", "custom"} {
		b.Variant = variant
		assert.NoError(t, b.Validate(), "variant %q should be valid", variant)
	}

	b.Variant = "sport"
	err := b.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "Please select a valid variant")
}

func TestBookingValidate_NegativePrice(t *testing.T) {
	b := validBooking()
	price := -1.0
	b.EstimatedPrice = &price

	err := b.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "Price cannot be negative")
}

func TestBookingBeforeCreate_GeneratesCode(t *testing.T) {
	b := validBooking()
	require.NoError(t, b.BeforeCreate(nil))

	assert.Regexp(t, regexp.MustCompile(`^BK\d{10}$`), b.BookingID)
	assert.Equal(t, BookingPending, b.Status)
	assert.False(t, b.SubmittedAt.IsZero())

	// An existing code is never regenerated.
	code := b.BookingID
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, code, b.BookingID)
}

func TestBookingBeforeCreate_NormalizesPhone(t *testing.T) {
	b := validBooking()
	b.Phone = "+1 (555) 123-4567"

	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, "15551234567", b.Phone)

	// Idempotent: re-normalizing the stored value is a no-op.
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, "15551234567", b.Phone)
}

func TestValidateBookingUpdate(t *testing.T) {
	assert.NoError(t, ValidateBookingUpdate(map[string]interface{}{
		"status":      "confirmed",
		"sales_notes": "called the customer",
	}))

	err := ValidateBookingUpdate(map[string]interface{}{"status": "shipped"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "Invalid booking status")
}
