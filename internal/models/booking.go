package models

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingProcessing BookingStatus = "processing"
	BookingDelivered  BookingStatus = "delivered"
	BookingCancelled  BookingStatus = "cancelled"
)

// ActiveBookingStatuses are the statuses that still represent an open request
// and therefore block a second booking for the same (email, model).
var ActiveBookingStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingProcessing}

func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingProcessing, BookingDelivered, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	BookingID string `gorm:"size:20;uniqueIndex" json:"bookingId"`

	// Personal information
	Name    string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Email   string `gorm:"size:255;not null;index" json:"email" validate:"required,email"`
	Phone   string `gorm:"size:20;not null;index" json:"phone" validate:"required,booking_phone"`
	Address string `gorm:"size:500;not null" json:"address" validate:"required,max=500"`

	// Vehicle details
	Model                  string `gorm:"size:100;not null;index" json:"model" validate:"required"`
	Color                  string `gorm:"size:50;not null" json:"color" validate:"required"`
	Variant                string `gorm:"size:20" json:"variant" validate:"omitempty,oneof=base mid top custom"`
	AdditionalRequirements string `gorm:"size:1000" json:"additionalRequirements" validate:"max=1000"`

	// Workflow
	Status         BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status" validate:"omitempty,oneof=pending confirmed processing delivered cancelled"`
	EstimatedPrice *float64      `json:"estimatedPrice,omitempty" validate:"omitempty,gte=0"`
	SalesNotes     string        `gorm:"size:2000" json:"salesNotes,omitempty" validate:"max=2000"`
	AssignedTo     string        `gorm:"size:100" json:"assignedTo,omitempty"`
	FollowUpDate   *time.Time    `json:"followUpDate,omitempty"`

	// Metadata
	SubmittedAt time.Time `json:"submittedAt"`
	IPAddress   string    `gorm:"size:45" json:"-"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var bookingMessages = map[string]string{
	"Name.required":              "Name is required",
	"Name.max":                   "Name cannot exceed 100 characters",
	"Email.required":             "Email is required",
	"Email.email":                "Please provide a valid email",
	"Phone.required":             "Phone number is required",
	"Phone.booking_phone":        "Please provide a valid phone number",
	"Address.required":           "Address is required",
	"Address.max":                "Address cannot exceed 500 characters",
	"Model.required":             "Vehicle model is required",
	"Color.required":             "Vehicle color is required",
	"Variant.oneof":              "Please select a valid variant",
	"AdditionalRequirements.max": "Additional requirements cannot exceed 1000 characters",
	"Status.oneof":               "Invalid booking status",
	"EstimatedPrice.gte":         "Price cannot be negative",
	"SalesNotes.max":             "Sales notes cannot exceed 2000 characters",
}

// Validate checks every field constraint and reports all failures, not just
// the first.
func (b *Booking) Validate() error {
	return collectErrors(validate.Struct(b), bookingMessages)
}

// ValidateBookingUpdate re-checks the fields a status update may touch.
// Keys are gorm column names.
func ValidateBookingUpdate(fields map[string]interface{}) error {
	var msgs []string
	if v, ok := fields["status"]; ok {
		if s, _ := v.(string); !ValidBookingStatus(s) {
			msgs = append(msgs, "Invalid booking status")
		}
	}
	if v, ok := fields["sales_notes"]; ok {
		if s, _ := v.(string); len(s) > 2000 {
			msgs = append(msgs, "Sales notes cannot exceed 2000 characters")
		}
	}
	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

// BeforeCreate fabricates the human-readable booking code and normalizes the
// phone number before the row is written.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == "" {
		// BK + last 6 digits of the unix-milli timestamp + 4 random digits.
		// Uniqueness is best-effort; a collision is not retried.
		ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
		b.BookingID = fmt.Sprintf("BK%s%04d", ts[len(ts)-6:], 1000+rand.Intn(9000))
	}
	if b.Phone != "" {
		b.Phone = nonDigits.ReplaceAllString(b.Phone, "")
	}
	if b.Status == "" {
		b.Status = BookingPending
	}
	if b.SubmittedAt.IsZero() {
		b.SubmittedAt = time.Now()
	}
	return nil
}

// FormattedSubmissionDate renders the submission date for customer-facing
// responses and emails (dd/mm/yyyy).
func (b *Booking) FormattedSubmissionDate() string {
	return b.SubmittedAt.Format("02/01/2006")
}
