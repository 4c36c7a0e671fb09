package models

import (
	"time"

	"gorm.io/gorm"
)

type TestDriveStatus string

const (
	TestDrivePending   TestDriveStatus = "pending"
	TestDriveConfirmed TestDriveStatus = "confirmed"
	TestDriveCompleted TestDriveStatus = "completed"
	TestDriveCancelled TestDriveStatus = "cancelled"
)

// ActiveTestDriveStatuses block a second request for the same (email, date).
var ActiveTestDriveStatuses = []TestDriveStatus{TestDrivePending, TestDriveConfirmed}

func ValidTestDriveStatus(s string) bool {
	switch TestDriveStatus(s) {
	case TestDrivePending, TestDriveConfirmed, TestDriveCompleted, TestDriveCancelled:
		return true
	}
	return false
}

// TimeSlots are the showroom's bookable test-drive slots.
var TimeSlots = []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}

type TestDrive struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Personal information
	Name  string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Email string `gorm:"size:255;not null;index" json:"email" validate:"required,email"`
	Phone string `gorm:"size:20;not null;index" json:"phone" validate:"required,testdrive_phone"`

	// Test drive details
	PreferredDate time.Time `gorm:"not null;index" json:"preferredDate" validate:"required,datefloor"`
	PreferredTime string    `gorm:"size:5;not null" json:"preferredTime" validate:"required,oneof=09:00 10:00 11:00 12:00 14:00 15:00 16:00 17:00"`
	VehicleModel  string    `gorm:"size:100;not null" json:"vehicleModel" validate:"required"`
	Message       string    `gorm:"size:500" json:"message" validate:"max=500"`

	// Workflow
	Status TestDriveStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`

	// Metadata
	SubmittedAt time.Time `json:"submittedAt"`
	IPAddress   string    `gorm:"size:45" json:"-"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var testDriveMessages = map[string]string{
	"Name.required":           "Name is required",
	"Name.max":                "Name cannot exceed 100 characters",
	"Email.required":          "Email is required",
	"Email.email":             "Please provide a valid email",
	"Phone.required":          "Phone number is required",
	"Phone.testdrive_phone":   "Please provide a valid phone number (digits only)",
	"PreferredDate.required":  "Preferred date is required",
	"PreferredDate.datefloor": "Preferred date must be today or in the future",
	"PreferredTime.required":  "Preferred time is required",
	"PreferredTime.oneof":     "Please select a valid time slot",
	"VehicleModel.required":   "Vehicle model is required",
	"Message.max":             "Message cannot exceed 500 characters",
	"Status.oneof":            "Invalid test drive status",
}

// Validate checks every field constraint and reports all failures.
func (t *TestDrive) Validate() error {
	return collectErrors(validate.Struct(t), testDriveMessages)
}

// BeforeCreate normalizes the phone number before the row is written.
func (t *TestDrive) BeforeCreate(tx *gorm.DB) error {
	if t.Phone != "" {
		t.Phone = nonDigits.ReplaceAllString(t.Phone, "")
	}
	if t.Status == "" {
		t.Status = TestDrivePending
	}
	if t.SubmittedAt.IsZero() {
		t.SubmittedAt = time.Now()
	}
	return nil
}

// FormattedDate renders the preferred date for customer-facing responses and
// emails (dd/mm/yyyy).
func (t *TestDrive) FormattedDate() string {
	return t.PreferredDate.Format("02/01/2006")
}
