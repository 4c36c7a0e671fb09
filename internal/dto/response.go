package dto

import (
	"time"

	"github.com/premium-auto/showroom-api/internal/models"
)

// Envelopes shared by every endpoint.

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(data interface{}) SuccessResponse {
	return SuccessResponse{Status: "success", Data: data}
}

func SuccessMessage(message string, data interface{}) SuccessResponse {
	return SuccessResponse{Status: "success", Message: message, Data: data}
}

type ErrorResponse struct {
	Status            string   `json:"status"`
	Message           string   `json:"message"`
	Errors            []string `json:"errors,omitempty"`
	ExistingBookingID string   `json:"existingBookingId,omitempty"`
}

func Error(message string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: message}
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

// Booking responses. The network address never leaves the server; sales notes
// appear only in detail and status-update responses.

type BookingResponse struct {
	ID                     uint       `json:"id"`
	BookingID              string     `json:"bookingId"`
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	Phone                  string     `json:"phone"`
	Address                string     `json:"address"`
	Model                  string     `json:"model"`
	Color                  string     `json:"color"`
	Variant                string     `json:"variant"`
	AdditionalRequirements string     `json:"additionalRequirements"`
	Status                 string     `json:"status"`
	EstimatedPrice         *float64   `json:"estimatedPrice,omitempty"`
	SalesNotes             string     `json:"salesNotes,omitempty"`
	AssignedTo             string     `json:"assignedTo,omitempty"`
	FollowUpDate           *time.Time `json:"followUpDate,omitempty"`
	SubmittedAt            time.Time  `json:"submittedAt"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

type BookingListItem struct {
	ID                     uint       `json:"id"`
	BookingID              string     `json:"bookingId"`
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	Phone                  string     `json:"phone"`
	Address                string     `json:"address"`
	Model                  string     `json:"model"`
	Color                  string     `json:"color"`
	Variant                string     `json:"variant"`
	AdditionalRequirements string     `json:"additionalRequirements"`
	Status                 string     `json:"status"`
	EstimatedPrice         *float64   `json:"estimatedPrice,omitempty"`
	AssignedTo             string     `json:"assignedTo,omitempty"`
	FollowUpDate           *time.Time `json:"followUpDate,omitempty"`
	SubmittedAt            time.Time  `json:"submittedAt"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

// BookingCreated echoes the submission back to the customer.
type BookingCreated struct {
	BookingID   string `json:"bookingId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Model       string `json:"model"`
	Color       string `json:"color"`
	Variant     string `json:"variant"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt"`
}

type BookingList struct {
	Bookings   []BookingListItem `json:"bookings"`
	Pagination Pagination        `json:"pagination"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:                     b.ID,
		BookingID:              b.BookingID,
		Name:                   b.Name,
		Email:                  b.Email,
		Phone:                  b.Phone,
		Address:                b.Address,
		Model:                  b.Model,
		Color:                  b.Color,
		Variant:                b.Variant,
		AdditionalRequirements: b.AdditionalRequirements,
		Status:                 string(b.Status),
		EstimatedPrice:         b.EstimatedPrice,
		SalesNotes:             b.SalesNotes,
		AssignedTo:             b.AssignedTo,
		FollowUpDate:           b.FollowUpDate,
		SubmittedAt:            b.SubmittedAt,
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}
}

func ToBookingListItem(b *models.Booking) BookingListItem {
	return BookingListItem{
		ID:                     b.ID,
		BookingID:              b.BookingID,
		Name:                   b.Name,
		Email:                  b.Email,
		Phone:                  b.Phone,
		Address:                b.Address,
		Model:                  b.Model,
		Color:                  b.Color,
		Variant:                b.Variant,
		AdditionalRequirements: b.AdditionalRequirements,
		Status:                 string(b.Status),
		EstimatedPrice:         b.EstimatedPrice,
		AssignedTo:             b.AssignedTo,
		FollowUpDate:           b.FollowUpDate,
		SubmittedAt:            b.SubmittedAt,
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}
}

func ToBookingCreated(b *models.Booking) BookingCreated {
	return BookingCreated{
		BookingID:   b.BookingID,
		Name:        b.Name,
		Email:       b.Email,
		Model:       b.Model,
		Color:       b.Color,
		Variant:     b.Variant,
		Status:      string(b.Status),
		SubmittedAt: b.FormattedSubmissionDate(),
	}
}

// Test drive responses.

type TestDriveResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PreferredDate time.Time `json:"preferredDate"`
	PreferredTime string    `json:"preferredTime"`
	VehicleModel  string    `json:"vehicleModel"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TestDriveCreated echoes the scheduling request back to the customer.
type TestDriveCreated struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	VehicleModel  string `json:"vehicleModel"`
	Status        string `json:"status"`
}

type TestDriveList struct {
	TestDrives []TestDriveResponse `json:"testDrives"`
	Pagination Pagination          `json:"pagination"`
}

func ToTestDriveResponse(t *models.TestDrive) TestDriveResponse {
	return TestDriveResponse{
		ID:            t.ID,
		Name:          t.Name,
		Email:         t.Email,
		Phone:         t.Phone,
		PreferredDate: t.PreferredDate,
		PreferredTime: t.PreferredTime,
		VehicleModel:  t.VehicleModel,
		Message:       t.Message,
		Status:        string(t.Status),
		SubmittedAt:   t.SubmittedAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func ToTestDriveCreated(t *models.TestDrive) TestDriveCreated {
	return TestDriveCreated{
		ID:            t.ID,
		Name:          t.Name,
		Email:         t.Email,
		PreferredDate: t.FormattedDate(),
		PreferredTime: t.PreferredTime,
		VehicleModel:  t.VehicleModel,
		Status:        string(t.Status),
	}
}
