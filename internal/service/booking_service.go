package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/premium-auto/showroom-api/internal/mailer"
	"github.com/premium-auto/showroom-api/internal/models"
	"github.com/premium-auto/showroom-api/internal/repository"
	"github.com/premium-auto/showroom-api/pkg/rabbitmq"
	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

// DuplicateBookingError signals an active booking already exists for the same
// (email, model). BookingID carries the existing record's human-readable code
// when the application-layer check caught it; it is empty when the store's
// unique index caught a lost race instead.
type DuplicateBookingError struct {
	BookingID string
	Model     string
}

func (e *DuplicateBookingError) Error() string {
	return fmt.Sprintf("an active booking for %s already exists", e.Model)
}

type BookingStats struct {
	StatusCounts   []repository.StatusCount `json:"statusStats"`
	TotalBookings  int64                    `json:"totalBookings"`
	RecentBookings int64                    `json:"recentBookings"`
	PopularModels  []repository.ModelCount  `json:"popularModels"`
}

type BookingService interface {
	SubmitBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	GetBookingByCode(ctx context.Context, code string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter repository.BookingFilter, page, limit int) ([]models.Booking, int64, error)
	UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus, salesNotes, assignedTo string) (*models.Booking, error)
	Stats(ctx context.Context) (*BookingStats, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	mailer    *mailer.Mailer
	publisher *rabbitmq.Publisher
}

func NewBookingService(repo repository.BookingRepository, m *mailer.Mailer, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{repo: repo, mailer: m, publisher: publisher}
}

func (s *bookingService) SubmitBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	normalizeBooking(b)

	// Duplicate check: one active booking per (email, model). Check-then-insert
	// is racy; the partial unique index in pkg/database backstops it.
	existing, err := s.repo.FindActiveByEmailAndModel(ctx, b.Email, b.Model)
	if err == nil {
		return nil, &DuplicateBookingError{BookingID: existing.BookingID, Model: b.Model}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("duplicate check: %w", err)
	}

	if err := s.repo.Create(ctx, b); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateBookingError{Model: b.Model}
		}
		return nil, err
	}

	// Fire-and-forget confirmation; the response never waits on it.
	go s.mailer.Send(mailer.BookingConfirmation(b))

	if s.publisher != nil {
		if err := s.publisher.Publish("booking.created", b); err != nil {
			log.Printf("[booking] publish booking.created failed: %v", err)
		}
	}

	return b, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetBookingByCode(ctx context.Context, code string) (*models.Booking, error) {
	booking, err := s.repo.FindByBookingID(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter repository.BookingFilter, page, limit int) ([]models.Booking, int64, error) {
	return s.repo.List(ctx, filter, page, limit)
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus, salesNotes, assignedTo string) (*models.Booking, error) {
	fields := map[string]interface{}{"status": string(status)}
	if salesNotes != "" {
		fields["sales_notes"] = salesNotes
	}
	if assignedTo != "" {
		fields["assigned_to"] = assignedTo
	}

	booking, err := s.repo.UpdateByID(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Stats(ctx context.Context) (*BookingStats, error) {
	statusCounts, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("total count: %w", err)
	}
	recent, err := s.repo.CountCreatedSince(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("recent count: %w", err)
	}
	popular, err := s.repo.TopModels(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("popular models: %w", err)
	}

	return &BookingStats{
		StatusCounts:   statusCounts,
		TotalBookings:  total,
		RecentBookings: recent,
		PopularModels:  popular,
	}, nil
}

func normalizeBooking(b *models.Booking) {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.ToLower(strings.TrimSpace(b.Email))
	b.Phone = strings.TrimSpace(b.Phone)
	b.Address = strings.TrimSpace(b.Address)
	b.Model = strings.TrimSpace(b.Model)
	b.Color = strings.TrimSpace(b.Color)
	b.Variant = strings.TrimSpace(b.Variant)
	b.AdditionalRequirements = strings.TrimSpace(b.AdditionalRequirements)
}
