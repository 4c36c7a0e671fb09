package repository

import (
	"context"
	"time"

	"github.com/premium-auto/showroom-api/internal/models"
	"gorm.io/gorm"
)

// BookingFilter narrows List queries. Model is matched as a case-insensitive
// substring, status as an exact value.
type BookingFilter struct {
	Status string
	Model  string
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type ModelCount struct {
	Model string `json:"model"`
	Count int64  `json:"count"`
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByBookingID(ctx context.Context, code string) (*models.Booking, error)
	FindActiveByEmailAndModel(ctx context.Context, email, model string) (*models.Booking, error)
	List(ctx context.Context, filter BookingFilter, page, limit int) ([]models.Booking, int64, error)
	UpdateByID(ctx context.Context, id uint, fields map[string]interface{}) (*models.Booking, error)
	StatusCounts(ctx context.Context) ([]StatusCount, error)
	CountAll(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	TopModels(ctx context.Context, limit int) ([]ModelCount, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if err := booking.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByBookingID(ctx context.Context, code string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Where("booking_id = ?", code).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindActiveByEmailAndModel(ctx context.Context, email, model string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("email = ? AND model = ? AND status IN ?", email, model, models.ActiveBookingStatuses).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter, page, limit int) ([]models.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Model != "" {
		q = q.Where("model ILIKE ?", "%"+filter.Model+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) UpdateByID(ctx context.Context, id uint, fields map[string]interface{}) (*models.Booking, error) {
	if err := models.ValidateBookingUpdate(fields); err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *bookingRepository) StatusCounts(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Count(&count).Error
	return count, err
}

func (r *bookingRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) TopModels(ctx context.Context, limit int) ([]ModelCount, error) {
	var counts []ModelCount
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("model, COUNT(*) AS count").
		Group("model").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error
	return counts, err
}
