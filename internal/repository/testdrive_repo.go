package repository

import (
	"context"
	"time"

	"github.com/premium-auto/showroom-api/internal/models"
	"gorm.io/gorm"
)

type TestDriveFilter struct {
	Status string
}

type TestDriveRepository interface {
	Create(ctx context.Context, td *models.TestDrive) error
	FindByID(ctx context.Context, id uint) (*models.TestDrive, error)
	FindActiveByEmailAndDate(ctx context.Context, email string, date time.Time) (*models.TestDrive, error)
	List(ctx context.Context, filter TestDriveFilter, page, limit int) ([]models.TestDrive, int64, error)
	UpdateStatus(ctx context.Context, id uint, status models.TestDriveStatus) (*models.TestDrive, error)
	StatusCounts(ctx context.Context) ([]StatusCount, error)
	CountAll(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type testDriveRepository struct {
	db *gorm.DB
}

func NewTestDriveRepository(db *gorm.DB) TestDriveRepository {
	return &testDriveRepository{db: db}
}

func (r *testDriveRepository) Create(ctx context.Context, td *models.TestDrive) error {
	if err := td.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(td).Error
}

func (r *testDriveRepository) FindByID(ctx context.Context, id uint) (*models.TestDrive, error) {
	var td models.TestDrive
	if err := r.db.WithContext(ctx).First(&td, id).Error; err != nil {
		return nil, err
	}
	return &td, nil
}

func (r *testDriveRepository) FindActiveByEmailAndDate(ctx context.Context, email string, date time.Time) (*models.TestDrive, error) {
	var td models.TestDrive
	err := r.db.WithContext(ctx).
		Where("email = ? AND preferred_date = ? AND status IN ?", email, date, models.ActiveTestDriveStatuses).
		First(&td).Error
	if err != nil {
		return nil, err
	}
	return &td, nil
}

func (r *testDriveRepository) List(ctx context.Context, filter TestDriveFilter, page, limit int) ([]models.TestDrive, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.TestDrive{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var testDrives []models.TestDrive
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&testDrives).Error
	if err != nil {
		return nil, 0, err
	}
	return testDrives, total, nil
}

func (r *testDriveRepository) UpdateStatus(ctx context.Context, id uint, status models.TestDriveStatus) (*models.TestDrive, error) {
	if !models.ValidTestDriveStatus(string(status)) {
		return nil, &models.ValidationError{Messages: []string{"Invalid test drive status"}}
	}
	res := r.db.WithContext(ctx).
		Model(&models.TestDrive{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *testDriveRepository) StatusCounts(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.TestDrive{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

func (r *testDriveRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TestDrive{}).Count(&count).Error
	return count, err
}

func (r *testDriveRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TestDrive{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
