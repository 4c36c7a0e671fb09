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

var (
	ErrTestDriveNotFound  = errors.New("test drive request not found")
	ErrDateInPast         = errors.New("preferred date must be today or in the future")
	ErrDuplicateTestDrive = errors.New("an active test drive request already exists for this date")
)

type TestDriveStats struct {
	StatusCounts   []repository.StatusCount `json:"statusStats"`
	TotalRequests  int64                    `json:"totalRequests"`
	RecentRequests int64                    `json:"recentRequests"`
}

type TestDriveService interface {
	SubmitTestDrive(ctx context.Context, td *models.TestDrive) (*models.TestDrive, error)
	GetTestDrive(ctx context.Context, id uint) (*models.TestDrive, error)
	ListTestDrives(ctx context.Context, filter repository.TestDriveFilter, page, limit int) ([]models.TestDrive, int64, error)
	UpdateTestDriveStatus(ctx context.Context, id uint, status models.TestDriveStatus) (*models.TestDrive, error)
	Stats(ctx context.Context) (*TestDriveStats, error)
}

type testDriveService struct {
	repo      repository.TestDriveRepository
	mailer    *mailer.Mailer
	publisher *rabbitmq.Publisher
}

func NewTestDriveService(repo repository.TestDriveRepository, m *mailer.Mailer, publisher *rabbitmq.Publisher) TestDriveService {
	return &testDriveService{repo: repo, mailer: m, publisher: publisher}
}

func (s *testDriveService) SubmitTestDrive(ctx context.Context, td *models.TestDrive) (*models.TestDrive, error) {
	normalizeTestDrive(td)

	// Date-only comparison: a slot later today is still bookable.
	if td.PreferredDate.Before(models.StartOfDay(time.Now())) {
		return nil, ErrDateInPast
	}

	_, err := s.repo.FindActiveByEmailAndDate(ctx, td.Email, td.PreferredDate)
	if err == nil {
		return nil, ErrDuplicateTestDrive
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("duplicate check: %w", err)
	}

	if err := s.repo.Create(ctx, td); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTestDrive
		}
		return nil, err
	}

	go s.mailer.Send(mailer.TestDriveConfirmation(td))

	if s.publisher != nil {
		if err := s.publisher.Publish("testdrive.created", td); err != nil {
			log.Printf("[testdrive] publish testdrive.created failed: %v", err)
		}
	}

	return td, nil
}

func (s *testDriveService) GetTestDrive(ctx context.Context, id uint) (*models.TestDrive, error) {
	td, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestDriveNotFound
		}
		return nil, err
	}
	return td, nil
}

func (s *testDriveService) ListTestDrives(ctx context.Context, filter repository.TestDriveFilter, page, limit int) ([]models.TestDrive, int64, error) {
	return s.repo.List(ctx, filter, page, limit)
}

func (s *testDriveService) UpdateTestDriveStatus(ctx context.Context, id uint, status models.TestDriveStatus) (*models.TestDrive, error) {
	td, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestDriveNotFound
		}
		return nil, err
	}
	return td, nil
}

func (s *testDriveService) Stats(ctx context.Context) (*TestDriveStats, error) {
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

	return &TestDriveStats{
		StatusCounts:   statusCounts,
		TotalRequests:  total,
		RecentRequests: recent,
	}, nil
}

func normalizeTestDrive(td *models.TestDrive) {
	td.Name = strings.TrimSpace(td.Name)
	td.Email = strings.ToLower(strings.TrimSpace(td.Email))
	td.Phone = strings.TrimSpace(td.Phone)
	td.VehicleModel = strings.TrimSpace(td.VehicleModel)
	td.Message = strings.TrimSpace(td.Message)
}
