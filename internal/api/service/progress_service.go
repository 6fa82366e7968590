package service

import (
	"context"
	"math"
	"time"

	"github.com/Alireza01sjd/project-god-mode/internal/api/apperrors"
	"github.com/Alireza01sjd/project-god-mode/internal/api/models"
	"github.com/Alireza01sjd/project-god-mode/internal/api/repository"
	"github.com/Alireza01sjd/project-god-mode/internal/cache"
)

// ProgressService maintains the single-row-per-(user, book) reading
// progress. Every method takes the authenticated caller id and refuses
// to touch rows the caller does not own.
type ProgressService interface {
	Report(ctx context.Context, callerID, userID string, bookID int64, currentPage, totalPages int) (*models.ReadingProgress, error)
	Get(ctx context.Context, callerID, userID string, bookID int64) (*models.ReadingProgress, error)
	List(ctx context.Context, callerID, userID string) ([]models.ReadingProgress, error)
}

type progressService struct {
	repo     repository.ProgressRepository
	bookRepo repository.BookRepository
	cache    *cache.ProgressCache
}

func NewProgressService(repo repository.ProgressRepository, bookRepo repository.BookRepository, progressCache *cache.ProgressCache) ProgressService {
	return &progressService{
		repo:     repo,
		bookRepo: bookRepo,
		cache:    progressCache,
	}
}

// Report records that the user is on currentPage of totalPages. The first
// report for a (user, book) pair inserts a row; every later report updates
// it in place through the repository upsert, refreshing last_read_at and
// updated_at while created_at keeps its original value.
//
// currentPage is clamped to [0, totalPages] before the percentage is
// computed, so an over-range page yields 100.00 rather than an error or
// a >100% artifact.
func (s *progressService) Report(ctx context.Context, callerID, userID string, bookID int64, currentPage, totalPages int) (*models.ReadingProgress, error) {
	if callerID != userID {
		return nil, apperrors.Authorization("cannot report progress for another user")
	}
	if currentPage < 0 {
		return nil, apperrors.Validation("current_page must not be negative")
	}
	if totalPages <= 0 {
		return nil, apperrors.Validation("total_pages must be positive")
	}

	// book existence is a precondition, not something we create on the fly
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, apperrors.Reference("book %d does not exist", bookID)
		}
		return nil, err
	}

	if currentPage > totalPages {
		currentPage = totalPages
	}

	now := time.Now()
	progress := &models.ReadingProgress{
		UserID:      userID,
		BookID:      bookID,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		Progress:    percent(currentPage, totalPages),
		LastReadAt:  now,
		UpdatedAt:   now,
	}

	if err := s.repo.Upsert(ctx, progress); err != nil {
		return nil, err
	}

	// cache refresh is best effort; the row is already durable
	_ = s.cache.Set(ctx, progress)

	return progress, nil
}

func (s *progressService) Get(ctx context.Context, callerID, userID string, bookID int64) (*models.ReadingProgress, error) {
	if callerID != userID {
		return nil, apperrors.Authorization("cannot read another user's progress")
	}

	if cached, err := s.cache.Get(ctx, userID, bookID); err == nil && cached != nil {
		return cached, nil
	}

	progress, err := s.repo.Get(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, progress)
	return progress, nil
}

func (s *progressService) List(ctx context.Context, callerID, userID string) ([]models.ReadingProgress, error) {
	if callerID != userID {
		return nil, apperrors.Authorization("cannot list another user's progress")
	}
	return s.repo.ListByUser(ctx, userID)
}

// percent computes the reading percentage with two-decimal precision,
// clamped to [0, 100]. Callers guarantee totalPages > 0.
func percent(currentPage, totalPages int) float64 {
	p := math.Round(float64(currentPage)/float64(totalPages)*10000) / 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
