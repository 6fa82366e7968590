package repository

import (
	"context"
	"time"

	"github.com/Alireza01sjd/project-god-mode/internal/api/apperrors"
	"github.com/Alireza01sjd/project-god-mode/internal/api/models"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, session *models.ReadingSession) error
	GetByID(ctx context.Context, id string) (*models.ReadingSession, error)
	Close(ctx context.Context, id string, endTime time.Time, pagesRead, durationSeconds int) error
	ListByUser(ctx context.Context, userID string, bookID *int64) ([]models.ReadingSession, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.ReadingSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return apperrors.FromDB("create session", err)
	}
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*models.ReadingSession, error) {
	var session models.ReadingSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB("get session", err)
	}
	return &session, nil
}

// Close records the end of a session. This is the only mutation sessions
// ever receive; updated_at is stamped inside the same statement.
func (r *sessionRepository) Close(ctx context.Context, id string, endTime time.Time, pagesRead, durationSeconds int) error {
	err := r.db.WithContext(ctx).
		Model(&models.ReadingSession{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"end_time":         endTime,
			"pages_read":       pagesRead,
			"duration_seconds": durationSeconds,
			"updated_at":       time.Now(),
		}).Error
	if err != nil {
		return apperrors.FromDB("close session", err)
	}
	return nil
}

// ListByUser returns the user's sessions in creation order. Open sessions
// are included. Passing a book id narrows the list to that book.
func (r *sessionRepository) ListByUser(ctx context.Context, userID string, bookID *int64) ([]models.ReadingSession, error) {
	var list []models.ReadingSession
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if bookID != nil {
		q = q.Where("book_id = ?", *bookID)
	}
	if err := q.Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, apperrors.FromDB("list sessions", err)
	}
	return list, nil
}
