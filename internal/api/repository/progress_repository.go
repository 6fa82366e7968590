package repository

import (
	"context"

	"github.com/Alireza01sjd/project-god-mode/internal/api/apperrors"
	"github.com/Alireza01sjd/project-god-mode/internal/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	Upsert(ctx context.Context, progress *models.ReadingProgress) error
	Get(ctx context.Context, userID string, bookID int64) (*models.ReadingProgress, error)
	ListByUser(ctx context.Context, userID string) ([]models.ReadingProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Upsert inserts a progress row or, when a row for the (user_id, book_id)
// pair already exists, updates it in place. The conflict is resolved by
// the database's ON CONFLICT clause, so two concurrent reports for the
// same pair cannot both insert; whichever commits last wins.
// created_at and the row id are left untouched on conflict, and the
// RETURNING clause repopulates the struct from the stored row so callers
// always see the durable id and creation time, not the candidate values
// the insert path generated.
func (r *progressRepository) Upsert(ctx context.Context, progress *models.ReadingProgress) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"current_page", "total_pages", "progress", "last_read_at", "updated_at",
		}),
	}, clause.Returning{}).Create(progress).Error
	if err != nil {
		return apperrors.FromDB("upsert progress", err)
	}
	return nil
}

func (r *progressRepository) Get(ctx context.Context, userID string, bookID int64) (*models.ReadingProgress, error) {
	var progress models.ReadingProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&progress).Error; err != nil {
		return nil, apperrors.FromDB("get progress", err)
	}
	return &progress, nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID string) ([]models.ReadingProgress, error) {
	var list []models.ReadingProgress
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("last_read_at DESC").
		Find(&list).Error; err != nil {
		return nil, apperrors.FromDB("list progress", err)
	}
	return list, nil
}
