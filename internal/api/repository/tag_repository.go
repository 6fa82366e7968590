package repository

import (
	"context"

	"github.com/Alireza01sjd/project-god-mode/internal/api/apperrors"
	"github.com/Alireza01sjd/project-god-mode/internal/api/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	GetAll(ctx context.Context) ([]models.Tag, error)
	Create(ctx context.Context, t *models.Tag) error
	Delete(ctx context.Context, id int64) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	var list []models.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, apperrors.FromDB("list tags", err)
	}
	return list, nil
}

func (r *tagRepository) Create(ctx context.Context, t *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return apperrors.FromDB("create tag", err)
	}
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Tag{}, id)
	if result.Error != nil {
		return apperrors.FromDB("delete tag", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("tag %d", id)
	}
	return nil
}
