package repository

import (
	"context"

	"github.com/Alireza01sjd/project-god-mode/internal/api/apperrors"
	"github.com/Alireza01sjd/project-god-mode/internal/api/models"

	"gorm.io/gorm"
)

type AuthorRepository interface {
	GetAll(ctx context.Context) ([]models.Author, error)
	GetByID(ctx context.Context, id int64) (*models.Author, error)
	Create(ctx context.Context, a *models.Author) error
	Update(ctx context.Context, id int64, a *models.Author) error
	Delete(ctx context.Context, id int64) error
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) GetAll(ctx context.Context) ([]models.Author, error) {
	var list []models.Author
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, apperrors.FromDB("list authors", err)
	}
	return list, nil
}

func (r *authorRepository) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	var a models.Author
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, apperrors.FromDB("get author", err)
	}
	return &a, nil
}

func (r *authorRepository) Create(ctx context.Context, a *models.Author) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return apperrors.FromDB("create author", err)
	}
	return nil
}

func (r *authorRepository) Update(ctx context.Context, id int64, a *models.Author) error {
	a.ID = id
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return apperrors.FromDB("update author", err)
	}
	return nil
}

func (r *authorRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Author{}, id)
	if result.Error != nil {
		return apperrors.FromDB("delete author", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("author %d", id)
	}
	return nil
}
