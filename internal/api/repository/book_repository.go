package repository

import (
	"context"
	"strings"

	"github.com/Alireza01sjd/project-god-mode/internal/api/apperrors"
	"github.com/Alireza01sjd/project-god-mode/internal/api/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, b *models.Book) error
	Update(ctx context.Context, id int64, b *models.Book) error
	Delete(ctx context.Context, id int64) error
	SearchByTitle(ctx context.Context, query string) ([]models.Book, error)
	ReplaceCategories(ctx context.Context, bookID int64, categoryIDs []int64) error
	ReplaceTags(ctx context.Context, bookID int64, tagIDs []int64) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error) {
	var list []models.Book
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Book{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		Preload("Tags").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		Preload("Tags").
		First(&b, id).Error; err != nil {
		return nil, apperrors.FromDB("get book", err)
	}
	return &b, nil
}

func (r *bookRepository) Create(ctx context.Context, b *models.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return apperrors.FromDB("create book", err)
	}
	// GORM populates b.ID and b.CreatedAt
	return nil
}

func (r *bookRepository) Update(ctx context.Context, id int64, b *models.Book) error {
	b.ID = id
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return apperrors.FromDB("update book", err)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Book{}, id)
	if result.Error != nil {
		return apperrors.FromDB("delete book", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("book %d", id)
	}
	return nil
}

// SearchByTitle performs case-insensitive partial match on title and slug.
// Splits the query into tokens and requires each token to appear in at
// least one of the fields.
func (r *bookRepository) SearchByTitle(ctx context.Context, query string) ([]models.Book, error) {
	var list []models.Book
	tokens := strings.Fields(query)
	db := r.db.WithContext(ctx)

	if len(tokens) == 0 {
		return list, nil
	}

	clauses := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens)*2)
	for _, t := range tokens {
		p := "%" + t + "%"
		// COALESCE so NULL slugs do not break ILIKE
		clauses = append(clauses, "(title ILIKE ? OR COALESCE(slug,'') ILIKE ?)")
		args = append(args, p, p)
	}

	where := strings.Join(clauses, " AND ")
	if err := db.Where(where, args...).Preload("Author").Order("created_at desc").Find(&list).Error; err != nil {
		return nil, apperrors.FromDB("search books", err)
	}
	return list, nil
}

func (r *bookRepository) ReplaceCategories(ctx context.Context, bookID int64, categoryIDs []int64) error {
	var categories []models.Category
	if len(categoryIDs) > 0 {
		if err := r.db.WithContext(ctx).Find(&categories, categoryIDs).Error; err != nil {
			return apperrors.FromDB("load categories", err)
		}
		if len(categories) != len(categoryIDs) {
			return apperrors.Reference("one or more categories do not exist")
		}
	}
	book := models.Book{ID: bookID}
	if err := r.db.WithContext(ctx).Model(&book).Association("Categories").Replace(categories); err != nil {
		return apperrors.FromDB("replace categories", err)
	}
	return nil
}

func (r *bookRepository) ReplaceTags(ctx context.Context, bookID int64, tagIDs []int64) error {
	var tags []models.Tag
	if len(tagIDs) > 0 {
		if err := r.db.WithContext(ctx).Find(&tags, tagIDs).Error; err != nil {
			return apperrors.FromDB("load tags", err)
		}
		if len(tags) != len(tagIDs) {
			return apperrors.Reference("one or more tags do not exist")
		}
	}
	book := models.Book{ID: bookID}
	if err := r.db.WithContext(ctx).Model(&book).Association("Tags").Replace(tags); err != nil {
		return apperrors.FromDB("replace tags", err)
	}
	return nil
}
