package service

import (
	"context"

	"github.com/Alireza01sjd/project-god-mode/internal/api/apperrors"
	"github.com/Alireza01sjd/project-god-mode/internal/api/models"
	"github.com/Alireza01sjd/project-god-mode/internal/api/repository"
)

type BookService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, b *models.Book) error
	Update(ctx context.Context, id int64, b *models.Book) error
	Delete(ctx context.Context, id int64) error
	SearchByTitle(ctx context.Context, query string) ([]models.Book, error)
	ReplaceCategories(ctx context.Context, bookID int64, categoryIDs []int64) error
	ReplaceTags(ctx context.Context, bookID int64, tagIDs []int64) error
}

type bookService struct {
	repo       repository.BookRepository
	authorRepo repository.AuthorRepository
}

func NewBookService(repo repository.BookRepository, authorRepo repository.AuthorRepository) BookService {
	return &bookService{repo: repo, authorRepo: authorRepo}
}

func (s *bookService) GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error) {
	return s.repo.GetAll(ctx, page, pageSize)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Create(ctx context.Context, b *models.Book) error {
	if b.TotalPages <= 0 {
		return apperrors.Validation("total_pages must be positive")
	}
	if b.AuthorID != nil {
		if _, err := s.authorRepo.GetByID(ctx, *b.AuthorID); err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return apperrors.Reference("author %d does not exist", *b.AuthorID)
			}
			return err
		}
	}
	return s.repo.Create(ctx, b)
}

func (s *bookService) Update(ctx context.Context, id int64, b *models.Book) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.TotalPages <= 0 {
		b.TotalPages = existing.TotalPages
	}
	return s.repo.Update(ctx, id, b)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *bookService) SearchByTitle(ctx context.Context, query string) ([]models.Book, error) {
	return s.repo.SearchByTitle(ctx, query)
}

func (s *bookService) ReplaceCategories(ctx context.Context, bookID int64, categoryIDs []int64) error {
	return s.repo.ReplaceCategories(ctx, bookID, categoryIDs)
}

func (s *bookService) ReplaceTags(ctx context.Context, bookID int64, tagIDs []int64) error {
	return s.repo.ReplaceTags(ctx, bookID, tagIDs)
}
