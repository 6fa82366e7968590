package service

import (
	"context"

	"github.com/Alireza01sjd/project-god-mode/internal/api/models"
	"github.com/Alireza01sjd/project-god-mode/internal/api/repository"
)

// Categories and tags are flat name tables; their services are thin
// wrappers kept separate so handlers stay symmetrical with the rest of
// the catalog.

type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *categoryService) Create(ctx context.Context, c *models.Category) error {
	return s.repo.Create(ctx, c)
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

type TagService interface {
	GetAll(ctx context.Context) ([]models.Tag, error)
	Create(ctx context.Context, t *models.Tag) error
	Delete(ctx context.Context, id int64) error
}

type tagService struct {
	repo repository.TagRepository
}

func NewTagService(repo repository.TagRepository) TagService {
	return &tagService{repo: repo}
}

func (s *tagService) GetAll(ctx context.Context) ([]models.Tag, error) {
	return s.repo.GetAll(ctx)
}

func (s *tagService) Create(ctx context.Context, t *models.Tag) error {
	return s.repo.Create(ctx, t)
}

func (s *tagService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
