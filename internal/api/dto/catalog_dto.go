package dto

import "github.com/Alireza01sjd/project-god-mode/internal/api/models"

// CreateAuthorDTO for POST /api/authors
type CreateAuthorDTO struct {
	Name string  `json:"name" binding:"required"`
	Bio  *string `json:"bio,omitempty"`
}

func (d CreateAuthorDTO) ToModel() models.Author {
	return models.Author{Name: d.Name, Bio: d.Bio}
}

type AuthorResponse struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Bio  *string `json:"bio,omitempty"`
}

func AuthorFromModel(a models.Author) AuthorResponse {
	return AuthorResponse{ID: a.ID, Name: a.Name, Bio: a.Bio}
}

// CreateCategoryDTO for POST /api/categories
type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func CategoryFromModel(c models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

// CreateTagDTO for POST /api/tags
type CreateTagDTO struct {
	Name string `json:"name" binding:"required"`
}

type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TagFromModel(t models.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name}
}
