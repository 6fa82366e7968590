package dto

import (
	"time"

	"github.com/Alireza01sjd/project-god-mode/internal/api/models"
)

// CreateBookDTO for POST /api/books
type CreateBookDTO struct {
	Title       string  `json:"title" binding:"required"`
	TotalPages  int     `json:"total_pages" binding:"required,gt=0"`
	Slug        *string `json:"slug,omitempty"`
	AuthorID    *int64  `json:"author_id,omitempty"`
	Description *string `json:"description,omitempty"`
	Language    *string `json:"language,omitempty"`
	CoverURL    *string `json:"cover_url,omitempty"`
	CategoryIDs []int64 `json:"category_ids,omitempty"`
	TagIDs      []int64 `json:"tag_ids,omitempty"`
}

func (d CreateBookDTO) ToModel() models.Book {
	return models.Book{
		Title:       d.Title,
		TotalPages:  d.TotalPages,
		Slug:        d.Slug,
		AuthorID:    d.AuthorID,
		Description: d.Description,
		Language:    d.Language,
		CoverURL:    d.CoverURL,
	}
}

// UpdateBookDTO for PUT /api/books/:book_id; only provided fields are applied
type UpdateBookDTO struct {
	Title       *string `json:"title,omitempty"`
	TotalPages  *int    `json:"total_pages,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	AuthorID    *int64  `json:"author_id,omitempty"`
	Description *string `json:"description,omitempty"`
	Language    *string `json:"language,omitempty"`
	CoverURL    *string `json:"cover_url,omitempty"`
	CategoryIDs []int64 `json:"category_ids,omitempty"`
	TagIDs      []int64 `json:"tag_ids,omitempty"`
}

func (d UpdateBookDTO) ApplyTo(b *models.Book) {
	if d.Title != nil {
		b.Title = *d.Title
	}
	if d.TotalPages != nil {
		b.TotalPages = *d.TotalPages
	}
	if d.Slug != nil {
		b.Slug = d.Slug
	}
	if d.AuthorID != nil {
		b.AuthorID = d.AuthorID
	}
	if d.Description != nil {
		b.Description = d.Description
	}
	if d.Language != nil {
		b.Language = d.Language
	}
	if d.CoverURL != nil {
		b.CoverURL = d.CoverURL
	}
}

type BookResponse struct {
	ID          int64              `json:"id"`
	Slug        *string            `json:"slug,omitempty"`
	Title       string             `json:"title"`
	TotalPages  int                `json:"total_pages"`
	Description *string            `json:"description,omitempty"`
	Language    *string            `json:"language,omitempty"`
	CoverURL    *string            `json:"cover_url,omitempty"`
	Author      *AuthorResponse    `json:"author,omitempty"`
	Categories  []CategoryResponse `json:"categories,omitempty"`
	Tags        []TagResponse      `json:"tags,omitempty"`
	CreatedAt   *time.Time         `json:"created_at,omitempty"`
}

// BookBasicResponse carries only the list-view fields.
type BookBasicResponse struct {
	ID         int64   `json:"id"`
	Slug       *string `json:"slug,omitempty"`
	Title      string  `json:"title"`
	TotalPages int     `json:"total_pages"`
	CoverURL   *string `json:"cover_url,omitempty"`
}

func FromBookModel(b models.Book) BookResponse {
	resp := BookResponse{
		ID:          b.ID,
		Slug:        b.Slug,
		Title:       b.Title,
		TotalPages:  b.TotalPages,
		Description: b.Description,
		Language:    b.Language,
		CoverURL:    b.CoverURL,
		CreatedAt:   b.CreatedAt,
	}
	if b.Author != nil {
		a := AuthorFromModel(*b.Author)
		resp.Author = &a
	}
	for _, c := range b.Categories {
		resp.Categories = append(resp.Categories, CategoryFromModel(c))
	}
	for _, t := range b.Tags {
		resp.Tags = append(resp.Tags, TagFromModel(t))
	}
	return resp
}

func FromBookModelToBasic(b models.Book) BookBasicResponse {
	return BookBasicResponse{
		ID:         b.ID,
		Slug:       b.Slug,
		Title:      b.Title,
		TotalPages: b.TotalPages,
		CoverURL:   b.CoverURL,
	}
}
