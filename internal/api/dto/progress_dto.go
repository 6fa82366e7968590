package dto

import (
	"time"

	"github.com/Alireza01sjd/project-god-mode/internal/api/models"
)

// ReportProgressRequest for PUT /api/progress/:book_id. The user comes
// from the authenticated context, never from the payload.
type ReportProgressRequest struct {
	CurrentPage int `json:"current_page" binding:"min=0"`
	TotalPages  int `json:"total_pages" binding:"required,gt=0"`
}

type ProgressResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	BookID      int64              `json:"book_id"`
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
	Progress    float64            `json:"progress"`
	LastReadAt  time.Time          `json:"last_read_at"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Book        *BookBasicResponse `json:"book,omitempty"`
}

func ProgressFromModel(p models.ReadingProgress) ProgressResponse {
	resp := ProgressResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		BookID:      p.BookID,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		Progress:    p.Progress,
		LastReadAt:  p.LastReadAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Book != nil {
		b := FromBookModelToBasic(*p.Book)
		resp.Book = &b
	}
	return resp
}
