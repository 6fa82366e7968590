package dto

import (
	"time"

	"github.com/Alireza01sjd/project-god-mode/internal/api/models"
)

// OpenSessionRequest for POST /api/sessions. start_time defaults to the
// server clock when omitted.
type OpenSessionRequest struct {
	BookID    int64      `json:"book_id" binding:"required,gt=0"`
	StartTime *time.Time `json:"start_time,omitempty"`
}

// CloseSessionRequest for POST /api/sessions/:session_id/close.
// duration_seconds overrides the wall-clock interval when supplied.
type CloseSessionRequest struct {
	PagesRead       int        `json:"pages_read" binding:"min=0"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationSeconds *int       `json:"duration_seconds,omitempty"`
}

type SessionResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	BookID          int64      `json:"book_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	PagesRead       int        `json:"pages_read"`
	DurationSeconds int        `json:"duration_seconds"`
	CreatedAt       time.Time  `json:"created_at"`
}

func SessionFromModel(s models.ReadingSession) SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		BookID:          s.BookID,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		PagesRead:       s.PagesRead,
		DurationSeconds: s.DurationSeconds,
		CreatedAt:       s.CreatedAt,
	}
}
