package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReadingSession is one reading interval. Rows are append-only: the only
// permitted mutation after creation is closing the session (end_time,
// pages_read, duration). An open session (end_time null) is a valid
// terminal state for abandoned reads.
//
// Sessions are correlated with ReadingProgress only through the shared
// (user_id, book_id) pair; there is no foreign key between the two tables.
type ReadingSession struct {
	ID              string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string     `gorm:"type:uuid;not null;index" json:"user_id"`
	BookID          int64      `gorm:"not null;index" json:"book_id"`
	StartTime       time.Time  `gorm:"not null" json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	PagesRead       int        `gorm:"not null;default:0" json:"pages_read"`
	DurationSeconds int        `gorm:"not null;default:0" json:"duration_seconds"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"book,omitempty"`
}

// BeforeCreate hook to set UUID before creating a ReadingSession
func (s *ReadingSession) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

// IsOpen reports whether the session has not been closed yet.
func (s *ReadingSession) IsOpen() bool {
	return s.EndTime == nil
}

func (ReadingSession) TableName() string {
	return "reading_sessions"
}
