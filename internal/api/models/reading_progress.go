package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReadingProgress represents how far a user has read a book.
// Exactly one row exists per (user, book) pair; reports for an existing
// pair update the row in place instead of inserting a duplicate.
type ReadingProgress struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_book;index" json:"user_id"`
	BookID      int64     `gorm:"not null;uniqueIndex:idx_progress_user_book;index" json:"book_id"`
	CurrentPage int       `gorm:"not null;default:0" json:"current_page"`
	TotalPages  int       `gorm:"not null" json:"total_pages"`
	Progress    float64   `gorm:"type:decimal(5,2);not null;default:0" json:"progress"`
	LastReadAt  time.Time `gorm:"not null" json:"last_read_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"book,omitempty"`
}

// BeforeCreate hook to set UUID before creating a ReadingProgress
func (p *ReadingProgress) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (ReadingProgress) TableName() string {
	return "reading_progress"
}
