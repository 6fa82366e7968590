package models

import "time"

type Book struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug        *string    `json:"slug,omitempty" gorm:"uniqueIndex;size:200"`
	Title       string     `json:"title" gorm:"not null"`
	AuthorID    *int64     `json:"author_id,omitempty" gorm:"index"`
	TotalPages  int        `json:"total_pages" gorm:"not null"`
	Description *string    `json:"description,omitempty"`
	Language    *string    `json:"language,omitempty" gorm:"size:10"`
	CoverURL    *string    `json:"cover_url,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime"`

	// associations
	Author     *Author    `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Categories []Category `json:"categories,omitempty" gorm:"many2many:book_categories;constraint:OnDelete:CASCADE;"`
	Tags       []Tag      `json:"tags,omitempty" gorm:"many2many:book_tags;constraint:OnDelete:CASCADE;"`
}

func (Book) TableName() string {
	return "books"
}
