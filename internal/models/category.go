package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryTitleRequired = errors.New("category title is required")
	ErrCategoryTitleTooLong  = errors.New("category title too long")
)

// Category is a persisted transaction category. Title is the reconciliation key
// and is unique across the table.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_categories_title" json:"title"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.Title == "" {
		return ErrCategoryTitleRequired
	}
	if utf8.RuneCountInString(c.Title) > MaxTitleLength {
		return ErrCategoryTitleTooLong
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// CategoryIndex maps category titles to their records.
type CategoryIndex map[string]*Category

// IndexCategoriesByTitle builds a title-keyed index. Later entries win on duplicate titles.
func IndexCategoriesByTitle(categories []Category) CategoryIndex {
	index := make(CategoryIndex, len(categories))
	for i := range categories {
		index[categories[i].Title] = &categories[i]
	}
	return index
}
