package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MaxCategoryNameLength = 255
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryNameTooLong  = errors.New("category name must be at most 255 characters")
	ErrInvalidCategoryType  = errors.New("invalid category type")
)

// Category tags transactions and budgets. Names are unique and stored lowercase.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Type      *string   `gorm:"type:varchar(20)" json:"type"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// NormalizeCategoryName returns the stored form of a category name.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

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

	c.Normalize()
	return c.Validate()
}

// Normalize lowercases the name and type; an empty type becomes nil.
func (c *Category) Normalize() {
	c.Name = NormalizeCategoryName(c.Name)
	if c.Type != nil {
		t := strings.ToLower(strings.TrimSpace(*c.Type))
		if t == "" {
			c.Type = nil
		} else {
			c.Type = &t
		}
	}
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrCategoryNameRequired
	}
	if utf8.RuneCountInString(c.Name) > MaxCategoryNameLength {
		return ErrCategoryNameTooLong
	}
	if c.Type != nil && !IsValidEntryType(*c.Type) {
		return ErrInvalidCategoryType
	}
	return nil
}

// TypeOrEmpty returns the category type or "" when unset.
func (c *Category) TypeOrEmpty() string {
	if c.Type == nil {
		return ""
	}
	return *c.Type
}

func (Category) TableName() string {
	return "categories"
}
