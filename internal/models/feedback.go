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
	FeedbackTypeBug         = "bug"
	FeedbackTypeFeature     = "feature"
	FeedbackTypeImprovement = "improvement"
	FeedbackTypeGeneral     = "general"

	MaxFeedbackTitleLength = 255
)

var (
	ErrInvalidFeedbackType = errors.New("invalid feedback type")
	ErrFeedbackTitle       = errors.New("feedback title is required and must be at most 255 characters")
	ErrFeedbackDescription = errors.New("feedback description is required")
)

// IsValidFeedbackType reports whether t is an accepted feedback type.
func IsValidFeedbackType(t string) bool {
	switch strings.ToLower(t) {
	case FeedbackTypeBug, FeedbackTypeFeature, FeedbackTypeImprovement, FeedbackTypeGeneral:
		return true
	}
	return false
}

// Feedback is a product feedback submission.
type Feedback struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        string     `gorm:"type:varchar(30);not null" json:"type"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Attachments StringList `gorm:"type:text" json:"attachments"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	now := time.Now()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}
	if f.Attachments == nil {
		f.Attachments = StringList{}
	}

	f.Type = strings.ToLower(strings.TrimSpace(f.Type))
	return f.Validate()
}

func (f *Feedback) Validate() error {
	if !IsValidFeedbackType(f.Type) {
		return ErrInvalidFeedbackType
	}
	title := strings.TrimSpace(f.Title)
	if title == "" || utf8.RuneCountInString(title) > MaxFeedbackTitleLength {
		return ErrFeedbackTitle
	}
	if strings.TrimSpace(f.Description) == "" {
		return ErrFeedbackDescription
	}
	return nil
}

func (Feedback) TableName() string {
	return "feedback"
}
