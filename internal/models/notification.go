package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	NotificationTypeAlmostExceeded = "almost exceeded"
	NotificationTypeExceeded       = "exceeded"
)

// Notification records a budget threshold crossing shown to the user.
type Notification struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	BudgetID         *uuid.UUID      `gorm:"type:uuid;index" json:"budget_id"`
	Category         string          `gorm:"type:varchar(255);not null" json:"category"`
	NotificationType string          `gorm:"type:varchar(30);not null" json:"notification_type"`
	BudgetedAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"budgeted_amount"`
	RemainingBudget  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"remaining_budget"`
	Message          string          `gorm:"type:text;not null" json:"message"`
	DedupKey         string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	ReadAt           *time.Time      `gorm:"index" json:"read_at"`
	CreatedAt        time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	now := time.Now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = now
	}

	if n.DedupKey == "" {
		return fmt.Errorf("notification dedup key is required")
	}
	if n.NotificationType != NotificationTypeAlmostExceeded && n.NotificationType != NotificationTypeExceeded {
		return fmt.Errorf("invalid notification type: %s", n.NotificationType)
	}

	return nil
}

// IsRead reports whether the user has acknowledged the notification.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// AmountSpent is the budgeted amount minus what remains.
func (n *Notification) AmountSpent() decimal.Decimal {
	return n.BudgetedAmount.Sub(n.RemainingBudget)
}

// NotificationDedupKey identifies one threshold crossing of one budget in one
// budget window. A second crossing of the same kind in the same window maps to
// the same key.
func NotificationDedupKey(userID, budgetID uuid.UUID, notificationType string, windowStart time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%s", userID, budgetID, notificationType, windowStart.UTC().Format("2006-01-02"))
}

// BudgetNotificationMessage renders the user-facing alert text.
func BudgetNotificationMessage(budgeted, remaining decimal.Decimal) string {
	spent := budgeted.Sub(remaining)
	return fmt.Sprintf("You have spent %s of your budgeted %s", spent.String(), budgeted.String())
}

func (Notification) TableName() string {
	return "notifications"
}
