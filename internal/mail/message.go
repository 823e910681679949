package mail

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetAlertMessage is the queued form of a budget notification. It carries
// everything the worker needs so no database lookup is required to send it.
type BudgetAlertMessage struct {
	NotificationID   uuid.UUID       `json:"notification_id"`
	UserID           uuid.UUID       `json:"user_id"`
	Email            string          `json:"email"`
	RecipientName    string          `json:"recipient_name"`
	Category         string          `json:"category"`
	CategoryType     string          `json:"category_type"`
	NotificationType string          `json:"notification_type"`
	BudgetedAmount   decimal.Decimal `json:"budgeted_amount"`
	RemainingBudget  decimal.Decimal `json:"remaining_budget"`
	Message          string          `json:"message"`
	CreatedAt        time.Time       `json:"created_at"`
}

// AmountSpent is the budgeted amount minus what remains
func (m *BudgetAlertMessage) AmountSpent() decimal.Decimal {
	return m.BudgetedAmount.Sub(m.RemainingBudget)
}

func (m *BudgetAlertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func BudgetAlertMessageFromJSON(data []byte) (*BudgetAlertMessage, error) {
	var msg BudgetAlertMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
