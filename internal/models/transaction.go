package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Entry types shared by transactions and categories.
const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpenses = "expenses"
	TransactionTypeSavings  = "savings"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("amount must not be negative")
	ErrTransactionDateMissing = errors.New("transaction date is required")
)

// EntryTypes lists the accepted transaction and category types.
func EntryTypes() []string {
	return []string{TransactionTypeIncome, TransactionTypeExpenses, TransactionTypeSavings}
}

// IsValidEntryType reports whether t (case-insensitive) is one of EntryTypes.
func IsValidEntryType(t string) bool {
	switch strings.ToLower(t) {
	case TransactionTypeIncome, TransactionTypeExpenses, TransactionTypeSavings:
		return true
	}
	return false
}

// Transaction is one dated monetary movement recorded by a user.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid;index" json:"category_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type            string          `gorm:"type:varchar(20);not null;index" json:"type"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transaction_date"`
	PaymentMethod   *string         `gorm:"type:varchar(50)" json:"payment_method"`
	Description     string          `gorm:"type:text" json:"description"`
	Attachments     StringList      `gorm:"type:text" json:"attachments"`
	CreatedAt       time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	if t.Attachments == nil {
		t.Attachments = StringList{}
	}
	t.TransactionDate = t.TransactionDate.UTC()

	t.Normalize()
	return t.Validate()
}

// Normalize lowercases the type and payment method.
func (t *Transaction) Normalize() {
	t.Type = strings.ToLower(strings.TrimSpace(t.Type))
	if t.PaymentMethod != nil {
		pm := strings.ToLower(strings.TrimSpace(*t.PaymentMethod))
		if pm == "" {
			t.PaymentMethod = nil
		} else {
			t.PaymentMethod = &pm
		}
	}
}

// Validate validates the transaction
func (t *Transaction) Validate() error {
	if !IsValidEntryType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.TransactionDate.IsZero() {
		return ErrTransactionDateMissing
	}

	return nil
}

// IsCategorized reports whether the transaction counts toward category budgets.
func (t *Transaction) IsCategorized() bool {
	return t.CategoryID != nil && *t.CategoryID != uuid.Nil
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
