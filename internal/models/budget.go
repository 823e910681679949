package models

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetPeriodDaily   = "daily"
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodMonthly = "monthly"
	BudgetPeriodYearly  = "yearly"
	BudgetPeriodCustom  = "custom"
)

var (
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")
	ErrBudgetWindowInvalid = errors.New("budget end date must not be before start date")
	ErrBudgetCategoryEmpty = errors.New("budget category is required")
)

// BudgetPeriods lists the period values a client may send. Custom is never
// requested explicitly; it is stored when the period is omitted.
func BudgetPeriods() []string {
	return []string{BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly}
}

// IsRequestableBudgetPeriod reports whether p may appear in a budget request.
func IsRequestableBudgetPeriod(p string) bool {
	return slices.Contains(BudgetPeriods(), p)
}

// IsValidBudgetPeriod reports whether p may be stored on a budget.
func IsValidBudgetPeriod(p string) bool {
	return p == BudgetPeriodCustom || IsRequestableBudgetPeriod(p)
}

// IsCalendarPeriod reports whether the window of p follows the calendar and can be rolled over.
func IsCalendarPeriod(p string) bool {
	return p == BudgetPeriodWeekly || p == BudgetPeriodMonthly || p == BudgetPeriodYearly
}

// Budget is a spending or saving limit on one category over a date window.
type Budget struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Period     string          `gorm:"type:varchar(20);not null" json:"period"`
	Purpose    Purpose         `gorm:"type:varchar(100);index" json:"purpose"`
	StartDate  time.Time       `gorm:"not null" json:"start_date"`
	EndDate    time.Time       `gorm:"not null" json:"end_date"`
	AutoReset  bool            `gorm:"not null" json:"auto_reset"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}
	b.StartDate = b.StartDate.UTC()
	b.EndDate = b.EndDate.UTC()

	return b.Validate()
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
		return nil
	}
	return b.Validate()
}

func (b *Budget) Validate() error {
	if b.CategoryID == uuid.Nil {
		return ErrBudgetCategoryEmpty
	}
	if b.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !IsValidBudgetPeriod(b.Period) {
		return ErrInvalidBudgetPeriod
	}
	if b.EndDate.Before(b.StartDate) {
		return ErrBudgetWindowInvalid
	}
	return nil
}

// Window returns the inclusive date window the budget covers.
func (b *Budget) Window() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// CategoryName returns the loaded category name or "" when not preloaded.
func (b *Budget) CategoryName() string {
	if b.Category == nil {
		return ""
	}
	return b.Category.Name
}

func (Budget) TableName() string {
	return "budgets"
}
