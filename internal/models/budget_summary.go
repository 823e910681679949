package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProgressColor is the UI band of a budget's consumption percentage.
type ProgressColor string

const (
	ProgressColorOK       ProgressColor = "ok"
	ProgressColorWarning  ProgressColor = "warning"
	ProgressColorCritical ProgressColor = "critical"
)

// BudgetSummary is a budget joined with the ledger over its window. Every
// derived field is recomputed on read.
type BudgetSummary struct {
	Budget
	CategoryLabel string          `json:"category_name"`
	Spent         decimal.Decimal `json:"spent"`
	Remaining     decimal.Decimal `json:"remaining"`
	Percentage    decimal.Decimal `json:"percentage"`
	ProgressColor ProgressColor   `json:"progress_color"`
}

// PurposeSummary aggregates every budget of one user sharing a purpose.
// Savings purposes fill TotalSaved and ExtraSaved; all others fill TotalSpent
// and RemainingBudget.
type PurposeSummary struct {
	Purpose         Purpose          `json:"purpose"`
	BudgetCount     int              `json:"budget_count"`
	CategoryIDs     []uuid.UUID      `json:"category_ids"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	StartDate       *time.Time       `json:"start_date"`
	EndDate         *time.Time       `json:"end_date"`
	SpentOrSaved    decimal.Decimal  `json:"spent_or_saved"`
	TotalSaved      *decimal.Decimal `json:"total_saved,omitempty"`
	ExtraSaved      *decimal.Decimal `json:"extra_saved,omitempty"`
	TotalSpent      *decimal.Decimal `json:"total_spent,omitempty"`
	RemainingBudget *decimal.Decimal `json:"remaining_budget,omitempty"`
}

// BudgetOverview is the payload of the budget listing.
type BudgetOverview struct {
	Budgets          []BudgetSummary           `json:"budgets"`
	BudgetsOnPurpose map[string]PurposeSummary `json:"budgets_on_purpose"`
}
