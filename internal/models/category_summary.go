package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryAmount is the budgeted total of one category
type CategoryAmount struct {
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// TypeTotal is the ledger total of one transaction type
type TypeTotal struct {
	Type        string          `json:"type"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
