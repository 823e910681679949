package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionPageSize is the fixed page size of transaction listings.
const TransactionPageSize = 10

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	UserID    uuid.UUID
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PerPage   int
}

// Normalize applies defaults and drops filters that are not recognised.
// An unknown type is ignored rather than rejected.
func (f *TransactionFilters) Normalize() {
	f.Type = strings.ToLower(strings.TrimSpace(f.Type))
	if !IsValidEntryType(f.Type) {
		f.Type = ""
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = TransactionPageSize
	}
}

// Offset returns the number of rows skipped for the current page.
func (f TransactionFilters) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PerPage
}

// TransactionPage is one page of a filtered, newest-first transaction listing.
type TransactionPage struct {
	Data        []Transaction `json:"data"`
	CurrentPage int           `json:"current_page"`
	PerPage     int           `json:"per_page"`
	Total       int64         `json:"total"`
	LastPage    int           `json:"last_page"`
}

// NewTransactionPage builds the page envelope; LastPage is at least 1.
func NewTransactionPage(data []Transaction, total int64, page, perPage int) *TransactionPage {
	if data == nil {
		data = []Transaction{}
	}
	lastPage := 1
	if perPage > 0 && total > 0 {
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return &TransactionPage{
		Data:        data,
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
}
