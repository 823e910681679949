package models

import "strings"

// Purpose groups budgets for aggregate reporting. Savings and Expenses are the
// recognised kinds; any other non-empty value is an Other purpose and is
// aggregated like Expenses.
type Purpose string

const (
	PurposeSavings  Purpose = "Savings"
	PurposeExpenses Purpose = "Expenses"
	PurposeNone     Purpose = ""
)

// PurposeKind is the computation path a purpose follows.
type PurposeKind int

const (
	PurposeKindExpenses PurposeKind = iota
	PurposeKindSavings
)

// NormalizePurpose maps raw input onto the stored purpose. Matching of the two
// recognised values is case-insensitive; other names are trimmed and kept.
func NormalizePurpose(raw string) Purpose {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "":
		return PurposeNone
	case "savings":
		return PurposeSavings
	case "expenses":
		return PurposeExpenses
	default:
		return Purpose(trimmed)
	}
}

// Kind returns the computation path for the purpose.
func (p Purpose) Kind() PurposeKind {
	if p == PurposeSavings {
		return PurposeKindSavings
	}
	return PurposeKindExpenses
}

// IsOther reports whether the purpose is neither Savings, Expenses nor empty.
func (p Purpose) IsOther() bool {
	return p != PurposeSavings && p != PurposeExpenses && p != PurposeNone
}

func (p Purpose) String() string {
	return string(p)
}
