package models

import "github.com/google/uuid"

// SeedReport counts the rows written by a demo seeding run.
type SeedReport struct {
	UserID       uuid.UUID `json:"user_id"`
	Categories   int       `json:"categories"`
	Budgets      int       `json:"budgets"`
	Transactions int       `json:"transactions"`
}
