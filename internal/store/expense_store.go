// Package store persists expense records and loads the category and budget
// tables the rest of the application runs on.
package store

import (
	"context"

	"fjacquet/spend-tracker/internal/models"
)

// ExpenseStore is an append-only log of expense records.
//
// LoadAll returns records in insertion order. A store that has never been
// written to returns an empty slice and no error.
type ExpenseStore interface {
	Append(ctx context.Context, expense models.Expense) error
	LoadAll(ctx context.Context) ([]models.Expense, error)
	Close() error
}

// CategoryLoader loads the keyword and budget tables.
type CategoryLoader interface {
	LoadKeywordTable() (models.KeywordTable, error)
	LoadBudgetTable() (models.BudgetTable, error)
}
