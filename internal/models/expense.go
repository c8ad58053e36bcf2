package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDescription is used when no word of the input survives into the description.
const DefaultDescription = "General Expense"

// Expense is a persisted spending record. Records are append-only.
type Expense struct {
	Date        time.Time       `json:"date" yaml:"date"`
	Category    Category        `json:"category" yaml:"category"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Description string          `json:"description" yaml:"description"`
}

// Draft is the result of parsing free text: an expense that has no date yet and
// has not been confirmed. Every field is always populated.
type Draft struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
}

// EmptyDraft returns the draft produced for input with no usable tokens.
func EmptyDraft() Draft {
	return Draft{
		Amount:      decimal.Zero,
		Category:    DefaultCategory,
		Description: DefaultDescription,
	}
}

// ToExpense dates the draft. The date is truncated to the calendar day in UTC.
func (d Draft) ToExpense(date time.Time) Expense {
	return Expense{
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Category:    d.Category,
		Amount:      d.Amount,
		Description: d.Description,
	}
}
