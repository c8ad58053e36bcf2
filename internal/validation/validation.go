// Package validation checks expenses and user-supplied options before they
// reach a store.
package validation

import (
	"fmt"
	"strings"

	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/parsererror"
)

// ValidateExpense rejects records that must not be persisted: a missing date,
// an unknown category or an amount that is not at least one cent.
func ValidateExpense(e models.Expense) error {
	if e.Date.IsZero() {
		return &parsererror.ValidationError{Field: "date", Reason: "date is required"}
	}
	if !e.Category.IsValid() {
		return &parsererror.ValidationError{
			Field:  "category",
			Value:  string(e.Category),
			Reason: "unknown category",
		}
	}
	// Records are persisted with cent precision in CSV; an amount that rounds
	// to zero cents would reload as zero.
	if !e.Amount.Round(2).IsPositive() {
		return &parsererror.ValidationError{
			Field:  "amount",
			Value:  e.Amount.String(),
			Reason: "amount must exceed zero",
		}
	}
	return nil
}

// ValidateDescription rejects descriptions that cannot be stored on one line.
func ValidateDescription(description string) error {
	if strings.ContainsAny(description, "\r\n") {
		return &parsererror.ValidationError{Field: "description", Reason: "description must be a single line"}
	}
	return nil
}

// IsValidOutputFormat checks if the given report format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case "text", "json", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'text', 'json', 'csv'", format)
	}
}
