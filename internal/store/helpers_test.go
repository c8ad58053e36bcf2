package store

import (
	"testing"
	"time"

	"fjacquet/spend-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testExpense(day int, category models.Category, amount, description string) models.Expense {
	return models.Expense{
		Date:        time.Date(2025, time.November, day, 0, 0, 0, 0, time.UTC),
		Category:    category,
		Amount:      decimal.RequireFromString(amount),
		Description: description,
	}
}

func assertSameExpenses(t *testing.T, expected, actual []models.Expense) {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return
	}
	for i := range expected {
		assert.True(t, expected[i].Date.Equal(actual[i].Date), "date of record %d", i)
		assert.Equal(t, expected[i].Category, actual[i].Category, "category of record %d", i)
		assert.True(t, expected[i].Amount.Equal(actual[i].Amount), "amount of record %d: %s", i, actual[i].Amount)
		assert.Equal(t, expected[i].Description, actual[i].Description, "description of record %d", i)
	}
}
