package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseOn(day string, description string) models.Expense {
	date, _ := time.Parse("2006-01-02", day)
	return models.Expense{
		Date:        date,
		Category:    models.CategoryFood,
		Amount:      decimal.NewFromInt(10),
		Description: description,
	}
}

func TestFilterByMonth(t *testing.T) {
	expenses := []models.Expense{
		expenseOn("2025-10-31", "Halloween"),
		expenseOn("2025-11-01", "First"),
		expenseOn("2025-11-30", "Last"),
		expenseOn("2024-11-15", "Last Year"),
	}

	t.Run("empty month keeps everything", func(t *testing.T) {
		got, err := FilterByMonth(expenses, "")
		require.NoError(t, err)
		assert.Equal(t, expenses, got)
	})

	t.Run("keeps only the requested month", func(t *testing.T) {
		got, err := FilterByMonth(expenses, "2025-11")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "First", got[0].Description)
		assert.Equal(t, "Last", got[1].Description)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := FilterByMonth(expenses, "2023-01")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := FilterByMonth(expenses, "November")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected YYYY-MM")
	})
}

func TestSortByDateDesc(t *testing.T) {
	expenses := []models.Expense{
		expenseOn("2025-11-01", "A"),
		expenseOn("2025-11-03", "B"),
		expenseOn("2025-11-01", "C"),
		expenseOn("2025-11-02", "D"),
	}

	sorted := SortByDateDesc(expenses)

	var order []string
	for _, e := range sorted {
		order = append(order, e.Description)
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, order)
	assert.Equal(t, "A", expenses[0].Description, "input must not be reordered")
}

func TestLoadExpenses(t *testing.T) {
	ctx := context.Background()

	t.Run("filters loaded expenses", func(t *testing.T) {
		mock := &store.MockExpenseStore{Expenses: []models.Expense{
			expenseOn("2025-10-05", "October"),
			expenseOn("2025-11-05", "November"),
		}}
		got, err := LoadExpenses(ctx, mock, "2025-10")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "October", got[0].Description)
	})

	t.Run("store error", func(t *testing.T) {
		mock := &store.MockExpenseStore{LoadAllError: errors.New("disk gone")}
		_, err := LoadExpenses(ctx, mock, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load expenses")
		assert.Contains(t, err.Error(), "disk gone")
	})
}
