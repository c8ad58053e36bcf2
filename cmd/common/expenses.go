// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"sort"

	"fjacquet/spend-tracker/internal/dateutils"
	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/store"
)

// LoadExpenses reads every stored expense and keeps those in month, a
// YYYY-MM string. An empty month keeps everything.
func LoadExpenses(ctx context.Context, expenseStore store.ExpenseStore, month string) ([]models.Expense, error) {
	expenses, err := expenseStore.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	return FilterByMonth(expenses, month)
}

// FilterByMonth keeps the expenses dated in month. An empty month returns
// the input unchanged.
func FilterByMonth(expenses []models.Expense, month string) ([]models.Expense, error) {
	if month == "" {
		return expenses, nil
	}
	start, err := dateutils.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if dateutils.InMonth(e.Date, start) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// SortByDateDesc orders expenses newest first. Expenses on the same day keep
// their stored order.
func SortByDateDesc(expenses []models.Expense) []models.Expense {
	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dateutils.CompareDates(sorted[i].Date, sorted[j].Date) > 0
	})
	return sorted
}
