package store

import (
	"context"
	"sync"

	"fjacquet/spend-tracker/internal/models"
)

// MockExpenseStore is an in-memory ExpenseStore for testing.
type MockExpenseStore struct {
	mu       sync.Mutex
	Expenses []models.Expense
	Closed   bool

	// Error flags for testing error conditions
	AppendError  error
	LoadAllError error
	CloseError   error
}

// Append records the expense unless AppendError is set.
func (m *MockExpenseStore) Append(_ context.Context, expense models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AppendError != nil {
		return m.AppendError
	}
	m.Expenses = append(m.Expenses, expense)
	return nil
}

// LoadAll returns a copy of the recorded expenses.
func (m *MockExpenseStore) LoadAll(_ context.Context) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadAllError != nil {
		return nil, m.LoadAllError
	}
	return append([]models.Expense{}, m.Expenses...), nil
}

// Close marks the store closed.
func (m *MockExpenseStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return m.CloseError
}

// MockCategoryLoader returns fixed tables, or the built-in ones when unset.
type MockCategoryLoader struct {
	Keywords *models.KeywordTable
	Budgets  *models.BudgetTable

	LoadKeywordTableError error
	LoadBudgetTableError  error
}

// LoadKeywordTable returns the configured keyword table.
func (m *MockCategoryLoader) LoadKeywordTable() (models.KeywordTable, error) {
	if m.LoadKeywordTableError != nil {
		return models.KeywordTable{}, m.LoadKeywordTableError
	}
	if m.Keywords == nil {
		return models.DefaultKeywordTable(), nil
	}
	return *m.Keywords, nil
}

// LoadBudgetTable returns the configured budget table.
func (m *MockCategoryLoader) LoadBudgetTable() (models.BudgetTable, error) {
	if m.LoadBudgetTableError != nil {
		return models.BudgetTable{}, m.LoadBudgetTableError
	}
	if m.Budgets == nil {
		return models.DefaultBudgetTable(), nil
	}
	return *m.Budgets, nil
}
