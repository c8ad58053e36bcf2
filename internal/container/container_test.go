package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/spend-tracker/internal/config"
	"fjacquet/spend-tracker/internal/logging"
	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Data.Directory = t.TempDir()
	return cfg
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      func(t *testing.T) *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      func(t *testing.T) *config.Config { return nil },
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "csv backend",
			config: testConfig,
		},
		{
			name: "sqlite backend",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t)
				cfg.Storage.Backend = config.BackendSQLite
				return cfg
			},
		},
		{
			name: "unknown backend",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t)
				cfg.Storage.Backend = "postgres"
				return cfg
			},
			expectError: true,
			errorMsg:    "unknown storage backend: postgres",
		},
		{
			name: "malformed categories file",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t)
				require.NoError(t, os.WriteFile(filepath.Join(cfg.Data.Directory, "categories.yaml"), []byte("budgets: [oops"), 0600))
				return cfg
			},
			expectError: true,
			errorMsg:    "failed to load category tables",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config(t))
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			defer func() {
				assert.NoError(t, c.Close())
			}()

			assert.NotNil(t, c.GetLogger())
			assert.NotNil(t, c.GetConfig())
			assert.NotNil(t, c.GetCategoryStore())
			assert.NotNil(t, c.GetParser())
			assert.NotNil(t, c.GetAggregator())
			assert.NotNil(t, c.GetExpenseStore())
			assert.NotNil(t, c.GetImporter())
			assert.NotNil(t, c.GetReportGenerator())
			assert.Equal(t, 5, c.GetKeywordTable().Len())
			assert.Equal(t, 6, c.GetBudgetTable().Len())
		})
	}
}

func TestNewContainerWithLogger_NilLogger(t *testing.T) {
	_, err := NewContainerWithLogger(testConfig(t), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger cannot be nil")
}

func TestContainer_UsesCategoriesFile(t *testing.T) {
	cfg := testConfig(t)
	content := "keywords:\n  - category: health\n    words: [yoga]\nbudgets:\n  - category: health\n    limit: 60\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Data.Directory, "categories.yaml"), []byte(content), 0600))

	c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	defer func() {
		_ = c.Close()
	}()

	draft := c.GetParser().Parse("yoga class 20")
	assert.Equal(t, models.CategoryHealth, draft.Category)

	aggregates := c.GetAggregator().Aggregate(nil)
	require.Len(t, aggregates, 1)
	assert.True(t, aggregates[0].Limit.Equal(decimal.NewFromInt(60)))
}

func TestContainer_EndToEnd(t *testing.T) {
	for _, backend := range []string{config.BackendCSV, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Storage.Backend = backend

			c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
			require.NoError(t, err)
			defer func() {
				_ = c.Close()
			}()

			ctx := context.Background()
			date := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)
			for _, text := range []string{"Lunch 15", "Uber 25", "groceries 300"} {
				require.NoError(t, c.GetExpenseStore().Append(ctx, c.GetParser().Parse(text).ToExpense(date)))
			}

			records, err := c.GetExpenseStore().LoadAll(ctx)
			require.NoError(t, err)
			require.Len(t, records, 3)

			aggregates := c.GetAggregator().Aggregate(records)
			food := aggregates[0]
			assert.Equal(t, models.CategoryFood, food.Category)
			assert.True(t, food.Spent.Equal(decimal.NewFromInt(315)))
			assert.True(t, food.Remaining.Equal(decimal.NewFromInt(-15)))
			assert.True(t, food.PercentUsed.Equal(decimal.NewFromInt(1)))
		})
	}
}

func TestContainer_CloseClosesStore(t *testing.T) {
	mockStore := &store.MockExpenseStore{}
	c := &Container{logger: logging.NewMockLogger(), expenseStore: mockStore}

	require.NoError(t, c.Close())
	assert.True(t, mockStore.Closed)
}

func TestContainer_BudgetTableComesFromAggregator(t *testing.T) {
	c, err := NewContainerWithLogger(testConfig(t), logging.NewMockLogger())
	require.NoError(t, err)
	defer func() {
		_ = c.Close()
	}()

	assert.Equal(t, c.GetAggregator().Budgets().Entries(), c.GetBudgetTable().Entries())
	assert.Equal(t, models.DefaultBudgetTable().Entries(), c.GetBudgetTable().Entries())
}
