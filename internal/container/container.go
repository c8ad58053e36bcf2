// Package container provides dependency injection for the spend-tracker application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/spend-tracker/internal/batch"
	"fjacquet/spend-tracker/internal/budget"
	"fjacquet/spend-tracker/internal/config"
	"fjacquet/spend-tracker/internal/expenseparser"
	"fjacquet/spend-tracker/internal/logging"
	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/report"
	"fjacquet/spend-tracker/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger        logging.Logger
	config        *config.Config
	categoryStore *store.CategoryStore
	keywords      models.KeywordTable
	parser        *expenseparser.Parser
	aggregator    *budget.Aggregator
	expenseStore  store.ExpenseStore
	importer      *batch.Importer
	reports       *report.Generator
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger wires the application around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	categoryStore := store.NewCategoryStore(cfg.CategoriesFilePath(), logger)
	keywords, budgets, err := categoryStore.LoadTables()
	if err != nil {
		return nil, fmt.Errorf("failed to load category tables: %w", err)
	}

	expenseStore, err := NewExpenseStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	parser := expenseparser.New(keywords, logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldBackend, Value: cfg.Storage.Backend},
		logging.Field{Key: "keyword_entries", Value: keywords.Len()},
		logging.Field{Key: "budget_entries", Value: budgets.Len()})

	return &Container{
		logger:        logger,
		config:        cfg,
		categoryStore: categoryStore,
		keywords:      keywords,
		parser:        parser,
		aggregator:    budget.NewAggregator(budgets, logger),
		expenseStore:  expenseStore,
		importer:      batch.NewImporter(parser, expenseStore, cfg.Batch.Workers, logger),
		reports:       report.NewGenerator(logger, cfg.DelimiterRune()),
	}, nil
}

// NewExpenseStore opens the expense store selected by storage.backend.
func NewExpenseStore(cfg *config.Config, logger logging.Logger) (store.ExpenseStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendCSV, "":
		return store.NewCSVExpenseStore(cfg.CSVFilePath(), cfg.DelimiterRune(), logger), nil
	case config.BackendSQLite:
		s, err := store.NewSQLiteExpenseStore(cfg.SQLiteFilePath(), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCategoryStore returns the store the tables were loaded from.
func (c *Container) GetCategoryStore() *store.CategoryStore {
	return c.categoryStore
}

// GetKeywordTable returns the active keyword table.
func (c *Container) GetKeywordTable() models.KeywordTable {
	return c.keywords
}

// GetBudgetTable returns the budget table the aggregator works against.
func (c *Container) GetBudgetTable() models.BudgetTable {
	return c.aggregator.Budgets()
}

// GetParser returns the free-text expense parser.
func (c *Container) GetParser() *expenseparser.Parser {
	return c.parser
}

// GetAggregator returns the budget aggregator.
func (c *Container) GetAggregator() *budget.Aggregator {
	return c.aggregator
}

// GetExpenseStore returns the configured expense store.
func (c *Container) GetExpenseStore() store.ExpenseStore {
	return c.expenseStore
}

// GetImporter returns the batch importer.
func (c *Container) GetImporter() *batch.Importer {
	return c.importer
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.reports
}

// Close releases the expense store.
func (c *Container) Close() error {
	if c.expenseStore == nil {
		return nil
	}
	if err := c.expenseStore.Close(); err != nil {
		return fmt.Errorf("failed to close expense store: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
