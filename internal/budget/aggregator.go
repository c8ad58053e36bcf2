// Package budget rolls expense records up into per-category spend against
// fixed limits.
package budget

import (
	"fjacquet/spend-tracker/internal/logging"
	"fjacquet/spend-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Aggregator computes budget views from a full set of records. It keeps no
// running totals: every call rescans the records it is given.
type Aggregator struct {
	budgets models.BudgetTable
	logger  logging.Logger
}

// NewAggregator creates an aggregator over a fixed budget table.
func NewAggregator(budgets models.BudgetTable, logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Aggregator{
		budgets: budgets,
		logger:  logger,
	}
}

// Budgets returns the budget table the aggregator was built with.
func (a *Aggregator) Budgets() models.BudgetTable {
	return a.budgets
}

// Aggregate returns one aggregate per budget entry, in budget-table order.
// Records whose category has no budget entry are not counted anywhere.
func (a *Aggregator) Aggregate(expenses []models.Expense) []models.CategoryAggregate {
	spent := make(map[models.Category]decimal.Decimal, a.budgets.Len())
	for _, e := range expenses {
		spent[e.Category] = spent[e.Category].Add(e.Amount)
	}

	entries := a.budgets.Entries()
	aggregates := make([]models.CategoryAggregate, 0, len(entries))
	for _, entry := range entries {
		aggregates = append(aggregates, newAggregate(entry.Category, spent[entry.Category], entry.Limit))
	}

	a.logger.Debug("Aggregated expenses against budgets",
		logging.Field{Key: logging.FieldCount, Value: len(expenses)},
		logging.Field{Key: "categories", Value: len(aggregates)})

	return aggregates
}

func newAggregate(category models.Category, spent, limit decimal.Decimal) models.CategoryAggregate {
	return models.CategoryAggregate{
		Category:    category,
		Spent:       spent,
		Limit:       limit,
		Remaining:   limit.Sub(spent),
		PercentUsed: percentUsed(spent, limit),
	}
}

// percentUsed is spent/limit clamped to [0, 1].
func percentUsed(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		if spent.IsPositive() {
			return one
		}
		return decimal.Zero
	}
	ratio := spent.Div(limit)
	if ratio.GreaterThan(one) {
		return one
	}
	if ratio.IsNegative() {
		return decimal.Zero
	}
	return ratio
}

// Totals sums spent, limit and remaining over a budget view.
func Totals(aggregates []models.CategoryAggregate) models.BudgetTotals {
	totals := models.BudgetTotals{
		Spent:     decimal.Zero,
		Limit:     decimal.Zero,
		Remaining: decimal.Zero,
	}
	for _, agg := range aggregates {
		totals.Spent = totals.Spent.Add(agg.Spent)
		totals.Limit = totals.Limit.Add(agg.Limit)
		totals.Remaining = totals.Remaining.Add(agg.Remaining)
	}
	return totals
}
