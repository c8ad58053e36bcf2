package models

import "github.com/shopspring/decimal"

// CategoryAggregate is the spend of one category against its limit.
// Remaining = Limit - Spent and PercentUsed = clamp(Spent/Limit, 0, 1).
type CategoryAggregate struct {
	Category    Category        `json:"category" csv:"category"`
	Spent       decimal.Decimal `json:"spent" csv:"spent"`
	Limit       decimal.Decimal `json:"limit" csv:"limit"`
	Remaining   decimal.Decimal `json:"remaining" csv:"remaining"`
	PercentUsed decimal.Decimal `json:"percent_used" csv:"percent_used"`
}

// OverBudget reports whether spending exceeded the limit.
func (a CategoryAggregate) OverBudget() bool {
	return a.Remaining.IsNegative()
}

// Status is "over" when the limit is exceeded and "ok" otherwise.
func (a CategoryAggregate) Status() string {
	if a.OverBudget() {
		return "over"
	}
	return "ok"
}

// BudgetTotals sums a set of aggregates.
type BudgetTotals struct {
	Spent     decimal.Decimal `json:"spent"`
	Limit     decimal.Decimal `json:"limit"`
	Remaining decimal.Decimal `json:"remaining"`
}
