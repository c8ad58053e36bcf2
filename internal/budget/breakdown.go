package budget

import (
	"sort"
	"time"

	"fjacquet/spend-tracker/internal/dateutils"
	"fjacquet/spend-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryShare is the part of total spending that went to one category.
type CategoryShare struct {
	Category models.Category `json:"category" csv:"category"`
	Spent    decimal.Decimal `json:"spent" csv:"spent"`
	Share    decimal.Decimal `json:"share" csv:"share"`
}

// DailyTotal is the spending of one calendar day.
type DailyTotal struct {
	Date  time.Time       `json:"date" csv:"-"`
	Total decimal.Decimal `json:"total" csv:"total"`
	Count int             `json:"count" csv:"count"`
}

// Breakdown splits spending by category, largest first. Categories without
// records are left out; ties keep the order of models.AllCategories.
func Breakdown(expenses []models.Expense) []CategoryShare {
	spent := make(map[models.Category]decimal.Decimal)
	total := decimal.Zero
	for _, e := range expenses {
		spent[e.Category] = spent[e.Category].Add(e.Amount)
		total = total.Add(e.Amount)
	}

	shares := make([]CategoryShare, 0, len(spent))
	for _, c := range models.AllCategories() {
		amount, ok := spent[c]
		if !ok {
			continue
		}
		share := decimal.Zero
		if total.IsPositive() {
			share = amount.Div(total)
		}
		shares = append(shares, CategoryShare{Category: c, Spent: amount, Share: share})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Spent.GreaterThan(shares[j].Spent)
	})
	return shares
}

// DailyTotals sums spending per calendar day, oldest first.
func DailyTotals(expenses []models.Expense) []DailyTotal {
	byDay := make(map[time.Time]*DailyTotal)
	for _, e := range expenses {
		day := dateutils.Midnight(e.Date)
		dt, ok := byDay[day]
		if !ok {
			dt = &DailyTotal{Date: day, Total: decimal.Zero}
			byDay[day] = dt
		}
		dt.Total = dt.Total.Add(e.Amount)
		dt.Count++
	}

	totals := make([]DailyTotal, 0, len(byDay))
	for _, dt := range byDay {
		totals = append(totals, *dt)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})
	return totals
}
