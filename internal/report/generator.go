// Package report renders budget views, expense history and spending trends
// as text tables, JSON or CSV.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/spend-tracker/internal/budget"
	"fjacquet/spend-tracker/internal/dateutils"
	"fjacquet/spend-tracker/internal/logging"
	"fjacquet/spend-tracker/internal/models"

	"github.com/dustin/go-humanize"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

const barWidth = 10

var hundred = decimal.NewFromInt(100)

// Generator writes reports in one of the supported formats.
type Generator struct {
	logger    logging.Logger
	delimiter rune
}

// NewGenerator creates a generator. delimiter is used for CSV output.
func NewGenerator(logger logging.Logger, delimiter rune) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &Generator{
		logger:    logger,
		delimiter: delimiter,
	}
}

type budgetRow struct {
	Category    string `csv:"category"`
	Spent       string `csv:"spent"`
	Limit       string `csv:"limit"`
	Remaining   string `csv:"remaining"`
	PercentUsed string `csv:"percent_used"`
	Status      string `csv:"status"`
}

type budgetDocument struct {
	Categories []budgetEntry       `json:"categories"`
	Totals     models.BudgetTotals `json:"totals"`
}

type budgetEntry struct {
	models.CategoryAggregate
	Status string `json:"status"`
}

// WriteBudget renders aggregates in the order given, followed by totals.
func (g *Generator) WriteBudget(w io.Writer, aggregates []models.CategoryAggregate, totals models.BudgetTotals, format string) error {
	switch format {
	case FormatText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CATEGORY\tSPENT\tLIMIT\tREMAINING\tUSED\t")
		for _, agg := range aggregates {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s %s\t\n",
				agg.Category.Label(),
				FormatMoney(agg.Spent),
				FormatMoney(agg.Limit),
				RemainingLabel(agg.Remaining),
				ProgressBar(agg.PercentUsed),
				FormatPercent(agg.PercentUsed))
		}
		fmt.Fprintf(tw, "TOTAL\t%s\t%s\t%s\t\t\n",
			FormatMoney(totals.Spent),
			FormatMoney(totals.Limit),
			RemainingLabel(totals.Remaining))
		return g.flush(tw)

	case FormatJSON:
		doc := budgetDocument{Categories: make([]budgetEntry, 0, len(aggregates)), Totals: totals}
		for _, agg := range aggregates {
			doc.Categories = append(doc.Categories, budgetEntry{CategoryAggregate: agg, Status: agg.Status()})
		}
		return g.writeJSON(w, doc)

	case FormatCSV:
		rows := make([]budgetRow, 0, len(aggregates))
		for _, agg := range aggregates {
			rows = append(rows, budgetRow{
				Category:    string(agg.Category),
				Spent:       agg.Spent.StringFixed(2),
				Limit:       agg.Limit.StringFixed(2),
				Remaining:   agg.Remaining.StringFixed(2),
				PercentUsed: agg.PercentUsed.StringFixed(4),
				Status:      agg.Status(),
			})
		}
		return g.writeCSV(w, &rows)

	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

type expenseRow struct {
	Date        string `csv:"date"`
	Category    string `csv:"category"`
	Amount      string `csv:"amount"`
	Description string `csv:"description"`
}

type expenseDocument struct {
	Expenses []models.Expense `json:"expenses"`
	Count    int              `json:"count"`
	Total    decimal.Decimal  `json:"total"`
}

// WriteExpenses renders records in the order given with a total line.
func (g *Generator) WriteExpenses(w io.Writer, expenses []models.Expense, format string) error {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	switch format {
	case FormatText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tCATEGORY\tAMOUNT\tDESCRIPTION\t")
		for _, e := range expenses {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
				dateutils.ToISODate(e.Date),
				e.Category.Label(),
				FormatMoney(e.Amount),
				e.Description)
		}
		fmt.Fprintf(tw, "TOTAL\t\t%s\t%s\t\n", FormatMoney(total), countLabel(len(expenses)))
		return g.flush(tw)

	case FormatJSON:
		doc := expenseDocument{Expenses: expenses, Count: len(expenses), Total: total}
		if doc.Expenses == nil {
			doc.Expenses = []models.Expense{}
		}
		return g.writeJSON(w, doc)

	case FormatCSV:
		rows := make([]expenseRow, 0, len(expenses))
		for _, e := range expenses {
			rows = append(rows, expenseRow{
				Date:        dateutils.ToISODate(e.Date),
				Category:    string(e.Category),
				Amount:      e.Amount.StringFixed(2),
				Description: e.Description,
			})
		}
		return g.writeCSV(w, &rows)

	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

type trendRow struct {
	Date  string `csv:"date"`
	Total string `csv:"total"`
	Count int    `csv:"count"`
}

type trendsDocument struct {
	Daily     []budget.DailyTotal    `json:"daily"`
	Breakdown []budget.CategoryShare `json:"breakdown"`
}

// WriteTrends renders daily totals and the category breakdown.
func (g *Generator) WriteTrends(w io.Writer, daily []budget.DailyTotal, shares []budget.CategoryShare, format string) error {
	switch format {
	case FormatText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tTOTAL\tRECORDS\t")
		for _, d := range daily {
			fmt.Fprintf(tw, "%s\t%s\t%d\t\n", dateutils.ToISODate(d.Date), FormatMoney(d.Total), d.Count)
		}
		fmt.Fprintln(tw, "\t\t\t")
		fmt.Fprintln(tw, "CATEGORY\tSPENT\tSHARE\t")
		for _, s := range shares {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", s.Category.Label(), FormatMoney(s.Spent), FormatPercent(s.Share))
		}
		return g.flush(tw)

	case FormatJSON:
		doc := trendsDocument{Daily: daily, Breakdown: shares}
		if doc.Daily == nil {
			doc.Daily = []budget.DailyTotal{}
		}
		if doc.Breakdown == nil {
			doc.Breakdown = []budget.CategoryShare{}
		}
		return g.writeJSON(w, doc)

	case FormatCSV:
		rows := make([]trendRow, 0, len(daily))
		for _, d := range daily {
			rows = append(rows, trendRow{Date: dateutils.ToISODate(d.Date), Total: d.Total.StringFixed(2), Count: d.Count})
		}
		return g.writeCSV(w, &rows)

	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) flush(tw *tabwriter.Writer) error {
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (g *Generator) writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return nil
}

func (g *Generator) writeCSV(w io.Writer, rows interface{}) error {
	writer := csv.NewWriter(w)
	writer.Comma = g.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return nil
}

// FormatMoney renders an amount as "$1,234.50", with a leading minus for
// negative values.
func FormatMoney(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", amount.Abs().Round(2).InexactFloat64())
}

// RemainingLabel renders what is left of a budget: "$20.00 left" or
// "-$50.00 over".
func RemainingLabel(remaining decimal.Decimal) string {
	if remaining.IsNegative() {
		return FormatMoney(remaining) + " over"
	}
	return FormatMoney(remaining) + " left"
}

// FormatPercent renders a fraction in [0, 1] as a whole percentage.
func FormatPercent(fraction decimal.Decimal) string {
	return fraction.Mul(hundred).Round(0).String() + "%"
}

// ProgressBar draws a fixed-width bar for a fraction in [0, 1].
func ProgressBar(fraction decimal.Decimal) string {
	filled := int(fraction.Mul(decimal.NewFromInt(barWidth)).IntPart())
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func countLabel(n int) string {
	if n == 1 {
		return "1 record"
	}
	return fmt.Sprintf("%d records", n)
}
