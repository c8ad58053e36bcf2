// Package batch imports many free-text expense lines at once. Lines are parsed
// concurrently and persisted in input order.
package batch

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"fjacquet/spend-tracker/internal/dateutils"
	"fjacquet/spend-tracker/internal/logging"
	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/store"
	"fjacquet/spend-tracker/internal/validation"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DraftParser turns one line of text into a draft.
type DraftParser interface {
	Parse(text string) models.Draft
}

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s", dateutils.ToISODate(dr.Start), dateutils.ToISODate(dr.End))
}

// Merge combines this date range with another, returning the overall range
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// Entry is one parsed input line.
type Entry struct {
	Line    int // 1-based
	Text    string
	Expense models.Expense
	Err     error
}

// Summary describes the outcome of an import.
type Summary struct {
	Imported  int
	Skipped   int
	Total     decimal.Decimal
	DateRange DateRange
	Entries   []Entry
}

// Importer parses and persists batches of expense lines.
type Importer struct {
	parser  DraftParser
	store   store.ExpenseStore
	workers int
	logger  logging.Logger
}

// NewImporter creates an importer. workers bounds the number of lines parsed
// at the same time.
func NewImporter(parser DraftParser, expenseStore store.ExpenseStore, workers int, logger logging.Logger) *Importer {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Importer{
		parser:  parser,
		store:   expenseStore,
		workers: workers,
		logger:  logger,
	}
}

// ParseLines parses every non-blank line. A line may start with an ISO date,
// which then dates the expense; otherwise defaultDate is used. The result
// keeps input order regardless of which worker finished first.
func (im *Importer) ParseLines(ctx context.Context, lines []string, defaultDate time.Time) ([]Entry, error) {
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Entry{Line: i + 1, Text: line})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.workers)

	for i := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			date, text := splitLeadingDate(entries[i].Text, defaultDate)
			draft := im.parser.Parse(text)
			expense := draft.ToExpense(date)
			entries[i].Expense = expense
			entries[i].Err = validation.ValidateExpense(expense)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Import parses lines and appends every valid expense to the store, in input
// order. Invalid lines are skipped and reported in the summary. A store error
// stops the import.
func (im *Importer) Import(ctx context.Context, lines []string, defaultDate time.Time) (Summary, error) {
	entries, err := im.ParseLines(ctx, lines, defaultDate)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: decimal.Zero, Entries: entries}
	for _, entry := range entries {
		if entry.Err != nil {
			summary.Skipped++
			im.logger.WithError(entry.Err).Warn("Skipping line",
				logging.Field{Key: logging.FieldLine, Value: entry.Line},
				logging.Field{Key: logging.FieldDescription, Value: entry.Text})
			continue
		}

		if err := im.store.Append(ctx, entry.Expense); err != nil {
			return summary, fmt.Errorf("line %d: %w", entry.Line, err)
		}

		summary.Imported++
		summary.Total = summary.Total.Add(entry.Expense.Amount)
		summary.DateRange = summary.DateRange.Merge(DateRange{Start: entry.Expense.Date, End: entry.Expense.Date})
	}

	im.logger.Info("Batch import finished",
		logging.Field{Key: logging.FieldCount, Value: summary.Imported},
		logging.Field{Key: "skipped", Value: summary.Skipped},
		logging.Field{Key: "date_range", Value: summary.DateRange.String()})
	return summary, nil
}

// splitLeadingDate peels an ISO date off the front of a line.
func splitLeadingDate(line string, defaultDate time.Time) (time.Time, string) {
	trimmed := strings.TrimSpace(line)
	first, rest := trimmed, ""
	if end := strings.IndexFunc(trimmed, unicode.IsSpace); end >= 0 {
		first, rest = trimmed[:end], trimmed[end:]
	}
	if date, err := time.Parse(dateutils.DateLayoutISO, first); err == nil {
		return date, rest
	}
	return defaultDate, trimmed
}
