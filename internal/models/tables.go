package models

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// KeywordEntry lists the trigger words of one category.
type KeywordEntry struct {
	Category Category
	Keywords []string
}

// KeywordTable maps categories to trigger words. Entry order is significant: when
// two entries share a word, the earlier entry wins. A table is never modified
// after construction.
type KeywordTable struct {
	entries []KeywordEntry
}

// NewKeywordTable builds a table from entries, lowercasing and trimming every
// keyword. The entries are copied.
func NewKeywordTable(entries []KeywordEntry) (KeywordTable, error) {
	copied := make([]KeywordEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.Category.IsValid() {
			return KeywordTable{}, fmt.Errorf("keyword table: unknown category %q", entry.Category)
		}
		words := make([]string, 0, len(entry.Keywords))
		for _, kw := range entry.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if strings.ContainsFunc(kw, unicode.IsSpace) {
				return KeywordTable{}, fmt.Errorf("keyword table: %q for %s is not a single word", kw, entry.Category)
			}
			words = append(words, kw)
		}
		copied = append(copied, KeywordEntry{Category: entry.Category, Keywords: words})
	}
	return KeywordTable{entries: copied}, nil
}

// Entries returns a copy of the entries in table order.
func (t KeywordTable) Entries() []KeywordEntry {
	out := make([]KeywordEntry, len(t.entries))
	for i, e := range t.entries {
		out[i] = KeywordEntry{Category: e.Category, Keywords: append([]string(nil), e.Keywords...)}
	}
	return out
}

// Len returns the number of entries.
func (t KeywordTable) Len() int {
	return len(t.entries)
}

// BudgetEntry is the spending limit of one category.
type BudgetEntry struct {
	Category Category
	Limit    decimal.Decimal
}

// BudgetTable holds per-category limits in presentation order.
type BudgetTable struct {
	entries []BudgetEntry
}

// NewBudgetTable validates and copies entries. Limits must be positive and each
// category may appear at most once.
func NewBudgetTable(entries []BudgetEntry) (BudgetTable, error) {
	seen := make(map[Category]bool, len(entries))
	copied := make([]BudgetEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.Category.IsValid() {
			return BudgetTable{}, fmt.Errorf("budget table: unknown category %q", entry.Category)
		}
		if seen[entry.Category] {
			return BudgetTable{}, fmt.Errorf("budget table: duplicate entry for %s", entry.Category)
		}
		if !entry.Limit.IsPositive() {
			return BudgetTable{}, fmt.Errorf("budget table: limit for %s must be positive, got %s", entry.Category, entry.Limit)
		}
		seen[entry.Category] = true
		copied = append(copied, entry)
	}
	return BudgetTable{entries: copied}, nil
}

// Entries returns a copy of the entries in table order.
func (t BudgetTable) Entries() []BudgetEntry {
	return append([]BudgetEntry(nil), t.entries...)
}

// Limit returns the limit for c and whether c has a budget.
func (t BudgetTable) Limit(c Category) (decimal.Decimal, bool) {
	for _, e := range t.entries {
		if e.Category == c {
			return e.Limit, true
		}
	}
	return decimal.Zero, false
}

// Len returns the number of entries.
func (t BudgetTable) Len() int {
	return len(t.entries)
}

// DefaultKeywordTable returns the built-in trigger words.
func DefaultKeywordTable() KeywordTable {
	t, err := NewKeywordTable([]KeywordEntry{
		{Category: CategoryFood, Keywords: []string{"food", "burger", "lunch", "dinner", "groceries", "snack", "mcdonalds", "mcdonald's", "kfc", "pizza", "subway", "coffee", "starbucks"}},
		{Category: CategoryTransport, Keywords: []string{"uber", "taxi", "bus", "train", "gas", "fuel", "ticket", "lyft"}},
		{Category: CategoryHealth, Keywords: []string{"gym", "doctor", "meds", "dentist", "pharmacy"}},
		{Category: CategoryBills, Keywords: []string{"wifi", "electric", "phone", "bill", "utilities"}},
		{Category: CategoryRent, Keywords: []string{"rent", "lease"}},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultBudgetTable returns the built-in monthly limits.
func DefaultBudgetTable() BudgetTable {
	t, err := NewBudgetTable([]BudgetEntry{
		{Category: CategoryFood, Limit: decimal.NewFromInt(300)},
		{Category: CategoryTransport, Limit: decimal.NewFromInt(150)},
		{Category: CategoryRent, Limit: decimal.NewFromInt(1000)},
		{Category: CategoryBills, Limit: decimal.NewFromInt(200)},
		{Category: CategoryHealth, Limit: decimal.NewFromInt(100)},
		{Category: CategoryOther, Limit: decimal.NewFromInt(100)},
	})
	if err != nil {
		panic(err)
	}
	return t
}
