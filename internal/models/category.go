// Package models provides the data structures shared by the parser, the budget
// aggregator, the stores and the CLI.
package models

import (
	"fmt"
	"strings"
)

// Category is one of the fixed expense categories.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryTransport Category = "transport"
	CategoryRent      Category = "rent"
	CategoryBills     Category = "bills"
	CategoryHealth    Category = "health"
	CategoryOther     Category = "other"
)

// DefaultCategory is assigned when nothing in the input names a category.
const DefaultCategory = CategoryOther

// AllCategories lists every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryRent,
		CategoryBills,
		CategoryHealth,
		CategoryOther,
	}
}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the lowercase storage name.
func (c Category) String() string {
	return string(c)
}

// Label returns the capitalized name used in reports ("Food").
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c)[:1]) + string(c)[1:]
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category %q (expected one of %s)", name, categoryNames())
	}
	return c, nil
}

func categoryNames() string {
	names := make([]string, 0, len(AllCategories()))
	for _, c := range AllCategories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
