// Package dateutils provides the calendar-date handling used for expense records.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts accepted on input. Records are always written as DateLayoutISO.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutSlashISO = "2006/01/02"
	DateLayoutMonth    = "2006-01"
)

// CommonFormats is the list of layouts tried, in order, by ParseDate.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutSlashISO,
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate parses an absolute calendar date and returns it at midnight UTC
// together with the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)
	if dateStr == "" {
		return time.Time{}, "", fmt.Errorf("unable to parse date: empty value")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return Midnight(t), format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ResolveDate parses user input that may be relative to now. Empty input and
// "today" resolve to now; "yesterday" to the day before.
func ResolveDate(dateStr string, now time.Time) (time.Time, error) {
	switch strings.ToLower(CleanDateString(dateStr)) {
	case "", "today":
		return Midnight(now), nil
	case "yesterday":
		return Midnight(now).AddDate(0, 0, -1), nil
	}

	t, _, err := ParseDate(dateStr)
	return t, err
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString trims and collapses whitespace.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// Midnight drops the clock part of a time, keeping its calendar date in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// ParseMonth parses a YYYY-MM value and returns the first day of that month.
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(DateLayoutMonth, strings.TrimSpace(month))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", month, err)
	}
	return t, nil
}

// InMonth reports whether date falls in the same calendar month as month.
func InMonth(date, month time.Time) bool {
	return date.Year() == month.Year() && date.Month() == month.Month()
}

// CompareDates compares the calendar dates of two times, ignoring the clock:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	return Midnight(date1).Compare(Midnight(date2))
}
