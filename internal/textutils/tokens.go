// Package textutils provides the text primitives used by the expense parser.
package textutils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenize splits text on runs of Unicode whitespace. Tokens are returned as-is:
// no case folding and no punctuation stripping. Blank input yields an empty slice.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	if fields == nil {
		return []string{}
	}
	return fields
}

// TitleCase joins words with single spaces and title-cases every word (first
// letter upper case, remaining letters lower case).
func TitleCase(words []string) string {
	if len(words) == 0 {
		return ""
	}
	// A Caser keeps state between calls, so each call gets its own.
	caser := cases.Title(language.Und)
	return caser.String(strings.Join(words, " "))
}
