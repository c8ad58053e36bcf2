// Package expenseparser turns a free-text phrase such as "Lunch 15" into a draft
// expense: an amount, a category and a readable description.
//
// The phrase is tokenized once and scanned left to right:
//   - a token in plain decimal notation sets the amount (the last one wins) and
//     is dropped from the description;
//   - any other token is looked up in the keyword table (the last match wins)
//     and is kept in the description whether it matched or not.
//
// Parsing never fails. Input without a number yields amount 0, input without a
// keyword yields category "other", and input with nothing left for the
// description yields "General Expense".
package expenseparser

import (
	"regexp"
	"strings"

	"fjacquet/spend-tracker/internal/categorizer"
	"fjacquet/spend-tracker/internal/logging"
	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/textutils"

	"github.com/shopspring/decimal"
)

// amountPattern accepts unsigned decimal notation only: "15", "15.50", "15.", ".5".
var amountPattern = regexp.MustCompile(`^(?:[0-9]+\.?[0-9]*|\.[0-9]+)$`)

// Classifier maps a single token to a category.
type Classifier interface {
	Classify(token string) (models.Category, bool)
}

// Parser is immutable and safe for concurrent use.
type Parser struct {
	classifier Classifier
	logger     logging.Logger
}

// New creates a parser that classifies tokens with the given keyword table.
func New(table models.KeywordTable, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return NewWithClassifier(categorizer.NewKeywordClassifier(table, logger), logger)
}

// NewWithClassifier creates a parser around an existing classifier.
func NewWithClassifier(classifier Classifier, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{
		classifier: classifier,
		logger:     logger,
	}
}

// Parse builds a draft from text in a single pass over its tokens.
func (p *Parser) Parse(text string) models.Draft {
	draft := models.EmptyDraft()
	var words []string

	for _, token := range textutils.Tokenize(text) {
		if amount, ok := ParseAmount(token); ok {
			draft.Amount = amount
			continue
		}
		if category, ok := p.classifier.Classify(token); ok {
			draft.Category = category
		}
		words = append(words, token)
	}

	if len(words) > 0 {
		draft.Description = textutils.TitleCase(words)
	}

	p.logger.Debug("Parsed expense text",
		logging.Field{Key: logging.FieldAmount, Value: draft.Amount.String()},
		logging.Field{Key: logging.FieldCategory, Value: draft.Category},
		logging.Field{Key: logging.FieldDescription, Value: draft.Description})

	return draft
}

// ParseAmount reports whether token is a plain unsigned decimal number and
// returns its value. Signs, exponents, separators and currency symbols are
// rejected. A leading sign is refused on purpose: "-5" is a word, not an amount.
func ParseAmount(token string) (decimal.Decimal, bool) {
	if !amountPattern.MatchString(token) {
		return decimal.Zero, false
	}
	normalized := strings.TrimSuffix(token, ".")
	if strings.HasPrefix(normalized, ".") {
		normalized = "0" + normalized
	}
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}
