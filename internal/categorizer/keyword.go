// Package categorizer maps single words to expense categories using a fixed
// keyword table.
package categorizer

import (
	"strings"

	"fjacquet/spend-tracker/internal/logging"
	"fjacquet/spend-tracker/internal/models"
)

// KeywordClassifier matches one token at a time against a KeywordTable.
// It is immutable after construction and safe for concurrent use.
type KeywordClassifier struct {
	index  map[string]models.Category
	logger logging.Logger
}

// NewKeywordClassifier indexes the table. A token belongs to the first entry,
// in table order, that lists it as a keyword or is named after it. Entries for
// the default category are skipped: "other" is only ever a fallback.
func NewKeywordClassifier(table models.KeywordTable, logger logging.Logger) *KeywordClassifier {
	index := make(map[string]models.Category)
	for _, entry := range table.Entries() {
		if entry.Category == models.DefaultCategory {
			continue
		}
		words := append([]string{entry.Category.String()}, entry.Keywords...)
		for _, w := range words {
			if _, taken := index[w]; !taken {
				index[w] = entry.Category
			}
		}
	}

	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Debug("Indexed keyword table", logging.Field{Key: logging.FieldCount, Value: len(index)})

	return &KeywordClassifier{
		index:  index,
		logger: logger,
	}
}

// Name returns the classifier name for logging.
func (c *KeywordClassifier) Name() string {
	return "Keyword"
}

// Classify lowercases token and looks it up. The token must be a single word;
// no substring matching is done.
func (c *KeywordClassifier) Classify(token string) (models.Category, bool) {
	lower := strings.ToLower(token)
	category, ok := c.index[lower]
	if ok {
		c.logger.Debug("Token matched category keyword",
			logging.Field{Key: "strategy", Value: c.Name()},
			logging.Field{Key: logging.FieldToken, Value: token},
			logging.Field{Key: logging.FieldCategory, Value: category})
	}
	return category, ok
}
