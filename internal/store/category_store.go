package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/spend-tracker/internal/fileutils"
	"fjacquet/spend-tracker/internal/logging"
	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/parsererror"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const categoriesFormat = "YAML document with 'keywords' and 'budgets' lists"

// categoriesDocument is the layout of categories.yaml.
type categoriesDocument struct {
	Keywords []keywordDocument `yaml:"keywords,omitempty"`
	Budgets  []budgetDocument  `yaml:"budgets,omitempty"`
}

type keywordDocument struct {
	Category string   `yaml:"category"`
	Words    []string `yaml:"words,flow"`
}

// Limits are read as strings so they go through decimal parsing unchanged.
type budgetDocument struct {
	Category string `yaml:"category"`
	Limit    string `yaml:"limit"`
}

// CategoryStore loads the keyword and budget tables from a YAML file. A
// missing file or a missing section falls back to the built-in tables.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store for the given categories file.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".spend-tracker", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadTables loads both tables in one read of the file.
func (s *CategoryStore) LoadTables() (models.KeywordTable, models.BudgetTable, error) {
	doc, path, err := s.readDocument()
	if err != nil {
		return models.KeywordTable{}, models.BudgetTable{}, err
	}

	keywords, err := keywordTableFrom(doc, path)
	if err != nil {
		return models.KeywordTable{}, models.BudgetTable{}, err
	}
	budgets, err := budgetTableFrom(doc, path)
	if err != nil {
		return models.KeywordTable{}, models.BudgetTable{}, err
	}

	s.logger.Debug("Loaded category tables",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: "keyword_entries", Value: keywords.Len()},
		logging.Field{Key: "budget_entries", Value: budgets.Len()})
	return keywords, budgets, nil
}

// LoadKeywordTable loads the keyword table only.
func (s *CategoryStore) LoadKeywordTable() (models.KeywordTable, error) {
	doc, path, err := s.readDocument()
	if err != nil {
		return models.KeywordTable{}, err
	}
	return keywordTableFrom(doc, path)
}

// LoadBudgetTable loads the budget table only.
func (s *CategoryStore) LoadBudgetTable() (models.BudgetTable, error) {
	doc, path, err := s.readDocument()
	if err != nil {
		return models.BudgetTable{}, err
	}
	return budgetTableFrom(doc, path)
}

// SaveTables writes both tables to path in the format LoadTables reads.
func (s *CategoryStore) SaveTables(path string, keywords models.KeywordTable, budgets models.BudgetTable) error {
	doc := categoriesDocument{}
	for _, entry := range keywords.Entries() {
		doc.Keywords = append(doc.Keywords, keywordDocument{Category: string(entry.Category), Words: entry.Keywords})
	}
	for _, entry := range budgets.Entries() {
		doc.Budgets = append(doc.Budgets, budgetDocument{Category: string(entry.Category), Limit: entry.Limit.String()})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("error marshaling category tables: %w", err)
	}

	if err := fileutils.EnsureParentDirectory(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing category tables: %w", err)
	}

	s.logger.Info("Saved category tables",
		logging.Field{Key: logging.FieldFile, Value: path})
	return nil
}

// readDocument returns an empty document when no file can be found.
func (s *CategoryStore) readDocument() (categoriesDocument, string, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("Categories file not found, using built-in tables",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return categoriesDocument{}, filename, nil
		}
		return categoriesDocument{}, filename, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return categoriesDocument{}, path, fmt.Errorf("error reading categories file: %w", err)
	}

	var doc categoriesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return categoriesDocument{}, path, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: categoriesFormat,
			Msg:            "cannot decode document",
			Err:            err,
		}
	}
	return doc, path, nil
}

func keywordTableFrom(doc categoriesDocument, path string) (models.KeywordTable, error) {
	if len(doc.Keywords) == 0 {
		return models.DefaultKeywordTable(), nil
	}

	entries := make([]models.KeywordEntry, 0, len(doc.Keywords))
	for _, kd := range doc.Keywords {
		category, err := models.ParseCategory(kd.Category)
		if err != nil {
			return models.KeywordTable{}, &parsererror.ValidationError{Field: "keywords.category", Value: kd.Category, Reason: err.Error()}
		}
		entries = append(entries, models.KeywordEntry{Category: category, Keywords: kd.Words})
	}

	table, err := models.NewKeywordTable(entries)
	if err != nil {
		return models.KeywordTable{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

func budgetTableFrom(doc categoriesDocument, path string) (models.BudgetTable, error) {
	if len(doc.Budgets) == 0 {
		return models.DefaultBudgetTable(), nil
	}

	entries := make([]models.BudgetEntry, 0, len(doc.Budgets))
	for _, bd := range doc.Budgets {
		category, err := models.ParseCategory(bd.Category)
		if err != nil {
			return models.BudgetTable{}, &parsererror.ValidationError{Field: "budgets.category", Value: bd.Category, Reason: err.Error()}
		}
		limit, err := decimal.NewFromString(strings.TrimSpace(bd.Limit))
		if err != nil {
			return models.BudgetTable{}, &parsererror.ParseError{Source: path, Field: "limit", Value: bd.Limit, Err: err}
		}
		entries = append(entries, models.BudgetEntry{Category: category, Limit: limit})
	}

	table, err := models.NewBudgetTable(entries)
	if err != nil {
		return models.BudgetTable{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
