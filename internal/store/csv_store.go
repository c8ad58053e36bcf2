package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"fjacquet/spend-tracker/internal/dateutils"
	"fjacquet/spend-tracker/internal/fileutils"
	"fjacquet/spend-tracker/internal/logging"
	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/parsererror"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// csvRecord is the on-disk row layout: date,category,amount,description.
type csvRecord struct {
	Date        string `csv:"date"`
	Category    string `csv:"category"`
	Amount      string `csv:"amount"`
	Description string `csv:"description"`
}

// CSVExpenseStore appends records to a single CSV file. The header row is
// written only when the file is created.
type CSVExpenseStore struct {
	path      string
	delimiter rune
	logger    logging.Logger
	mu        sync.Mutex
}

// NewCSVExpenseStore creates a store backed by path. The file itself is only
// created by the first Append.
func NewCSVExpenseStore(path string, delimiter rune, logger logging.Logger) *CSVExpenseStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVExpenseStore{
		path:      path,
		delimiter: delimiter,
		logger:    logger,
	}
}

// Path returns the backing file.
func (s *CSVExpenseStore) Path() string {
	return s.path
}

// Append writes one record at the end of the file.
func (s *CSVExpenseStore) Append(ctx context.Context, expense models.Expense) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fileutils.EnsureParentDirectory(s.path); err != nil {
		return err
	}

	empty, err := fileutils.IsEmptyFile(s.path)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, models.PermissionDataFile) // #nosec G304 -- path comes from configuration
	if err != nil {
		return fmt.Errorf("error opening expense file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			s.logger.WithError(cerr).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: s.path})
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = s.delimiter
	rows := []csvRecord{toCSVRecord(expense)}

	if empty {
		err = gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer))
	} else {
		err = gocsv.MarshalCSVWithoutHeaders(rows, gocsv.NewSafeCSVWriter(writer))
	}
	if err != nil {
		return fmt.Errorf("error writing expense: %w", err)
	}

	s.logger.Debug("Appended expense",
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCategory, Value: expense.Category},
		logging.Field{Key: logging.FieldAmount, Value: expense.Amount.StringFixed(2)})
	return nil
}

// LoadAll reads every record in file order. Any malformed row fails the whole
// load with a *parsererror.DataExtractionError naming the line.
func (s *CSVExpenseStore) LoadAll(ctx context.Context) ([]models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	empty, err := fileutils.IsEmptyFile(s.path)
	if err != nil {
		return nil, err
	}
	if empty {
		return []models.Expense{}, nil
	}

	file, err := os.Open(s.path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("error opening expense file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			s.logger.WithError(cerr).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: s.path})
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = s.delimiter

	var rows []csvRecord
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []models.Expense{}, nil
		}
		extractErr := &parsererror.DataExtractionError{
			FilePath: s.path,
			Reason:   "cannot decode rows",
			Err:      err,
		}
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			extractErr.Line = csvErr.Line
		}
		return nil, extractErr
	}

	expenses := make([]models.Expense, 0, len(rows))
	for i, row := range rows {
		expense, err := fromCSVRecord(row)
		if err != nil {
			// Line 1 is the header.
			err.FilePath = s.path
			err.Line = i + 2
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	s.logger.Debug("Loaded expenses",
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(expenses)})
	return expenses, nil
}

// Close is a no-op; the file is opened per operation.
func (s *CSVExpenseStore) Close() error {
	return nil
}

func toCSVRecord(e models.Expense) csvRecord {
	return csvRecord{
		Date:        dateutils.ToISODate(e.Date),
		Category:    string(e.Category),
		Amount:      e.Amount.StringFixed(2),
		Description: e.Description,
	}
}

func fromCSVRecord(row csvRecord) (models.Expense, *parsererror.DataExtractionError) {
	date, err := time.Parse(dateutils.DateLayoutISO, row.Date)
	if err != nil {
		return models.Expense{}, &parsererror.DataExtractionError{FieldName: "date", Reason: fmt.Sprintf("invalid date %q", row.Date), Err: err}
	}

	category, err := models.ParseCategory(row.Category)
	if err != nil {
		return models.Expense{}, &parsererror.DataExtractionError{FieldName: "category", Reason: err.Error()}
	}

	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return models.Expense{}, &parsererror.DataExtractionError{FieldName: "amount", Reason: fmt.Sprintf("invalid amount %q", row.Amount), Err: err}
	}

	return models.Expense{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: row.Description,
	}, nil
}
