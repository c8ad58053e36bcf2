package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fjacquet/spend-tracker/internal/dateutils"
	"fjacquet/spend-tracker/internal/fileutils"
	"fjacquet/spend-tracker/internal/logging"
	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/parsererror"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

const (
	insertExpenseSQL = `INSERT INTO expenses (date, category, amount, description) VALUES (?, ?, ?, ?)`
	selectExpenseSQL = `SELECT id, date, category, amount, description FROM expenses ORDER BY id`
)

// SQLiteExpenseStore keeps records in a SQLite database. Amounts are stored as
// their exact decimal TEXT; insertion order follows the row id.
type SQLiteExpenseStore struct {
	db     *sql.DB
	path   string
	logger logging.Logger
}

// NewSQLiteExpenseStore opens (creating if needed) the database at dbPath and
// applies pending migrations.
func NewSQLiteExpenseStore(dbPath string, logger logging.Logger) (*SQLiteExpenseStore, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if err := fileutils.EnsureParentDirectory(dbPath); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Debug("Opened SQLite expense store",
		logging.Field{Key: logging.FieldFile, Value: dbPath})

	return &SQLiteExpenseStore{
		db:     db,
		path:   dbPath,
		logger: logger,
	}, nil
}

// Append inserts one record.
func (s *SQLiteExpenseStore) Append(ctx context.Context, expense models.Expense) error {
	res, err := s.db.ExecContext(ctx, insertExpenseSQL,
		dateutils.ToISODate(expense.Date),
		string(expense.Category),
		expense.Amount.String(),
		expense.Description,
	)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}

	id, _ := res.LastInsertId()
	s.logger.Debug("Expense saved to SQLite",
		logging.Field{Key: "id", Value: id},
		logging.Field{Key: logging.FieldCategory, Value: expense.Category},
		logging.Field{Key: logging.FieldAmount, Value: expense.Amount.String()})
	return nil
}

// LoadAll returns every record ordered by id.
func (s *SQLiteExpenseStore) LoadAll(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, selectExpenseSQL)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	expenses := []models.Expense{}
	for rows.Next() {
		var id int64
		var date, category, amount, description string
		if err := rows.Scan(&id, &date, &category, &amount, &description); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}

		expense, err := s.toExpense(id, date, category, amount, description)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	s.logger.Debug("Loaded expenses",
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(expenses)})
	return expenses, nil
}

func (s *SQLiteExpenseStore) toExpense(id int64, date, category, amount, description string) (models.Expense, error) {
	parsedDate, err := time.Parse(dateutils.DateLayoutISO, date)
	if err != nil {
		return models.Expense{}, &parsererror.DataExtractionError{FilePath: s.path, Line: int(id), FieldName: "date", Reason: fmt.Sprintf("invalid date %q", date), Err: err}
	}
	parsedCategory, err := models.ParseCategory(category)
	if err != nil {
		return models.Expense{}, &parsererror.DataExtractionError{FilePath: s.path, Line: int(id), FieldName: "category", Reason: err.Error()}
	}
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return models.Expense{}, &parsererror.DataExtractionError{FilePath: s.path, Line: int(id), FieldName: "amount", Reason: fmt.Sprintf("invalid amount %q", amount), Err: err}
	}

	return models.Expense{
		Date:        parsedDate,
		Category:    parsedCategory,
		Amount:      parsedAmount,
		Description: description,
	}, nil
}

// Close releases the connection pool.
func (s *SQLiteExpenseStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
