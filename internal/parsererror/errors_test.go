package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "amount field",
			err: &ParseError{
				Source: "categories.yaml",
				Field:  "limit",
				Value:  "lots",
				Err:    errors.New("can't convert lots to decimal"),
			},
			expected: "categories.yaml: failed to parse limit='lots': can't convert lots to decimal",
		},
		{
			name: "empty value",
			err: &ParseError{
				Source: "expenses.csv",
				Field:  "date",
				Value:  "",
				Err:    errors.New("empty date"),
			},
			expected: "expenses.csv: failed to parse date='': empty date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	original := errors.New("original error")
	err := &ParseError{Source: "expenses.csv", Field: "amount", Value: "x", Err: original}

	assert.Equal(t, original, err.Unwrap())
	assert.True(t, errors.Is(err, original))
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "with value",
			err:      &ValidationError{Field: "amount", Value: "0", Reason: "amount must exceed zero"},
			expected: "validation failed for amount='0': amount must exceed zero",
		},
		{
			name:     "without value",
			err:      &ValidationError{Field: "date", Reason: "date is required"},
			expected: "validation failed for date: date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath:       "categories.yaml",
		ExpectedFormat: "YAML with keywords and budgets lists",
		Msg:            "cannot decode document",
	}
	assert.Equal(t, "invalid format in file 'categories.yaml': cannot decode document. Expected: YAML with keywords and budgets lists", err.Error())

	cause := errors.New("yaml: line 3: mapping values are not allowed")
	wrapped := &InvalidFormatError{FilePath: "c.yaml", ExpectedFormat: "YAML", Msg: "bad", Err: cause}
	assert.Contains(t, wrapped.Error(), "mapping values are not allowed")
	assert.True(t, errors.Is(wrapped, cause))
}

func TestDataExtractionError(t *testing.T) {
	tests := []struct {
		name     string
		err      *DataExtractionError
		expected string
	}{
		{
			name: "line and field",
			err: &DataExtractionError{
				FilePath:  "expenses.csv",
				Line:      4,
				FieldName: "amount",
				Reason:    "not a decimal",
			},
			expected: "data extraction failed in file 'expenses.csv' at line 4 for field 'amount': not a decimal",
		},
		{
			name: "file level",
			err: &DataExtractionError{
				FilePath: "expenses.csv",
				Reason:   "cannot decode rows",
				Err:      errors.New("wrong number of fields"),
			},
			expected: "data extraction failed in file 'expenses.csv': cannot decode rows: wrong number of fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorsAs(t *testing.T) {
	var err error = &DataExtractionError{FilePath: "x.csv", Line: 2, Reason: "bad"}

	var target *DataExtractionError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, 2, target.Line)

	var validation *ValidationError
	assert.False(t, errors.As(err, &validation))
}
