// Package parsererror defines the typed errors returned at the edges of the
// application: stored records, configuration tables and user input.
package parsererror

import "fmt"

// ParseError represents a single field that could not be converted.
type ParseError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents an expense or table that was rejected before
// being persisted or used.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("validation failed for %s='%s': %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// InvalidFormatError represents an input file that does not conform to the
// expected layout at all.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s: %v",
			e.FilePath, e.Msg, e.ExpectedFormat, e.Err)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// DataExtractionError represents a stored record that could not be read back,
// even though the file itself is readable.
type DataExtractionError struct {
	FilePath  string
	Line      int
	FieldName string
	Reason    string
	Err       error
}

func (e *DataExtractionError) Error() string {
	msg := fmt.Sprintf("data extraction failed in file '%s'", e.FilePath)
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.FieldName != "" {
		msg += fmt.Sprintf(" for field '%s'", e.FieldName)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *DataExtractionError) Unwrap() error {
	return e.Err
}
