package errors

import (
	"fmt"
	"strings"
)

// ColumnNotFoundError is returned when an action or query names a column
// that the table does not define
type ColumnNotFoundError struct {
	TableName  string
	ColumnName string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column '%s' does not exist in table '%s'", e.ColumnName, e.TableName)
}

// UnknownColumnError reports a row carrying a key outside the table's column set
type UnknownColumnError struct {
	TableName  string
	ColumnName string
	RowIndex   int // 0-based, -1 if unknown
}

func (e *UnknownColumnError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("unknown column '%s' in table '%s'", e.ColumnName, e.TableName))
	if e.RowIndex >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.RowIndex))
	}
	return strings.Join(parts, " - ")
}

// DuplicateColumnError reports a schema defining the same key twice
type DuplicateColumnError struct {
	TableName  string
	ColumnName string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column '%s' in table '%s'", e.ColumnName, e.TableName)
}

// InvalidInputError represents user input the rendering layer could not parse
// (a filter kind, a sort direction, an output format)
type InvalidInputError struct {
	Field  string // what was being parsed, e.g. "filter kind"
	Value  string
	Reason string // optional
}

func (e *InvalidInputError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// NewColumnNotFound is a shorthand for ColumnNotFoundError
func NewColumnNotFound(table, column string) *ColumnNotFoundError {
	return &ColumnNotFoundError{TableName: table, ColumnName: column}
}

// NewInvalidInput is a shorthand for InvalidInputError
func NewInvalidInput(field, value, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}
