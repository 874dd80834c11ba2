package schema

import (
	"log/slog"
	"sort"

	"github.com/Vec-io/RAGs.FYI/internal/domain/data"
	"github.com/Vec-io/RAGs.FYI/internal/domain/errors"
)

// Table holds a schema and the rows supplied at construction.
// Rows are never mutated after NewTable returns.
type Table struct {
	Name   string
	Schema *TableSchema
	rows   []data.Row
}

// RowPolicy decides what happens to rows carrying keys outside the schema
type RowPolicy int

const (
	// RowPolicyStrict rejects the whole table
	RowPolicyStrict RowPolicy = iota
	// RowPolicyNormalize drops the foreign keys and logs a warning
	RowPolicyNormalize
)

// NewTable validates rows against the schema and stores private copies.
// Missing keys are always allowed.
func NewTable(schema *TableSchema, rows []data.Row, policy RowPolicy, logger *slog.Logger) (*Table, error) {
	if logger == nil {
		logger = slog.Default()
	}

	stored := make([]data.Row, 0, len(rows))
	for i, row := range rows {
		if policy == RowPolicyStrict {
			if err := schema.ValidateRow(row, i); err != nil {
				return nil, err
			}
		} else if foreign := schema.foreignKeys(row); len(foreign) > 0 {
			logger.Warn("dropping unknown columns from row",
				slog.String("table", schema.TableName),
				slog.Int("row", i),
				slog.Any("columns", foreign),
			)
		}
		stored = append(stored, schema.NormalizeRow(row))
	}

	return &Table{
		Name:   schema.TableName,
		Schema: schema,
		rows:   stored,
	}, nil
}

// ValidateRow returns an UnknownColumnError for the first foreign key in row
func (s *TableSchema) ValidateRow(row data.Row, rowIndex int) error {
	if foreign := s.foreignKeys(row); len(foreign) > 0 {
		return &errors.UnknownColumnError{TableName: s.TableName, ColumnName: foreign[0], RowIndex: rowIndex}
	}
	return nil
}

// NormalizeRow returns a copy of row restricted to the schema's keys
func (s *TableSchema) NormalizeRow(row data.Row) data.Row {
	out := make(data.Row, len(row))
	for k, v := range row {
		if s.HasColumn(k) {
			out[k] = v
		}
	}
	return out
}

// foreignKeys lists keys of row not defined by the schema, sorted for stable errors
func (s *TableSchema) foreignKeys(row data.Row) []string {
	var foreign []string
	for k := range row {
		if !s.HasColumn(k) {
			foreign = append(foreign, k)
		}
	}
	sort.Strings(foreign)
	return foreign
}

// Rows returns the stored rows without copying. Callers must treat them as read-only.
func (t *Table) Rows() []data.Row {
	return t.rows
}

// Len returns the number of rows in the table
func (t *Table) Len() int {
	return len(t.rows)
}
