package schema

import (
	"strings"

	"github.com/Vec-io/RAGs.FYI/internal/domain/errors"
)

// Column describes a displayable field
type Column struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// TableSchema is the static, ordered list of columns for a table
type TableSchema struct {
	TableName string
	Columns   []Column

	index map[string]int
}

// NewTableSchema validates the column list and builds the key index.
// Keys must be non-empty and unique; a missing label falls back to the key.
func NewTableSchema(tableName string, columns []Column) (*TableSchema, error) {
	s := &TableSchema{
		TableName: tableName,
		Columns:   make([]Column, 0, len(columns)),
		index:     make(map[string]int, len(columns)),
	}
	for _, col := range columns {
		col.Key = strings.TrimSpace(col.Key)
		if col.Key == "" {
			return nil, errors.NewInvalidInput("column key", col.Key, "must not be empty")
		}
		if _, dup := s.index[col.Key]; dup {
			return nil, &errors.DuplicateColumnError{TableName: tableName, ColumnName: col.Key}
		}
		if col.Label == "" {
			col.Label = col.Key
		}
		s.index[col.Key] = len(s.Columns)
		s.Columns = append(s.Columns, col)
	}
	return s, nil
}

// HasColumn reports whether key names a defined column
func (s *TableSchema) HasColumn(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Column returns the column definition for key
func (s *TableSchema) Column(key string) (Column, bool) {
	i, ok := s.index[key]
	if !ok {
		return Column{}, false
	}
	return s.Columns[i], true
}

// Keys returns the column keys in schema order
func (s *TableSchema) Keys() []string {
	keys := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		keys[i] = col.Key
	}
	return keys
}

// RequireColumn returns a ColumnNotFoundError when key is not defined
func (s *TableSchema) RequireColumn(key string) error {
	if !s.HasColumn(key) {
		return errors.NewColumnNotFound(s.TableName, key)
	}
	return nil
}
