package projection

import (
	"slices"
	"strings"

	"github.com/Vec-io/RAGs.FYI/internal/domain/data"
	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
)

// Result is a projected view: the visible columns plus the rows to render
type Result struct {
	Columns []schema.Column
	Rows    []data.Row
}

// Project reduces columns to those in selection, keeping the column list order.
// Rows are passed through unchanged; only the renderer reads the pruned columns.
// An empty selection yields zero columns but the same row count.
func Project(rows []data.Row, columns []schema.Column, selection Selection) Result {
	visible := make([]schema.Column, 0, len(columns))
	for _, col := range columns {
		if selection.Has(col.Key) {
			visible = append(visible, col)
		}
	}

	return Result{
		Columns: visible,
		Rows:    slices.Clone(rows),
	}
}

// ProjectRow returns a new row holding only the visible columns.
// Used by exporters; a column missing from row renders as "".
func ProjectRow(row data.Row, columns []schema.Column) data.Row {
	projected := make(data.Row, len(columns))
	for _, col := range columns {
		projected[col.Key] = row.Get(col.Key)
	}
	return projected
}

// SearchColumns returns the columns whose label or key contains query,
// case-insensitively, in column order. An empty query matches everything.
func SearchColumns(columns []schema.Column, query string) []schema.Column {
	q := strings.ToLower(strings.TrimSpace(query))
	var matches []schema.Column
	for _, col := range columns {
		if q == "" ||
			strings.Contains(strings.ToLower(col.Label), q) ||
			strings.Contains(strings.ToLower(col.Key), q) {
			matches = append(matches, col)
		}
	}
	return matches
}
