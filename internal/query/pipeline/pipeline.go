// Package pipeline turns a row set and the committed view state into the
// rows and columns to display: filter, then sort, then project.
//
// Every stage is a pure function over its inputs. Running the pipeline twice
// with equal inputs yields value-equal results in new slices.
package pipeline

import (
	"fmt"

	"github.com/Vec-io/RAGs.FYI/internal/domain/data"
	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
	"github.com/Vec-io/RAGs.FYI/internal/query/filter"
	"github.com/Vec-io/RAGs.FYI/internal/query/projection"
	"github.com/Vec-io/RAGs.FYI/internal/query/sorting"
)

// Input is a snapshot of everything the pipeline reads
type Input struct {
	Rows      []data.Row
	Columns   []schema.Column
	Filters   []filter.Filter
	Sort      sorting.Spec
	Selection projection.Selection
}

// Result is the displayed table
type Result struct {
	Columns []schema.Column `json:"columns"`
	Rows    []data.Row      `json:"rows"`
	Total   int             `json:"total"` // rows before filtering
}

// Run executes filter → sort → project
func Run(in Input) Result {
	filtered := filter.Apply(in.Rows, in.Filters)
	sorted := sorting.ApplySpec(filtered, in.Sort)
	projected := projection.Project(sorted, in.Columns, in.Selection)

	return Result{
		Columns: projected.Columns,
		Rows:    projected.Rows,
		Total:   len(in.Rows),
	}
}

// Empty reports whether no rows survived filtering
func (r Result) Empty() bool {
	return len(r.Rows) == 0
}

// Message is the status line shown above or instead of the table
func (r Result) Message() string {
	if r.Empty() {
		return "No providers match the current filters"
	}
	if len(r.Rows) == r.Total {
		return fmt.Sprintf("Showing all %d providers", r.Total)
	}
	return fmt.Sprintf("Showing %d of %d providers", len(r.Rows), r.Total)
}

// Keys returns the visible column keys in display order
func (r Result) Keys() []string {
	keys := make([]string, len(r.Columns))
	for i, col := range r.Columns {
		keys[i] = col.Key
	}
	return keys
}
