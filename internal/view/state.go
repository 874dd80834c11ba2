package view

import (
	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
	"github.com/Vec-io/RAGs.FYI/internal/query/filter"
	"github.com/Vec-io/RAGs.FYI/internal/query/pipeline"
	"github.com/Vec-io/RAGs.FYI/internal/query/projection"
	"github.com/Vec-io/RAGs.FYI/internal/query/sorting"
)

// State is the complete view state of one table session.
//
// Filter edits are staged: they go to Draft and only reach Active on
// CommitFilters. A nil Draft means no edit is in progress.
type State struct {
	Active    filter.Set
	Draft     *filter.Set
	Sort      sorting.Spec
	Selection projection.Selection
}

// NewState returns the initial state for table: no filters, every column
// visible, rows sorted by defaultSort (which may be zero for "unsorted").
func NewState(table *schema.Table, defaultSort sorting.Spec) State {
	return State{
		Sort:      defaultSort,
		Selection: projection.All(table.Schema.Columns),
	}
}

// Editing reports whether a draft is open
func (s State) Editing() bool {
	return s.Draft != nil
}

// DraftFilters returns the filters being edited, or the active ones when no draft is open
func (s State) DraftFilters() filter.Set {
	if s.Draft != nil {
		return *s.Draft
	}
	return s.Active
}

// Dirty reports whether the open draft differs from the active filters
func (s State) Dirty() bool {
	return s.Draft != nil && !s.Draft.Equal(s.Active)
}

// Input builds the pipeline input from the committed state.
// Draft edits never reach the pipeline.
func (s State) Input(table *schema.Table) pipeline.Input {
	return pipeline.Input{
		Rows:      table.Rows(),
		Columns:   table.Schema.Columns,
		Filters:   s.Active.Filters(),
		Sort:      s.Sort,
		Selection: s.Selection,
	}
}

// Render runs the pipeline for table under this state
func (s State) Render(table *schema.Table) pipeline.Result {
	return pipeline.Run(s.Input(table))
}
