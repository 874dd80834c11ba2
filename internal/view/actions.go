package view

import (
	"github.com/Vec-io/RAGs.FYI/internal/query/filter"
	"github.com/Vec-io/RAGs.FYI/internal/query/sorting"
)

// Action is a user intent the rendering layer translates input into
type Action interface {
	// Name identifies the action in logs and events
	Name() string
	// Columns lists the column keys the action refers to, for validation
	Columns() []string
}

// SetFilter stages a filter for Column in the draft
type SetFilter struct {
	Column string
	Kind   filter.Kind
	Value  string
}

// RemoveFilter stages removal of the filter for Column
type RemoveFilter struct {
	Column string
}

// ClearFilters stages removal of every filter
type ClearFilters struct{}

// BeginEdit opens a draft seeded from the active filters
type BeginEdit struct{}

// CommitFilters makes the draft the active filter set and closes it
type CommitFilters struct{}

// DiscardDraft closes the draft, leaving the active filters unchanged
type DiscardDraft struct{}

// SetSort picks Column as the sort column with toggle semantics
type SetSort struct {
	Column string
}

// SetSortDirection sets column and direction explicitly
type SetSortDirection struct {
	Column    string
	Direction sorting.Direction
}

// SetColumnSelection replaces the visible column set
type SetColumnSelection struct {
	Keys []string
}

// ToggleColumn shows Key if hidden and hides it if visible
type ToggleColumn struct {
	Key string
}

func (SetFilter) Name() string          { return "set_filter" }
func (RemoveFilter) Name() string       { return "remove_filter" }
func (ClearFilters) Name() string       { return "clear_filters" }
func (BeginEdit) Name() string          { return "begin_edit" }
func (CommitFilters) Name() string      { return "commit_filters" }
func (DiscardDraft) Name() string       { return "discard_draft" }
func (SetSort) Name() string            { return "set_sort" }
func (SetSortDirection) Name() string   { return "set_sort_direction" }
func (SetColumnSelection) Name() string { return "set_column_selection" }
func (ToggleColumn) Name() string       { return "toggle_column" }

func (a SetFilter) Columns() []string          { return []string{a.Column} }
func (a RemoveFilter) Columns() []string       { return []string{a.Column} }
func (ClearFilters) Columns() []string         { return nil }
func (BeginEdit) Columns() []string            { return nil }
func (CommitFilters) Columns() []string        { return nil }
func (DiscardDraft) Columns() []string         { return nil }
func (a SetSort) Columns() []string            { return []string{a.Column} }
func (a SetSortDirection) Columns() []string   { return []string{a.Column} }
func (a SetColumnSelection) Columns() []string { return a.Keys }
func (a ToggleColumn) Columns() []string       { return []string{a.Key} }
