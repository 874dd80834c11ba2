package engine

import (
	"fmt"
	"sync"

	"github.com/Vec-io/RAGs.FYI/internal/domain/data"
	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
	"github.com/Vec-io/RAGs.FYI/internal/query/filter"
	"github.com/Vec-io/RAGs.FYI/internal/query/pipeline"
	"github.com/Vec-io/RAGs.FYI/internal/view"
)

// Session holds one user's view state over the engine's table.
// All methods are safe for concurrent use.
type Session struct {
	ID string

	engine *Engine
	mu     sync.Mutex
	state  view.State
}

// Dispatch validates action against the table schema and applies it.
// Returns the new state.
func (s *Session) Dispatch(action view.Action) (view.State, error) {
	for _, col := range action.Columns() {
		if err := s.engine.table.Schema.RequireColumn(col); err != nil {
			return s.State(), fmt.Errorf("%s: %w", action.Name(), err)
		}
	}

	s.mu.Lock()
	s.state = view.Reduce(s.state, action)
	next := s.state
	s.mu.Unlock()

	s.engine.notify(Event{Type: EventDispatch, SessionID: s.ID, Data: action.Name()})
	return next, nil
}

// State returns a snapshot of the session's view state
func (s *Session) State() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// View runs the pipeline over the committed state.
// Returned rows are copies the caller may keep.
func (s *Session) View() pipeline.Result {
	state := s.State()
	result := state.Render(s.engine.table)
	result.Rows = data.CopyRows(result.Rows)

	s.engine.notify(Event{Type: EventView, SessionID: s.ID, Data: map[string]interface{}{
		"rows_returned": len(result.Rows),
		"rows_total":    result.Total,
		"columns":       len(result.Columns),
	}})
	return result
}

// SetFilter stages a filter edit for column
func (s *Session) SetFilter(column string, kind filter.Kind, value string) error {
	_, err := s.Dispatch(view.SetFilter{Column: column, Kind: kind, Value: value})
	return err
}

// RemoveFilter stages removal of column's filter
func (s *Session) RemoveFilter(column string) error {
	_, err := s.Dispatch(view.RemoveFilter{Column: column})
	return err
}

// ClearFilters stages removal of every filter
func (s *Session) ClearFilters() {
	_, _ = s.Dispatch(view.ClearFilters{})
}

// CommitFilters applies the draft and returns the refreshed view
func (s *Session) CommitFilters() pipeline.Result {
	state, _ := s.Dispatch(view.CommitFilters{})
	s.engine.notify(Event{Type: EventCommit, SessionID: s.ID, Data: state.Active.Len()})
	return s.View()
}

// DiscardDraft abandons the open filter edit
func (s *Session) DiscardDraft() {
	_, _ = s.Dispatch(view.DiscardDraft{})
}

// SetSort sorts by column, flipping direction when it is already active
func (s *Session) SetSort(column string) error {
	_, err := s.Dispatch(view.SetSort{Column: column})
	return err
}

// SetColumnSelection replaces the visible columns
func (s *Session) SetColumnSelection(keys []string) error {
	_, err := s.Dispatch(view.SetColumnSelection{Keys: keys})
	return err
}

// ToggleColumn shows or hides one column
func (s *Session) ToggleColumn(key string) error {
	_, err := s.Dispatch(view.ToggleColumn{Key: key})
	return err
}

// ShowAllColumns makes every column visible
func (s *Session) ShowAllColumns() {
	_, _ = s.Dispatch(view.SetColumnSelection{Keys: s.engine.table.Schema.Keys()})
}

// Reset returns the session to the engine's initial state
func (s *Session) Reset() {
	s.mu.Lock()
	s.state = s.engine.InitialState()
	s.mu.Unlock()

	s.engine.notify(Event{Type: EventDispatch, SessionID: s.ID, Data: "reset"})
}

// Columns returns the table's column definitions in display order
func (s *Session) Columns() []schema.Column {
	return s.engine.table.Schema.Columns
}
