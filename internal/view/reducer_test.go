package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vec-io/RAGs.FYI/internal/query/filter"
	"github.com/Vec-io/RAGs.FYI/internal/query/sorting"
	"github.com/Vec-io/RAGs.FYI/internal/query/testutil"
	"github.com/Vec-io/RAGs.FYI/internal/view"
)

func TestNewState(t *testing.T) {
	table := testutil.CreateProvidersTable()

	s := view.NewState(table, sorting.Spec{})

	assert.Equal(t, 0, s.Active.Len())
	assert.False(t, s.Editing())
	assert.Equal(t, 3, s.Selection.Len())
}

func TestReduce_StagedFilterIsInvisibleUntilCommit(t *testing.T) {
	table := testutil.CreateProvidersTable()
	s := view.NewState(table, sorting.Spec{})

	s = view.Reduce(s, view.SetFilter{Column: "oss", Kind: filter.KindEquals, Value: "yes"})

	require.True(t, s.Editing())
	assert.True(t, s.Dirty())
	assert.Equal(t, 0, s.Active.Len())
	assert.Len(t, s.Render(table).Rows, 2, "draft must not filter")

	s = view.Reduce(s, view.CommitFilters{})

	assert.False(t, s.Editing())
	assert.Equal(t, 1, s.Active.Len())
	testutil.AssertNames(t, s.Render(table).Rows, []string{"LlamaCloud"}, "committed oss = yes")
}

func TestReduce_DiscardLeavesActiveUnchanged(t *testing.T) {
	table := testutil.CreateProvidersTable()
	s := view.ReduceAll(view.NewState(table, sorting.Spec{}),
		view.SetFilter{Column: "oss", Kind: filter.KindEquals, Value: "yes"},
		view.CommitFilters{},
	)
	committed := s.Active

	s = view.ReduceAll(s,
		view.BeginEdit{},
		view.SetFilter{Column: "oss", Kind: filter.KindEquals, Value: "no"},
		view.SetFilter{Column: "name", Kind: filter.KindContains, Value: "x"},
		view.DiscardDraft{},
	)

	assert.False(t, s.Editing())
	assert.True(t, committed.Equal(s.Active))
	testutil.AssertNames(t, s.Render(table).Rows, []string{"LlamaCloud"}, "after discard")
}

func TestReduce_DraftDoesNotLeakAcrossEdits(t *testing.T) {
	table := testutil.CreateProvidersTable()
	s := view.NewState(table, sorting.Spec{})

	s = view.ReduceAll(s,
		view.SetFilter{Column: "name", Kind: filter.KindContains, Value: "vec"},
		view.DiscardDraft{},
		view.SetFilter{Column: "oss", Kind: filter.KindEquals, Value: "yes"},
	)

	_, hasName := s.DraftFilters().Get("name")
	assert.False(t, hasName, "discarded edit must not come back")
	assert.Equal(t, 1, s.DraftFilters().Len())
}

func TestReduce_SetFilterReplacesColumn(t *testing.T) {
	table := testutil.CreateProvidersTable()

	s := view.ReduceAll(view.NewState(table, sorting.Spec{}),
		view.SetFilter{Column: "oss", Kind: filter.KindEquals, Value: "yes"},
		view.SetFilter{Column: "oss", Kind: filter.KindEquals, Value: "no"},
		view.CommitFilters{},
	)

	assert.Equal(t, 1, s.Active.Len())
	testutil.AssertNames(t, s.Render(table).Rows, []string{"Vectara"}, "oss = no")
}

func TestReduce_RemoveAndClear(t *testing.T) {
	table := testutil.CreateProvidersTable()
	s := view.ReduceAll(view.NewState(table, sorting.Spec{}),
		view.SetFilter{Column: "oss", Kind: filter.KindEquals, Value: "yes"},
		view.SetFilter{Column: "name", Kind: filter.KindContains, Value: "l"},
		view.CommitFilters{},
	)

	removed := view.ReduceAll(s, view.RemoveFilter{Column: "oss"}, view.CommitFilters{})
	assert.Equal(t, 1, removed.Active.Len())

	cleared := view.ReduceAll(s, view.ClearFilters{}, view.CommitFilters{})
	assert.Equal(t, 0, cleared.Active.Len())
	assert.Len(t, cleared.Render(table).Rows, 2)
}

func TestReduce_CommitWithoutDraftKeepsActive(t *testing.T) {
	table := testutil.CreateProvidersTable()
	s := view.ReduceAll(view.NewState(table, sorting.Spec{}),
		view.SetFilter{Column: "oss", Kind: filter.KindEquals, Value: "yes"},
		view.CommitFilters{},
		view.CommitFilters{},
	)

	assert.Equal(t, 1, s.Active.Len())
}

func TestReduce_SortToggle(t *testing.T) {
	table := testutil.CreateProvidersTable()
	s := view.NewState(table, sorting.Spec{})

	s = view.Reduce(s, view.SetSort{Column: "name"})
	testutil.AssertNames(t, s.Render(table).Rows, []string{"LlamaCloud", "Vectara"}, "name asc")

	s = view.Reduce(s, view.SetSort{Column: "name"})
	testutil.AssertNames(t, s.Render(table).Rows, []string{"Vectara", "LlamaCloud"}, "name desc")

	s = view.Reduce(s, view.SetSort{Column: "oss"})
	assert.Equal(t, sorting.Spec{Column: "oss", Direction: sorting.Ascending}, s.Sort)

	s = view.Reduce(s, view.SetSortDirection{Column: "name", Direction: sorting.Descending})
	assert.Equal(t, sorting.Spec{Column: "name", Direction: sorting.Descending}, s.Sort)
}

func TestReduce_ColumnSelectionIsIndependent(t *testing.T) {
	table := testutil.CreateProvidersTable()
	s := view.ReduceAll(view.NewState(table, sorting.Spec{Column: "name"}),
		view.SetFilter{Column: "oss", Kind: filter.KindEquals, Value: "yes"},
	)
	before := s

	s = view.Reduce(s, view.SetColumnSelection{Keys: []string{"name"}})

	assert.Equal(t, before.Sort, s.Sort)
	assert.True(t, before.DraftFilters().Equal(s.DraftFilters()))
	assert.True(t, before.Active.Equal(s.Active))

	result := s.Render(table)
	assert.Equal(t, []string{"name"}, result.Keys())
	assert.Len(t, result.Rows, 2)

	s = view.Reduce(s, view.ToggleColumn{Key: "oss"})
	assert.Equal(t, []string{"name", "oss"}, s.Render(table).Keys())
	assert.Equal(t, 3, before.Selection.Len(), "earlier state untouched")
}

func TestReduce_DoesNotModifyInputState(t *testing.T) {
	table := testutil.CreateProvidersTable()
	s := view.NewState(table, sorting.Spec{})
	s = view.ReduceAll(s, view.SetFilter{Column: "oss", Kind: filter.KindEquals, Value: "yes"})
	draftBefore := s.Draft.Clone()

	_ = view.Reduce(s, view.SetFilter{Column: "name", Kind: filter.KindContains, Value: "v"})
	_ = view.Reduce(s, view.CommitFilters{})

	assert.True(t, draftBefore.Equal(*s.Draft))
	assert.Equal(t, 0, s.Active.Len())
}
