package view

import (
	"github.com/Vec-io/RAGs.FYI/internal/query/filter"
	"github.com/Vec-io/RAGs.FYI/internal/query/projection"
	"github.com/Vec-io/RAGs.FYI/internal/query/sorting"
)

// Reduce returns the state after applying action. It never modifies s.
// Filter actions touch only Active/Draft, sort actions only Sort, and
// column actions only Selection. Unknown actions return s unchanged.
func Reduce(s State, action Action) State {
	next := s
	switch a := action.(type) {
	case SetFilter:
		next.Draft = draftPtr(s.DraftFilters().With(filter.Filter{Column: a.Column, Kind: a.Kind, Value: a.Value}))
	case RemoveFilter:
		next.Draft = draftPtr(s.DraftFilters().Without(a.Column))
	case ClearFilters:
		next.Draft = draftPtr(filter.Set{})
	case BeginEdit:
		next.Draft = draftPtr(s.Active.Clone())
	case CommitFilters:
		if s.Draft != nil {
			next.Active = s.Draft.Clone()
		}
		next.Draft = nil
	case DiscardDraft:
		next.Draft = nil
	case SetSort:
		next.Sort = s.Sort.Toggle(a.Column)
	case SetSortDirection:
		next.Sort = sorting.Spec{Column: a.Column, Direction: a.Direction}
	case SetColumnSelection:
		next.Selection = projection.NewSelection(a.Keys...)
	case ToggleColumn:
		next.Selection = s.Selection.Toggle(a.Key)
	}
	return next
}

// ReduceAll folds actions over s in order
func ReduceAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func draftPtr(set filter.Set) *filter.Set {
	return &set
}
