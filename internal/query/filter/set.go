package filter

import "slices"

// Set holds at most one filter per column. The zero value is an empty set.
// Sets are values: With and Without return a new Set and leave the receiver untouched.
type Set struct {
	filters []Filter
}

// NewSet builds a set from filters; a later filter for a column replaces an earlier one
func NewSet(filters ...Filter) Set {
	var s Set
	for _, f := range filters {
		s = s.With(f)
	}
	return s
}

// With returns a set where f is the filter for f.Column.
// Replacing keeps the column's original position.
func (s Set) With(f Filter) Set {
	out := slices.Clone(s.filters)
	if i := s.indexOf(f.Column); i >= 0 {
		out[i] = f
	} else {
		out = append(out, f)
	}
	return Set{filters: out}
}

// Without returns a set with no filter for column
func (s Set) Without(column string) Set {
	i := s.indexOf(column)
	if i < 0 {
		return s.Clone()
	}
	out := slices.Clone(s.filters)
	return Set{filters: slices.Delete(out, i, i+1)}
}

// Get returns the filter for column
func (s Set) Get(column string) (Filter, bool) {
	if i := s.indexOf(column); i >= 0 {
		return s.filters[i], true
	}
	return Filter{}, false
}

// Len returns the number of filters in the set
func (s Set) Len() int {
	return len(s.filters)
}

// Filters returns a copy of the filters in first-seen column order
func (s Set) Filters() []Filter {
	return slices.Clone(s.filters)
}

// Clone returns an independent copy of the set
func (s Set) Clone() Set {
	return Set{filters: slices.Clone(s.filters)}
}

// Equal reports whether both sets hold the same filters for the same columns.
// Column order is ignored.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, f := range s.filters {
		g, ok := other.Get(f.Column)
		if !ok || g != f {
			return false
		}
	}
	return true
}

func (s Set) indexOf(column string) int {
	return slices.IndexFunc(s.filters, func(f Filter) bool { return f.Column == column })
}
