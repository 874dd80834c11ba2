package filter

import (
	"strings"

	"github.com/Vec-io/RAGs.FYI/internal/domain/data"
	"github.com/Vec-io/RAGs.FYI/internal/domain/errors"
)

// Kind is the comparison a filter applies to a column value.
// All comparisons are case-insensitive.
type Kind string

const (
	KindEquals      Kind = "equals"
	KindNotEquals   Kind = "not_equals"
	KindContains    Kind = "contains"
	KindNotContains Kind = "not_contains"
)

// Kinds lists the supported kinds in display order
var Kinds = []Kind{KindEquals, KindNotEquals, KindContains, KindNotContains}

var kindAliases = map[string]Kind{
	"equals":       KindEquals,
	"eq":           KindEquals,
	"=":            KindEquals,
	"not_equals":   KindNotEquals,
	"not-equals":   KindNotEquals,
	"ne":           KindNotEquals,
	"!=":           KindNotEquals,
	"contains":     KindContains,
	"~":            KindContains,
	"not_contains": KindNotContains,
	"not-contains": KindNotContains,
	"!~":           KindNotContains,
}

// ParseKind maps user input to a Kind
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", errors.NewInvalidInput("filter kind", s, "expected equals, not_equals, contains or not_contains")
}

// Valid reports whether k is one of the supported kinds
func (k Kind) Valid() bool {
	switch k {
	case KindEquals, KindNotEquals, KindContains, KindNotContains:
		return true
	}
	return false
}

// Filter is a per-column inclusion predicate
type Filter struct {
	Column string `json:"column"`
	Kind   Kind   `json:"kind"`
	Value  string `json:"value"`
}

// Match reports whether row satisfies the filter.
// A row without the column always passes, as does any unrecognised kind.
func (f Filter) Match(row data.Row) bool {
	val, ok := row.Lookup(f.Column)
	if !ok {
		return true
	}

	val = strings.ToLower(val)
	target := strings.ToLower(f.Value)

	switch f.Kind {
	case KindEquals:
		return val == target
	case KindNotEquals:
		return val != target
	case KindContains:
		return strings.Contains(val, target)
	case KindNotContains:
		return !strings.Contains(val, target)
	default:
		return true
	}
}

// Apply returns the rows satisfying every filter, in input order.
// The input slice is not modified.
func Apply(rows []data.Row, filters []Filter) []data.Row {
	result := make([]data.Row, 0, len(rows))
	for _, row := range rows {
		if matchAll(row, filters) {
			result = append(result, row)
		}
	}
	return result
}

func matchAll(row data.Row, filters []Filter) bool {
	for _, f := range filters {
		if !f.Match(row) {
			return false
		}
	}
	return true
}
