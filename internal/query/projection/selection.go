package projection

import (
	"maps"
	"slices"

	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
)

// Selection is the set of column keys currently visible.
// It is a value: Toggle and the other mutators return a new Selection.
type Selection struct {
	keys map[string]struct{}
}

// NewSelection creates a selection holding keys
func NewSelection(keys ...string) Selection {
	s := Selection{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
	return s
}

// All selects every column
func All(columns []schema.Column) Selection {
	s := Selection{keys: make(map[string]struct{}, len(columns))}
	for _, col := range columns {
		s.keys[col.Key] = struct{}{}
	}
	return s
}

// Has reports whether key is selected
func (s Selection) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Len returns the number of selected keys
func (s Selection) Len() int {
	return len(s.keys)
}

// Toggle removes key when selected, adds it otherwise
func (s Selection) Toggle(key string) Selection {
	out := s.clone()
	if s.Has(key) {
		delete(out.keys, key)
	} else {
		out.keys[key] = struct{}{}
	}
	return out
}

// Keys returns the selected keys in the order of columns.
// Selected keys not present in columns are appended in sorted order.
func (s Selection) Keys(columns []schema.Column) []string {
	keys := make([]string, 0, len(s.keys))
	seen := make(map[string]struct{}, len(s.keys))
	for _, col := range columns {
		if s.Has(col.Key) {
			keys = append(keys, col.Key)
			seen[col.Key] = struct{}{}
		}
	}
	var rest []string
	for k := range s.keys {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(keys, rest...)
}

// Equal reports whether both selections hold the same keys
func (s Selection) Equal(other Selection) bool {
	return maps.Equal(s.keys, other.keys)
}

func (s Selection) clone() Selection {
	out := Selection{keys: make(map[string]struct{}, len(s.keys)+1)}
	maps.Copy(out.keys, s.keys)
	return out
}
