package data

import "maps"

// Row represents a single provider record
// Key = column key, Value = display value
type Row map[string]string

// Get returns the value stored under key, or "" when the row lacks it
func (r Row) Get(key string) string {
	return r[key]
}

// Lookup returns the value stored under key and whether it was present
func (r Row) Lookup(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// Copy creates a copy of the row to prevent mutation
func (r Row) Copy() Row {
	c := make(Row, len(r))
	maps.Copy(c, r)
	return c
}

// Equal reports whether both rows hold the same keys and values
func (r Row) Equal(other Row) bool {
	return maps.Equal(r, other)
}

// CopyRows copies every row in rows
func CopyRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		out[i] = row.Copy()
	}
	return out
}
