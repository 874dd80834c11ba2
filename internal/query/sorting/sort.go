package sorting

import (
	"slices"
	"strings"

	"github.com/Vec-io/RAGs.FYI/internal/domain/data"
	"github.com/Vec-io/RAGs.FYI/internal/domain/errors"
)

// Direction is the order rows are sorted in
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// MarshalText encodes the direction as "asc" or "desc"
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts anything ParseDirection accepts
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection maps user input to a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, errors.NewInvalidInput("sort direction", s, "expected asc or desc")
}

// Spec is the single active sort. An empty Column means rows keep their order.
type Spec struct {
	Column    string    `json:"column"`
	Direction Direction `json:"direction"`
}

// Toggle returns the spec after the user picks column:
// the active column flips direction, any other column starts ascending.
func (s Spec) Toggle(column string) Spec {
	if s.Column == column {
		return Spec{Column: column, Direction: s.Direction.Flip()}
	}
	return Spec{Column: column, Direction: Ascending}
}

// IsSet reports whether a sort column has been chosen
func (s Spec) IsSet() bool {
	return s.Column != ""
}

// Apply returns a new slice ordered by the value at column.
// The sort is stable: rows with equal keys keep their input order in both directions.
func Apply(rows []data.Row, column string, dir Direction) []data.Row {
	out := slices.Clone(rows)
	if column == "" {
		return out
	}
	slices.SortStableFunc(out, func(a, b data.Row) int {
		c := strings.Compare(a.Get(column), b.Get(column))
		if dir == Descending {
			return -c
		}
		return c
	})
	return out
}

// ApplySpec is Apply driven by a Spec
func ApplySpec(rows []data.Row, spec Spec) []data.Row {
	return Apply(rows, spec.Column, spec.Direction)
}
