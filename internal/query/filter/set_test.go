package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_WithReplacesSameColumn(t *testing.T) {
	s := NewSet(
		Filter{Column: "oss", Kind: KindEquals, Value: "yes"},
		Filter{Column: "name", Kind: KindContains, Value: "a"},
	)

	s2 := s.With(Filter{Column: "oss", Kind: KindEquals, Value: "no"})

	assert.Equal(t, 2, s2.Len())
	got, ok := s2.Get("oss")
	assert.True(t, ok)
	assert.Equal(t, "no", got.Value)
	// first-seen position kept
	assert.Equal(t, "oss", s2.Filters()[0].Column)

	// receiver untouched
	orig, _ := s.Get("oss")
	assert.Equal(t, "yes", orig.Value)
}

func TestSet_Without(t *testing.T) {
	s := NewSet(Filter{Column: "oss", Kind: KindEquals, Value: "yes"})

	assert.Equal(t, 0, s.Without("oss").Len())
	assert.Equal(t, 1, s.Without("pricing").Len())
	assert.Equal(t, 1, s.Len())
}

func TestSet_FiltersReturnsCopy(t *testing.T) {
	s := NewSet(Filter{Column: "oss", Kind: KindEquals, Value: "yes"})

	fs := s.Filters()
	fs[0].Value = "changed"

	got, _ := s.Get("oss")
	assert.Equal(t, "yes", got.Value)
}

func TestSet_EqualIgnoresOrder(t *testing.T) {
	a := NewSet(Filter{Column: "oss", Kind: KindEquals, Value: "yes"}, Filter{Column: "name", Kind: KindContains, Value: "x"})
	b := NewSet(Filter{Column: "name", Kind: KindContains, Value: "x"}, Filter{Column: "oss", Kind: KindEquals, Value: "yes"})
	c := NewSet(Filter{Column: "oss", Kind: KindEquals, Value: "no"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, Set{}.Equal(NewSet()))
}
