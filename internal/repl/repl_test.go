package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vec-io/RAGs.FYI/internal/engine"
	"github.com/Vec-io/RAGs.FYI/internal/query/testutil"
)

func newSession() *engine.Session {
	return engine.New(testutil.CreateProvidersTable(), engine.Options{}).NewSession()
}

func TestExecute_FilterIsStagedUntilApply(t *testing.T) {
	s := newSession()
	var out bytes.Buffer

	require.NoError(t, Execute(&out, s, "filter oss equals yes"))
	assert.Contains(t, out.String(), `staged: oss equals "yes"`)
	assert.Len(t, s.View().Rows, 2, "draft must not change the view")

	out.Reset()
	require.NoError(t, Execute(&out, s, "apply"))
	assert.Contains(t, out.String(), "LlamaCloud")
	assert.NotContains(t, out.String(), "Vectara")
	assert.Contains(t, out.String(), "Showing 1 of 2 providers")
}

func TestExecute_FilterValueWithSpaces(t *testing.T) {
	s := newSession()
	var out bytes.Buffer

	require.NoError(t, Execute(&out, s, "f pricing ~ free tier"))
	require.NoError(t, Execute(&out, s, "apply"))

	testutil.AssertNames(t, s.View().Rows, []string{"LlamaCloud"}, "pricing contains 'free tier'")
}

func TestExecute_DraftAndDiscard(t *testing.T) {
	s := newSession()
	var out bytes.Buffer

	require.NoError(t, Execute(&out, s, "filter name != vectara"))
	out.Reset()
	require.NoError(t, Execute(&out, s, "draft"))
	assert.Contains(t, out.String(), "Staged:")
	assert.Contains(t, out.String(), `name not_equals "vectara"`)
	assert.Contains(t, out.String(), "Active:\n  (none)")

	require.NoError(t, Execute(&out, s, "discard"))
	assert.False(t, s.State().Editing())
	assert.Len(t, s.View().Rows, 2)
}

func TestExecute_SortToggle(t *testing.T) {
	s := newSession()
	var out bytes.Buffer

	require.NoError(t, Execute(&out, s, "sort name"))
	assert.Contains(t, out.String(), "Name ▲")
	testutil.AssertNames(t, s.View().Rows, []string{"LlamaCloud", "Vectara"}, "asc")

	out.Reset()
	require.NoError(t, Execute(&out, s, "sort name"))
	assert.Contains(t, out.String(), "Name ▼")
	testutil.AssertNames(t, s.View().Rows, []string{"Vectara", "LlamaCloud"}, "desc")
}

func TestExecute_Columns(t *testing.T) {
	s := newSession()
	var out bytes.Buffer

	require.NoError(t, Execute(&out, s, "cols name, pricing"))
	assert.NotContains(t, out.String(), "Open Source")

	out.Reset()
	require.NoError(t, Execute(&out, s, "toggle oss"))
	assert.Contains(t, out.String(), "Open Source")

	out.Reset()
	require.NoError(t, Execute(&out, s, "search open"))
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
	assert.Contains(t, out.String(), "[x] oss")

	out.Reset()
	require.NoError(t, Execute(&out, s, "search zzz"))
	assert.Contains(t, out.String(), "no matching columns")

	assert.ErrorContains(t, Execute(&out, s, "cols none"), "none")
	require.NoError(t, Execute(&out, s, "cols all"))
	assert.Equal(t, 3, s.State().Selection.Len())
}

func TestExecute_Errors(t *testing.T) {
	s := newSession()
	var out bytes.Buffer

	assert.ErrorContains(t, Execute(&out, s, "frobnicate"), "unknown command")
	assert.ErrorContains(t, Execute(&out, s, "filter oss"), "usage")
	assert.ErrorContains(t, Execute(&out, s, "filter oss like yes"), "like")
	assert.ErrorContains(t, Execute(&out, s, "sort rating"), "rating")
	assert.ErrorContains(t, Execute(&out, s, "toggle"), "usage")
	assert.ErrorIs(t, Execute(&out, s, "\\q"), errQuit)
}

func TestStart(t *testing.T) {
	s := newSession()
	var out bytes.Buffer
	in := strings.NewReader("help\n\nfilter oss = no\napply\nbogus\nexit\nshow\n")

	Start(in, &out, s)

	got := out.String()
	assert.Contains(t, got, "Welcome to ragstable")
	assert.Contains(t, got, "Commands:")
	assert.Contains(t, got, "Showing 1 of 2 providers")
	assert.Contains(t, got, `Error: unknown command "bogus"`)
	assert.Equal(t, 1, s.State().Active.Len())
}

func TestStart_EOF(t *testing.T) {
	s := newSession()
	var out bytes.Buffer

	Start(strings.NewReader("reset"), &out, s)

	assert.Contains(t, out.String(), "Showing all 2 providers")
}
