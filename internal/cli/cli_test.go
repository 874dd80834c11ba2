package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vec-io/RAGs.FYI/internal/query/filter"
	"github.com/Vec-io/RAGs.FYI/internal/query/testutil"
	"github.com/Vec-io/RAGs.FYI/internal/render"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RAGSTABLE_LOG_LEVEL", "error")
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestParseFilterExpr(t *testing.T) {
	tests := []struct {
		expr string
		want filter.Filter
	}{
		{"oss=yes", filter.Filter{Column: "oss", Kind: filter.KindEquals, Value: "yes"}},
		{"oss!=yes", filter.Filter{Column: "oss", Kind: filter.KindNotEquals, Value: "yes"}},
		{"pricing~free tier", filter.Filter{Column: "pricing", Kind: filter.KindContains, Value: "free tier"}},
		{"pricing!~usage", filter.Filter{Column: "pricing", Kind: filter.KindNotContains, Value: "usage"}},
		{"name=a=b", filter.Filter{Column: "name", Kind: filter.KindEquals, Value: "a=b"}},
		{"oss=", filter.Filter{Column: "oss", Kind: filter.KindEquals, Value: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := parseFilterExpr(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"oss", "=yes", "!~x"} {
		_, err := parseFilterExpr(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseOutputFormat(t *testing.T) {
	f, err := parseOutputFormat("json")
	require.NoError(t, err)
	assert.Equal(t, outputFormatJSON, f)

	_, err = parseOutputFormat("yaml")
	assert.Error(t, err)
}

func TestView_Table(t *testing.T) {
	out, err := runCLI(t, "", "view", "--filter", "oss=yes", "--columns", "name,oss")
	require.NoError(t, err)

	assert.Contains(t, out, "Name ▲")
	assert.Contains(t, out, "LlamaCloud")
	assert.Contains(t, out, "R2R")
	assert.NotContains(t, out, "Vectara")
	assert.NotContains(t, out, "Pricing")
	assert.Contains(t, out, "Showing 2 of 6 providers")
}

func TestView_JSON(t *testing.T) {
	out, err := runCLI(t, "", "view", "-w", "pricing~usage", "--sort", "name", "--desc", "--columns", "name", "--format", "json")
	require.NoError(t, err)

	var p render.Payload
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	testutil.AssertNames(t, p.Rows, []string{"Vectara", "Pinecone Assistant", "Cohere"}, "usage-based, name desc")
	assert.Equal(t, 6, p.Total)
	assert.Len(t, p.Filters, 1)
}

func TestView_Errors(t *testing.T) {
	_, err := runCLI(t, "", "view", "--filter", "rating=5")
	assert.ErrorContains(t, err, "rating")

	_, err = runCLI(t, "", "view", "--format", "xml")
	assert.ErrorContains(t, err, "xml")

	_, err = runCLI(t, "", "view", "--columns", "name,rating")
	assert.ErrorContains(t, err, "rating")
}

func TestColumns(t *testing.T) {
	out, err := runCLI(t, "", "columns", "conn")
	require.NoError(t, err)
	assert.Contains(t, out, "[x] connectors")
	assert.Contains(t, out, "Data Connectors")
	assert.NotContains(t, out, "pricing")

	out, err = runCLI(t, "", "columns", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, `no columns match "zzz"`)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "open.csv")

	out, err := runCLI(t, "", "export", "--out", path, "--filter", "oss=yes", "--columns", "name,pricing")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 2 of 6 rows")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name,Pricing\nLlamaCloud,\"Free tier, then credits\"\nR2R,Free (self-hosted)\n", string(b))
}

func TestExport_RequiresOut(t *testing.T) {
	_, err := runCLI(t, "", "export")
	assert.Error(t, err)
}

func TestRepl(t *testing.T) {
	out, err := runCLI(t, "filter name ~ coh\napply\nexit\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to ragstable")
	assert.Contains(t, out, "Cohere")
	assert.Contains(t, out, "Showing 1 of 6 providers")
}

func TestTableDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meta.json"),
		[]byte(`{"name":"tools","columns":[{"key":"name","label":"Tool"},{"key":"lang"}]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.yaml"),
		[]byte("- name: cobra\n  lang: go\n- name: click\n  lang: python\n"), 0o644))

	out, err := runCLI(t, "", "--table-dir", dir, "view", "--filter", "lang=go")
	require.NoError(t, err)
	assert.Contains(t, out, "Tool ▲")
	assert.Contains(t, out, "cobra")
	assert.NotContains(t, out, "click")
}

func TestConfigFile_Missing(t *testing.T) {
	_, err := runCLI(t, "", "--config", filepath.Join(t.TempDir(), "nope.toml"), "columns")
	assert.Error(t, err)
}
