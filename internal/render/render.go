// Package render draws pipeline results for terminals and JSON clients.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Vec-io/RAGs.FYI/internal/domain/data"
	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
	"github.com/Vec-io/RAGs.FYI/internal/query/filter"
	"github.com/Vec-io/RAGs.FYI/internal/query/pipeline"
	"github.com/Vec-io/RAGs.FYI/internal/query/projection"
	"github.com/Vec-io/RAGs.FYI/internal/query/sorting"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Payload is the JSON shape of a rendered view
type Payload struct {
	Columns []schema.Column `json:"columns"`
	Rows    []data.Row      `json:"rows"`
	Total   int             `json:"total"`
	Count   int             `json:"count"`
	Empty   bool            `json:"empty"`
	Message string          `json:"message"`
	Sort    sorting.Spec    `json:"sort"`
	Filters []filter.Filter `json:"filters"`
}

// NewPayload builds a payload holding only the visible columns of each row
func NewPayload(result pipeline.Result, sort sorting.Spec, filters filter.Set) Payload {
	rows := make([]data.Row, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = projection.ProjectRow(row, result.Columns)
	}
	fs := filters.Filters()
	if fs == nil {
		fs = []filter.Filter{}
	}
	return Payload{
		Columns: result.Columns,
		Rows:    rows,
		Total:   result.Total,
		Count:   len(result.Rows),
		Empty:   result.Empty(),
		Message: result.Message(),
		Sort:    sort,
		Filters: fs,
	}
}

// JSON writes the payload as indented JSON
func JSON(w io.Writer, p Payload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// Table writes result as a bordered table followed by the status line.
// Only the active sort column carries a direction marker.
func Table(w io.Writer, result pipeline.Result, sort sorting.Spec) error {
	if len(result.Columns) == 0 {
		_, err := fmt.Fprintf(w, "%s\n%s\n", dimStyle.Render("(no columns selected)"), result.Message())
		return err
	}

	headers := make([]string, len(result.Columns))
	for i, col := range result.Columns {
		headers[i] = col.Label + sortMarker(col.Key, sort)
	}

	rows := make([][]string, len(result.Rows))
	for i, row := range result.Rows {
		cells := make([]string, len(result.Columns))
		for j, col := range result.Columns {
			cells[j] = row.Get(col.Key)
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.String(), result.Message())
	return err
}

// Filters writes one line per filter, or "(none)"
func Filters(w io.Writer, title string, set filter.Set) error {
	var b strings.Builder
	b.WriteString(title + ":\n")
	if set.Len() == 0 {
		b.WriteString("  (none)\n")
	}
	for _, f := range set.Filters() {
		fmt.Fprintf(&b, "  %s %s %q\n", f.Column, f.Kind, f.Value)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Columns writes the column picker list, marking visible columns
func Columns(w io.Writer, columns []schema.Column, selection projection.Selection) error {
	var b strings.Builder
	for _, col := range columns {
		mark := "[ ]"
		if selection.Has(col.Key) {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s %-12s %s\n", mark, col.Key, col.Label)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func sortMarker(key string, sort sorting.Spec) string {
	if sort.Column != key {
		return ""
	}
	if sort.Direction == sorting.Descending {
		return " ▼"
	}
	return " ▲"
}
