package writer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/Vec-io/RAGs.FYI/internal/domain/data"
	"github.com/Vec-io/RAGs.FYI/internal/domain/errors"
	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
	"github.com/Vec-io/RAGs.FYI/internal/query/pipeline"
	"github.com/Vec-io/RAGs.FYI/internal/query/projection"
)

// Format is an export file format
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat maps a flag value or file extension to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", errors.NewInvalidInput("export format", s, "expected json or csv")
}

// FormatForPath picks a format from the file extension, defaulting to JSON
func FormatForPath(path string) Format {
	if f, err := ParseFormat(filepath.Ext(path)); err == nil {
		return f
	}
	return FormatJSON
}

// exportDoc is the JSON export layout
type exportDoc struct {
	Columns []schema.Column `json:"columns"`
	Rows    []data.Row      `json:"rows"`
	Total   int             `json:"total"`
}

// ExportView writes the visible part of result to path.
// The file is replaced atomically so readers never see a partial export.
func ExportView(path string, result pipeline.Result, format Format) error {
	var buf bytes.Buffer

	switch format {
	case FormatJSON:
		doc := exportDoc{
			Columns: result.Columns,
			Rows:    make([]data.Row, len(result.Rows)),
			Total:   result.Total,
		}
		for i, row := range result.Rows {
			doc.Rows[i] = projection.ProjectRow(row, result.Columns)
		}
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal view: %w", err)
		}

	case FormatCSV:
		w := csv.NewWriter(&buf)
		header := make([]string, len(result.Columns))
		for i, col := range result.Columns {
			header[i] = col.Label
		}
		if err := w.Write(header); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}
		for _, row := range result.Rows {
			record := make([]string, len(result.Columns))
			for i, col := range result.Columns {
				record[i] = row.Get(col.Key)
			}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("failed to flush csv: %w", err)
		}

	default:
		return errors.NewInvalidInput("export format", string(format), "expected json or csv")
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write export %s: %w", path, err)
	}

	slog.Info("view exported",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("rows", len(result.Rows)),
		slog.Int("columns", len(result.Columns)),
	)
	return nil
}
