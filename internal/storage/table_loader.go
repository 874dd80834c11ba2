package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"gopkg.in/yaml.v2"

	"github.com/Vec-io/RAGs.FYI/internal/domain/data"
	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
)

// LoadOptions controls how rows are validated while loading
type LoadOptions struct {
	Policy schema.RowPolicy
	Logger *slog.Logger
}

// LoadTableDir loads a table from a directory on disk
func LoadTableDir(dir string, opts LoadOptions) (*schema.Table, error) {
	return LoadTable(os.DirFS(dir), ".", opts)
}

// LoadTable reads dir/meta.json and then dir/data.json, falling back to
// dir/data.yaml. A table without a data file has no rows.
func LoadTable(fsys fs.FS, dir string, opts LoadOptions) (*schema.Table, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metaBytes, err := fs.ReadFile(fsys, path.Join(dir, metaFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read table meta: %w", err)
	}

	var meta TableMeta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse table meta: %w", err)
	}

	tableSchema, err := schema.NewTableSchema(meta.Name, meta.Columns)
	if err != nil {
		return nil, fmt.Errorf("invalid schema for table %s: %w", meta.Name, err)
	}

	rows, source, err := readRows(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load rows for table %s: %w", meta.Name, err)
	}

	table, err := schema.NewTable(tableSchema, rows, opts.Policy, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("table loaded",
		slog.String("table", table.Name),
		slog.String("source", source),
		slog.Int("columns", len(tableSchema.Columns)),
		slog.Int("rows", table.Len()),
	)

	return table, nil
}

func readRows(fsys fs.FS, dir string) ([]data.Row, string, error) {
	jsonPath := path.Join(dir, dataJSONFile)
	b, err := fs.ReadFile(fsys, jsonPath)
	if err == nil {
		var rows []data.Row
		if err := json.Unmarshal(b, &rows); err != nil {
			return nil, jsonPath, fmt.Errorf("failed to parse %s: %w", dataJSONFile, err)
		}
		return rows, jsonPath, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, jsonPath, err
	}

	yamlPath := path.Join(dir, dataYAMLFile)
	b, err = fs.ReadFile(fsys, yamlPath)
	if errors.Is(err, fs.ErrNotExist) {
		return []data.Row{}, "", nil
	}
	if err != nil {
		return nil, yamlPath, err
	}

	var rows []data.Row
	if err := yaml.Unmarshal(b, &rows); err != nil {
		return nil, yamlPath, fmt.Errorf("failed to parse %s: %w", dataYAMLFile, err)
	}
	return rows, yamlPath, nil
}
