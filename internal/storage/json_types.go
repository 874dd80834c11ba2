package storage

import "github.com/Vec-io/RAGs.FYI/internal/domain/schema"

// TableMeta is the content of meta.json
type TableMeta struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Columns     []schema.Column `json:"columns" yaml:"columns"`
}

const (
	metaFile     = "meta.json"
	dataJSONFile = "data.json"
	dataYAMLFile = "data.yaml"
)
