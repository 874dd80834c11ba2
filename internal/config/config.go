// Package config loads ragstable settings from a TOML file and the
// environment. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
	"github.com/Vec-io/RAGs.FYI/internal/query/sorting"
)

// DefaultPath is the config file read when no path is given
const DefaultPath = "ragstable.toml"

// Config is the whole configuration file
type Config struct {
	Log    LogConfig    `toml:"log"`
	Table  TableConfig  `toml:"table"`
	Server ServerConfig `toml:"server"`
}

// LogConfig configures the slog handlers
type LogConfig struct {
	Level     string `toml:"level"`  // debug, info, warn, error
	Format    string `toml:"format"` // text or json
	AddSource bool   `toml:"add_source"`
	SeqURL    string `toml:"seq_url"` // empty disables Seq
}

// TableConfig selects the table and its defaults
type TableConfig struct {
	// Dir is a table directory on disk; empty uses the embedded seed table
	Dir string `toml:"dir"`
	// StrictRows rejects rows with keys outside the column list instead of dropping them
	StrictRows       bool   `toml:"strict_rows"`
	DefaultSort      string `toml:"default_sort"`
	DefaultDirection string `toml:"default_direction"`
	// DefaultColumns are the columns visible in a new session; empty shows all
	DefaultColumns []string `toml:"default_columns"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Table: TableConfig{
			StrictRows:       true,
			DefaultSort:      "name",
			DefaultDirection: "asc",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error unless the path was given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

// applyEnv overrides settings from RAGSTABLE_* variables
func (c *Config) applyEnv() {
	if v := os.Getenv("RAGSTABLE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("RAGSTABLE_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v, ok := os.LookupEnv("RAGSTABLE_SEQ_URL"); ok {
		c.Log.SeqURL = v
	}
	if v := os.Getenv("RAGSTABLE_TABLE_DIR"); v != "" {
		c.Table.Dir = v
	}
	if v := os.Getenv("RAGSTABLE_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

// Validate checks values that would otherwise fail late
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if _, err := sorting.ParseDirection(c.Table.DefaultDirection); err != nil {
		return fmt.Errorf("table.default_direction: %w", err)
	}
	return nil
}

// DefaultSort returns the configured initial sort
func (c Config) DefaultSort() sorting.Spec {
	dir, _ := sorting.ParseDirection(c.Table.DefaultDirection)
	return sorting.Spec{Column: c.Table.DefaultSort, Direction: dir}
}

// RowPolicy maps StrictRows to a schema row policy
func (c Config) RowPolicy() schema.RowPolicy {
	if c.Table.StrictRows {
		return schema.RowPolicyStrict
	}
	return schema.RowPolicyNormalize
}
