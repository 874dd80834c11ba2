// Package databases embeds the seed tables shipped with the binary.
package databases

import "embed"

// Content holds one directory per table (meta.json + data.json or data.yaml)
//
//go:embed providers
var Content embed.FS

// DefaultTable is the directory name of the table served when none is configured
const DefaultTable = "providers"
