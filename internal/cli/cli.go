// Package cli implements the command-line interface of ragstable.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vec-io/RAGs.FYI/internal/domain/errors"
)

// outputFormat selects how a view is printed
type outputFormat int

const (
	outputFormatTable outputFormat = iota
	outputFormatJSON
)

// parseOutputFormat takes "table" or "json" and returns an
// outputFormat enum value.
func parseOutputFormat(formatStr string) (outputFormat, error) {
	switch formatStr {
	case "table":
		return outputFormatTable, nil
	case "json":
		return outputFormatJSON, nil
	default:
		return 0, errors.NewInvalidInput("format", formatStr, `must be "table" or "json"`)
	}
}

// version is set at build time to a Git tag or the string
// "development version" when not tagging a release.
var version = "development version"

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath string
	tableDir   string
	logLevel   string
}

// viewOptions are the flags that shape a view before it is printed or exported
type viewOptions struct {
	filters []string
	sort    string
	desc    bool
	columns []string
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	var global globalOptions
	var formatStr string
	var addr string
	var outPath string
	var exportFormat string

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "ragstable",
		Short:         "Filter, sort and project a table of RAG providers",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(`ragstable {{.Version}}` + "\n")
	rootCmd.PersistentFlags().StringVarP(
		&global.configPath, "config", "c", "", "config file (default ragstable.toml if present)",
	)
	rootCmd.PersistentFlags().StringVar(
		&global.tableDir, "table-dir", "", "load the table from this directory instead of the built-in one",
	)
	rootCmd.PersistentFlags().StringVar(
		&global.logLevel, "log-level", "", "log level (debug, info, warn, error)",
	)

	var viewOpts viewOptions
	addViewFlags := func(cmd *cobra.Command) {
		cmd.Flags().SortFlags = false
		cmd.Flags().StringArrayVarP(
			&viewOpts.filters, "filter", "w", nil,
			"filter as column=value, column!=value, column~value or column!~value (repeatable)",
		)
		cmd.Flags().StringVarP(&viewOpts.sort, "sort", "s", "", "sort by column")
		cmd.Flags().BoolVar(&viewOpts.desc, "desc", false, "sort descending")
		cmd.Flags().StringSliceVar(&viewOpts.columns, "columns", nil, "visible columns (comma-separated)")
	}

	cmdView := &cobra.Command{
		Use:   "view",
		Short: "Print the table after filtering, sorting and column selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(formatStr)
			if err != nil {
				return err
			}
			return withApp(global, func(a *app) error {
				return runView(cmd.OutOrStdout(), a, viewOpts, format)
			})
		},
	}
	addViewFlags(cmdView)
	cmdView.Flags().StringVarP(
		&formatStr, "format", "f", "table", `output format ("table" or "json")`,
	)
	rootCmd.AddCommand(cmdView)

	cmdColumns := &cobra.Command{
		Use:   "columns [QUERY]",
		Short: "List columns, optionally matching QUERY",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return withApp(global, func(a *app) error {
				return runColumns(cmd.OutOrStdout(), a, query)
			})
		},
	}
	rootCmd.AddCommand(cmdColumns)

	cmdExport := &cobra.Command{
		Use:   "export",
		Short: "Write the visible rows to a JSON or CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(global, func(a *app) error {
				return runExport(cmd.OutOrStdout(), a, viewOpts, outPath, exportFormat)
			})
		},
	}
	addViewFlags(cmdExport)
	cmdExport.Flags().StringVarP(&outPath, "out", "o", "", "output file")
	cmdExport.Flags().StringVarP(
		&exportFormat, "format", "f", "", `file format ("json" or "csv"; default from the file extension)`,
	)
	_ = cmdExport.MarkFlagRequired("out")
	rootCmd.AddCommand(cmdExport)

	cmdRepl := &cobra.Command{
		Use:   "repl",
		Short: "Edit a view interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(global, func(a *app) error {
				return runRepl(cmd.InOrStdin(), cmd.OutOrStdout(), a)
			})
		},
	}
	rootCmd.AddCommand(cmdRepl)

	cmdServe := &cobra.Command{
		Use:   "serve",
		Short: "Serve view sessions over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(global, func(a *app) error {
				return runServe(cmd.Context(), a, addr)
			})
		},
	}
	cmdServe.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	rootCmd.AddCommand(cmdServe)

	return rootCmd
}

// DoCLI reads the command-line arguments and runs the appropriate
// code, then exits the process (or returns to indicate normal exit).
func DoCLI() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
