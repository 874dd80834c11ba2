package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Vec-io/RAGs.FYI/databases"
	"github.com/Vec-io/RAGs.FYI/internal/config"
	"github.com/Vec-io/RAGs.FYI/internal/domain/errors"
	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
	"github.com/Vec-io/RAGs.FYI/internal/engine"
	"github.com/Vec-io/RAGs.FYI/internal/logging"
	"github.com/Vec-io/RAGs.FYI/internal/network"
	"github.com/Vec-io/RAGs.FYI/internal/query/filter"
	"github.com/Vec-io/RAGs.FYI/internal/query/pipeline"
	"github.com/Vec-io/RAGs.FYI/internal/query/projection"
	"github.com/Vec-io/RAGs.FYI/internal/query/sorting"
	"github.com/Vec-io/RAGs.FYI/internal/render"
	"github.com/Vec-io/RAGs.FYI/internal/repl"
	"github.com/Vec-io/RAGs.FYI/internal/storage"
	"github.com/Vec-io/RAGs.FYI/internal/storage/writer"
	"github.com/Vec-io/RAGs.FYI/internal/view"
)

// app is everything a command needs once config, logging and the table are loaded
type app struct {
	cfg    config.Config
	logger *slog.Logger
	engine *engine.Engine
}

// withApp loads the app for global, runs fn and flushes the logger
func withApp(global globalOptions, fn func(a *app) error) error {
	cfg, err := config.Load(global.configPath)
	if err != nil {
		return err
	}
	if global.tableDir != "" {
		cfg.Table.Dir = global.tableDir
	}
	if global.logLevel != "" {
		cfg.Log.Level = global.logLevel
	}

	logger, closeFn := logging.SetupLogger(cfg.Log)
	defer closeFn()
	slog.SetDefault(logger)

	table, err := loadTable(cfg, logger)
	if err != nil {
		logger.Error("failed to load table", "error", err)
		return err
	}

	eng := engine.New(table, engine.Options{
		DefaultSort:    cfg.DefaultSort(),
		DefaultColumns: cfg.Table.DefaultColumns,
		Logger:         logger,
	})
	eng.AddObserver(engine.NewLoggingObserver(logger))

	return fn(&app{cfg: cfg, logger: logger, engine: eng})
}

// loadTable reads the configured table directory, or the built-in table when none is set
func loadTable(cfg config.Config, logger *slog.Logger) (*schema.Table, error) {
	opts := storage.LoadOptions{Policy: cfg.RowPolicy(), Logger: logger}
	if cfg.Table.Dir != "" {
		return storage.LoadTableDir(cfg.Table.Dir, opts)
	}
	return storage.LoadTable(databases.Content, databases.DefaultTable, opts)
}

// parseFilterExpr parses column=value, column!=value, column~value or column!~value
func parseFilterExpr(expr string) (filter.Filter, error) {
	i := strings.IndexAny(expr, "=~")
	if i < 0 {
		return filter.Filter{}, errors.NewInvalidInput("filter", expr, "expected column=value, column!=value, column~value or column!~value")
	}
	column, op := expr[:i], expr[i:i+1]
	if strings.HasSuffix(column, "!") {
		column, op = column[:len(column)-1], "!"+op
	}
	column = strings.TrimSpace(column)
	if column == "" {
		return filter.Filter{}, errors.NewInvalidInput("filter", expr, "missing column")
	}
	kind, err := filter.ParseKind(op)
	if err != nil {
		return filter.Filter{}, err
	}
	return filter.Filter{Column: column, Kind: kind, Value: expr[i+1:]}, nil
}

// applyViewOptions drives a session through the actions opts describes
// and returns the committed view
func applyViewOptions(s *engine.Session, opts viewOptions) (pipeline.Result, error) {
	for _, expr := range opts.filters {
		f, err := parseFilterExpr(expr)
		if err != nil {
			return pipeline.Result{}, err
		}
		if err := s.SetFilter(f.Column, f.Kind, f.Value); err != nil {
			return pipeline.Result{}, err
		}
	}

	if opts.sort != "" || opts.desc {
		column := opts.sort
		if column == "" {
			column = s.State().Sort.Column
		}
		if column == "" {
			return pipeline.Result{}, errors.NewInvalidInput("sort", "", "--desc needs a sort column")
		}
		dir := sorting.Ascending
		if opts.desc {
			dir = sorting.Descending
		}
		if _, err := s.Dispatch(view.SetSortDirection{Column: column, Direction: dir}); err != nil {
			return pipeline.Result{}, err
		}
	}

	if len(opts.columns) > 0 {
		if err := s.SetColumnSelection(opts.columns); err != nil {
			return pipeline.Result{}, err
		}
	}

	return s.CommitFilters(), nil
}

func runView(out io.Writer, a *app, opts viewOptions, format outputFormat) error {
	s := a.engine.NewSession()
	defer a.engine.CloseSession(s.ID)

	result, err := applyViewOptions(s, opts)
	if err != nil {
		return err
	}

	state := s.State()
	if format == outputFormatJSON {
		return render.JSON(out, render.NewPayload(result, state.Sort, state.Active))
	}
	return render.Table(out, result, state.Sort)
}

func runColumns(out io.Writer, a *app, query string) error {
	columns := a.engine.Table().Schema.Columns
	matches := projection.SearchColumns(columns, query)
	if len(matches) == 0 {
		_, err := fmt.Fprintf(out, "no columns match %q\n", query)
		return err
	}
	return render.Columns(out, matches, a.engine.InitialState().Selection)
}

func runExport(out io.Writer, a *app, opts viewOptions, path, formatStr string) error {
	format := writer.FormatForPath(path)
	if formatStr != "" {
		f, err := writer.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		format = f
	}

	s := a.engine.NewSession()
	defer a.engine.CloseSession(s.ID)

	result, err := applyViewOptions(s, opts)
	if err != nil {
		return err
	}
	if err := writer.ExportView(path, result, format); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "wrote %d of %d rows to %s\n", len(result.Rows), result.Total, path)
	return err
}

func runRepl(in io.Reader, out io.Writer, a *app) error {
	s := a.engine.NewSession()
	defer a.engine.CloseSession(s.ID)

	repl.Start(in, out, s)
	return nil
}

func runServe(ctx context.Context, a *app, addr string) error {
	if addr == "" {
		addr = a.cfg.Server.Addr
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return network.Start(ctx, addr, a.engine, a.logger)
}
