package main

import (
	"log/slog"
	"os"

	"github.com/Vec-io/RAGs.FYI/databases"
	"github.com/Vec-io/RAGs.FYI/internal/config"
	"github.com/Vec-io/RAGs.FYI/internal/engine"
	"github.com/Vec-io/RAGs.FYI/internal/logging"
	"github.com/Vec-io/RAGs.FYI/internal/query/filter"
	"github.com/Vec-io/RAGs.FYI/internal/render"
	"github.com/Vec-io/RAGs.FYI/internal/storage"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, closeFn := logging.SetupLogger(cfg.Log)
	defer closeFn()
	slog.SetDefault(logger)

	logger.Info("Starting application...")

	// 1. Load the built-in table
	table, err := storage.LoadTable(databases.Content, databases.DefaultTable, storage.LoadOptions{
		Policy: cfg.RowPolicy(),
		Logger: logger,
	})
	if err != nil {
		logger.Error("failed to load table", "error", err)
		closeFn()
		os.Exit(1)
	}

	// 2. Open a session
	eng := engine.New(table, engine.Options{
		DefaultSort:    cfg.DefaultSort(),
		DefaultColumns: cfg.Table.DefaultColumns,
		Logger:         logger,
	})
	eng.AddObserver(engine.NewLoggingObserver(logger))
	session := eng.NewSession()
	defer eng.CloseSession(session.ID)

	initial := session.View()
	logger.Info("initial view", "rows", len(initial.Rows), "message", initial.Message())

	// 3. Stage a filter; the view must not change until commit
	if err := session.SetFilter("oss", filter.KindEquals, "yes"); err != nil {
		logger.Error("failed to stage filter", "error", err)
		closeFn()
		os.Exit(1)
	}
	logger.Info("filter staged", "dirty", session.State().Dirty(), "rows", len(session.View().Rows))

	// 4. Commit and sort
	committed := session.CommitFilters()
	logger.Info("filters committed", "rows", len(committed.Rows), "message", committed.Message())

	if err := session.SetSort("name"); err != nil {
		logger.Error("failed to sort", "error", err)
		closeFn()
		os.Exit(1)
	}

	// 5. Hide a column and print
	if err := session.ToggleColumn("connectors"); err != nil {
		logger.Error("failed to toggle column", "error", err)
		closeFn()
		os.Exit(1)
	}
	if err := render.Table(os.Stdout, session.View(), session.State().Sort); err != nil {
		logger.Error("failed to render view", "error", err)
	}

	logger.Info("Application ready", "sessions", eng.SessionCount())
}
