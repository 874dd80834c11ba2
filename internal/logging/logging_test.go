package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vec-io/RAGs.FYI/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewConsoleHandler_Format(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(NewConsoleHandler(&buf, config.LogConfig{Level: "info", Format: "json"}))
	logger.Info("table loaded", "rows", 2)

	assert.Contains(t, buf.String(), `"msg":"table loaded"`)
	assert.Contains(t, buf.String(), `"rows":2`)
}

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	multi := &multiHandler{handlers: []slog.Handler{
		NewConsoleHandler(&debugBuf, config.LogConfig{Level: "debug"}),
		NewConsoleHandler(&warnBuf, config.LogConfig{Level: "warn"}),
	}}
	logger := slog.New(multi).With("session_id", "abc")

	logger.Debug("dispatch")
	logger.Warn("dropping unknown columns")

	assert.Contains(t, debugBuf.String(), "dispatch")
	assert.Contains(t, debugBuf.String(), "session_id=abc")
	assert.NotContains(t, warnBuf.String(), "dispatch")
	assert.Contains(t, warnBuf.String(), "dropping unknown columns")
	assert.True(t, multi.Enabled(context.Background(), slog.LevelDebug))
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	logger, closeFn := SetupLogger(config.LogConfig{Level: "info", Format: "text"})
	require.NotNil(t, logger)
	closeFn()

	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
