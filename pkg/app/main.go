package app

import (
	"io"

	"github.com/ghuser/namesort/pkg/config"
	"github.com/ghuser/namesort/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to the CLI constructor during start-up.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and run_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "names sorted", "count", n)
//	app.Logger.ErrorContext(ctx, "sort failed", "error", err)
//
// Stdin and Stdout are the user's console; logs never go there.
type Application struct {
	Config *config.Config
	Logger logger.Logger
	Stdin  io.Reader
	Stdout io.Writer
}
