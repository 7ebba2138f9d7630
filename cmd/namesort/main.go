package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ghuser/namesort/pkg/app"
	"github.com/ghuser/namesort/pkg/config"
	"github.com/ghuser/namesort/pkg/logger"
	"github.com/ghuser/namesort/pkg/telemetry"
	"github.com/ghuser/namesort/services/names/application/cli"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Failures of a sort run are reported to
// the user by the command itself and still exit 0; only start-up problems
// and command-line misuse exit 1.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		return 1
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Telemetry: OTel tracing + metrics
	otelShutdown, registry, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			log.Warn("otel shutdown", "error", err)
		}
	}()

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	appConfig := &app.Application{
		Config: cfg,
		Logger: log,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	root := cli.NewRootCommand(appConfig)
	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}

	if cfg.MetricsTextfile != "" {
		if err := telemetry.WriteMetrics(cfg.MetricsTextfile, registry); err != nil {
			log.Warn("failed to write metrics", "path", cfg.MetricsTextfile, "error", err)
		}
	}

	return 0
}
