package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/gometar/gometar/internal/archive"
	"github.com/gometar/gometar/internal/config"
	"github.com/gometar/gometar/internal/observability"
	"github.com/gometar/gometar/internal/server"
)

const serveUsage = `gometar serve - Run the HTTP decode service

Usage:
  gometar serve [options]

The service is configured through the environment (a .env file in the
working directory is loaded first):

  HTTP_ADDR         Listen address (default :8080)
  LOG_LEVEL         trace, debug, info, warn or error (default info)
  LOG_FORMAT        json or text (default json)
  GROUP_LIMIT       Maximum tokens decoded per report (default 100)
  MAX_BODY_BYTES    Maximum request body size (default 65536)
  SHUTDOWN_TIMEOUT  Graceful shutdown timeout (default 10s)
  ARCHIVE_PATH      SQLite database for decoded reports (disabled if unset)

Options:
  --env FILE   Load variables from FILE instead of .env
  -h, --help   Show help

Endpoints:
  POST /decode              Decode the reports in the request body
  GET  /reports/{location}  Latest archived reports for a location
  GET  /healthz             Liveness
  GET  /readyz              Readiness
  GET  /metrics             Prometheus metrics
`

func (c *cli) cmdServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() { fmt.Fprint(c.stderr, serveUsage) }

	envFile := fs.String("env", "", "env file")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(c.stdout, serveUsage)
		return exitOK
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		c.printError("failed to load config: %v", err)
		return exitError
	}
	if c.verbose >= 2 {
		cfg.LogLevel = "trace"
	} else if c.verbose == 1 {
		cfg.LogLevel = "debug"
	}

	logger, err := observability.NewLogger(c.stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		c.printError("%v", err)
		return exitError
	}
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := server.Options{
		Addr:         cfg.HTTPAddr,
		GroupLimit:   cfg.GroupLimit,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Clock:        clockwork.NewRealClock(),
		Metrics:      metrics,
		Logger:       logger,
	}
	var db *archive.DB
	if cfg.ArchivePath != "" {
		db, err = archive.Open(ctx, cfg.ArchivePath)
		if err != nil {
			logger.Error("failed to open archive", "path", cfg.ArchivePath, "error", err)
			return exitError
		}
		opts.Archive = db
		logger.Info("archive enabled", "path", cfg.ArchivePath)
	} else {
		logger.Info("archive disabled")
	}

	srv := server.NewServer(opts)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	exit := exitOK
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			logger.Error("http server error", "error", err)
			exit = exitError
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("archive close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
	return exit
}
