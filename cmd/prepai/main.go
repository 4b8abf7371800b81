package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/kadirkilicoglu/PrepAI/internal/api"
	"github.com/kadirkilicoglu/PrepAI/internal/infrastructure/config"
	"github.com/kadirkilicoglu/PrepAI/internal/report"
	"github.com/kadirkilicoglu/PrepAI/internal/session"
	"github.com/kadirkilicoglu/PrepAI/internal/shell"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	// ── Dependencies ────────────────────────────────────────────────
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		logger.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}

	store, err := session.Open(filepath.Join(cfg.DataDir, "prepai.db"))
	if err != nil {
		logger.Error("failed to open session store", "error", err)
		os.Exit(1)
	}

	client := api.New(cfg.BackendURL, store)
	exporter := report.NewExporter(report.NewFontSource(cfg.FontURL), logger)

	app := &shell.App{
		Config:   cfg,
		Logger:   logger,
		Session:  store,
		Client:   client,
		Exporter: exporter,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	// Ctrl-C cancels the in-flight request instead of killing the process
	// mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := app.Run(ctx, os.Args[1:])

	stop()
	if err := store.Close(); err != nil {
		logger.Warn("closing session store failed", "error", err)
	}
	os.Exit(code)
}
