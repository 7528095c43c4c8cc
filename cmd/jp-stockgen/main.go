package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"jp-stockgen/internal/app"
	"jp-stockgen/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.Default)
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return 1
	}
	defer cleanup()

	defer a.DP.Close()

	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel, cfg.LogFormat))
	slog.Info("using data provider", "provider", a.DP.GetName())
	slog.Info("catalog", "instruments", a.Catalog.Len(), "file", cfg.CatalogFile)
	slog.Info("save dir", "dir", cfg.DataDir, "format", cfg.SaveFormat, "mode", cfg.RunMode)

	if err := app.RunFlow(ctx, cfg, a.Pipeline, a.Catalog); err != nil {
		slog.Error("generation failed", "error", err)
		return 1
	}
	return 0
}
