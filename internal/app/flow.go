package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"jp-stockgen/internal/catalog"
	"jp-stockgen/internal/pipeline"
	"jp-stockgen/internal/slogx"
)

// RunFlow runs the pipeline once, and in schedule mode keeps regenerating on
// RegenCron until ctx is done. Only the first run's error is returned; later
// failures are logged and the schedule continues.
func RunFlow(ctx context.Context, cfg *Config, p *pipeline.Pipeline, cat *catalog.Catalog) error {
	if cfg.RunMode != RunSchedule {
		return runOnce(ctx, p, cat)
	}

	logger := slogx.CronLogger{L: slog.Default()}
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := c.AddFunc(cfg.RegenCron, func() {
		if err := runOnce(ctx, p, cat); err != nil {
			slog.Error("scheduled run failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("register regeneration %q: %w", cfg.RegenCron, err)
	}

	if err := runOnce(ctx, p, cat); err != nil {
		return err
	}
	c.Start()
	slog.Info("scheduler started", "cron", cfg.RegenCron)

	<-ctx.Done()
	slog.Info("shutdown requested, waiting for running generation")
	<-c.Stop().Done()
	slog.Info("scheduler stopped")
	return nil
}

func runOnce(ctx context.Context, p *pipeline.Pipeline, cat *catalog.Catalog) error {
	res, err := p.Run(ctx, cat.Instruments())
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	slog.Info("generation complete",
		"stocks", res.Summary.TotalStocks,
		"charts", res.Charts,
		"dir", p.Layout().Dir,
	)
	return nil
}
