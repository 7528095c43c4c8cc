package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// writeCharts saves every job with at most Workers concurrent writers.
// The first failure cancels the writes that have not started yet.
func (p *Pipeline) writeCharts(ctx context.Context, jobs []chartJob, logger *slog.Logger) ([]string, error) {
	ext := p.saver.Extension()
	paths := make([]string, len(jobs))
	var done atomic.Int64

	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	if p.opts.Heartbeat > 0 {
		go runHeartbeat(hbCtx, p.opts.Heartbeat, len(jobs), &done, logger)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := p.layout.ChartPath(job.Code, ext)
			if err := p.saver.SaveChart(job.Series, path); err != nil {
				return fmt.Errorf("save chart %s: %w", job.Code, err)
			}
			paths[i] = path
			done.Add(1)
			logger.Debug("chart saved", "code", job.Code, "bars", len(job.Series), "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("chart write-out aborted", "done", done.Load(), "total", len(jobs), "error", err)
		return nil, err
	}
	logger.Info("charts saved", "count", len(jobs), "dir", p.layout.ChartDir())
	return paths, nil
}
