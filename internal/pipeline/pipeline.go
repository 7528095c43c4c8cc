// Package pipeline runs one generation: snapshots, summary, chart series, write-out.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"jp-stockgen/internal/generate"
	"jp-stockgen/internal/model"
	"jp-stockgen/internal/provider"
	"jp-stockgen/internal/recorder"
	"jp-stockgen/internal/saver"
)

// Options tune one pipeline.
type Options struct {
	DataDir   string
	ChartDays int
	Workers   int
	Seed      int64         // recorded in the manifest only
	Heartbeat time.Duration // <= 0 disables the write-out heartbeat
}

// Layout resolves output paths under a data directory.
type Layout struct {
	Dir string
}

// ListingPath returns data/all_stocks.{ext}
func (l Layout) ListingPath(ext string) string {
	return filepath.Join(l.Dir, "all_stocks."+ext)
}

// ChartDir returns data/charts
func (l Layout) ChartDir() string {
	return filepath.Join(l.Dir, "charts")
}

// ChartPath returns data/charts/{code}.{ext}
func (l Layout) ChartPath(code, ext string) string {
	return filepath.Join(l.ChartDir(), code+"."+ext)
}

// SummaryPath returns data/summary.json
func (l Layout) SummaryPath() string {
	return filepath.Join(l.Dir, "summary.json")
}

// ManifestPath returns data/.lastrun.manifest.json
func (l Layout) ManifestPath() string {
	return filepath.Join(l.Dir, ".lastrun.manifest.json")
}

// Pipeline wires a data provider to a saver and an optional recorder.
type Pipeline struct {
	opts     Options
	layout   Layout
	provider provider.DataProvider
	saver    saver.Saver
	recorder recorder.Recorder
	clock    generate.Clock
}

// New creates a Pipeline. A nil recorder records nothing; a nil clock reads the wall clock.
func New(opts Options, dp provider.DataProvider, s saver.Saver, rec recorder.Recorder, clock generate.Clock) *Pipeline {
	if opts.ChartDays == 0 {
		opts.ChartDays = generate.DefaultChartDays
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if clock == nil {
		clock = generate.SystemClock{}
	}
	return &Pipeline{
		opts:     opts,
		layout:   Layout{Dir: opts.DataDir},
		provider: dp,
		saver:    s,
		recorder: rec,
		clock:    clock,
	}
}

// Layout returns the output layout of p.
func (p *Pipeline) Layout() Layout { return p.layout }

// Result describes a completed run.
type Result struct {
	Snapshots []model.Snapshot
	Summary   model.Summary
	Charts    int // chart files written
	Manifest  Manifest
}

type chartJob struct {
	Code   string
	Series model.ChartSeries
}

// Run generates data for instruments and writes it under DataDir.
// Any generation or file error aborts the run; files already written stay in place.
func (p *Pipeline) Run(ctx context.Context, instruments []model.Instrument) (*Result, error) {
	runID := uuid.NewString()
	startedAt := p.clock.Now()
	logger := slog.With("run_id", runID)
	ext := p.saver.Extension()
	logger.Info("run start", "instruments", len(instruments), "seed", p.opts.Seed, "format", ext, "dir", p.layout.Dir)

	snapshots := make([]model.Snapshot, 0, len(instruments))
	for _, inst := range instruments {
		s, err := p.provider.Snapshot(inst)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", inst.Code, err)
		}
		snapshots = append(snapshots, s)
	}
	summary := generate.Summarize(snapshots, p.provider.GetName(), p.clock.Now())
	logger.Info("snapshots generated", "count", len(snapshots), "markets", summary.Markets)

	jobs := make([]chartJob, 0, len(instruments))
	for _, inst := range instruments {
		series, err := p.provider.Chart(inst.Code, p.opts.ChartDays)
		if err != nil {
			return nil, fmt.Errorf("chart %s: %w", inst.Code, err)
		}
		jobs = append(jobs, chartJob{Code: inst.Code, Series: series})
	}
	if kept := lastPerCode(jobs); len(kept) < len(jobs) {
		logger.Warn("duplicate codes, later catalog entry wins", "series", len(jobs), "files", len(kept))
		jobs = kept
	}
	logger.Info("chart series generated", "count", len(jobs), "days", p.opts.ChartDays)

	if err := os.MkdirAll(p.layout.ChartDir(), 0755); err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}

	written := make([]string, 0, len(jobs)+2)
	listing := p.layout.ListingPath(ext)
	if err := p.saver.SaveSnapshots(snapshots, listing); err != nil {
		return nil, fmt.Errorf("save listing: %w", err)
	}
	written = append(written, listing)
	logger.Info("listing saved", "path", listing, "count", len(snapshots))

	chartPaths, err := p.writeCharts(ctx, jobs, logger)
	if err != nil {
		return nil, err
	}
	written = append(written, chartPaths...)

	summaryPath := p.layout.SummaryPath()
	if err := saver.WriteJSON(summaryPath, summary); err != nil {
		return nil, fmt.Errorf("save summary: %w", err)
	}
	written = append(written, summaryPath)
	logger.Info("summary saved", "path", summaryPath, "total", summary.TotalStocks)

	p.record(snapshots, jobs, summary, logger)

	files, err := describeFiles(p.layout.Dir, written)
	if err != nil {
		return nil, fmt.Errorf("describe output: %w", err)
	}
	manifest := Manifest{
		RunID:     runID,
		StartedAt: startedAt.Format(time.RFC3339Nano),
		Seed:      p.opts.Seed,
		Format:    ext,
		Files:     files,
	}
	if err := saver.WriteJSON(p.layout.ManifestPath(), manifest); err != nil {
		return nil, fmt.Errorf("save manifest: %w", err)
	}

	logger.Info("run done", "snapshots", len(snapshots), "charts", len(jobs), "files", len(files))
	return &Result{
		Snapshots: snapshots,
		Summary:   summary,
		Charts:    len(chartPaths),
		Manifest:  manifest,
	}, nil
}

// record mirrors the run into the recorder. Failures are logged, never returned:
// the files on disk are the output of a run.
func (p *Pipeline) record(snapshots []model.Snapshot, jobs []chartJob, summary model.Summary, logger *slog.Logger) {
	if err := p.recorder.RecordSnapshots(snapshots); err != nil {
		logger.Error("record snapshots", "error", err)
	}
	for _, j := range jobs {
		if err := p.recorder.RecordChart(j.Code, j.Series); err != nil {
			logger.Error("record chart", "code", j.Code, "error", err)
		}
	}
	if err := p.recorder.RecordSummary(summary); err != nil {
		logger.Error("record summary", "error", err)
	}
}

// lastPerCode keeps only the last job of each code, preserving catalog order.
func lastPerCode(jobs []chartJob) []chartJob {
	last := make(map[string]int, len(jobs))
	for i, j := range jobs {
		last[j.Code] = i
	}
	if len(last) == len(jobs) {
		return jobs
	}
	kept := make([]chartJob, 0, len(last))
	for i, j := range jobs {
		if last[j.Code] == i {
			kept = append(kept, j)
		}
	}
	return kept
}
