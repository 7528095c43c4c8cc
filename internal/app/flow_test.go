package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jp-stockgen/internal/catalog"
	"jp-stockgen/internal/generate"
	"jp-stockgen/internal/model"
	"jp-stockgen/internal/pipeline"
	"jp-stockgen/internal/recorder"
	"jp-stockgen/internal/saver"
)

func newFlowFixture(t *testing.T, mode, cronSpec string) (*Config, *catalog.Catalog) {
	t.Helper()
	cfg := &Config{
		DataDir:    t.TempDir(),
		SaveFormat: "json",
		ChartDays:  20,
		Seed:       11,
		Workers:    2,
		RunMode:    mode,
		RegenCron:  cronSpec,
	}
	cat, err := catalog.New([]model.Instrument{
		{Code: "1301", Name: "極洋", Market: model.MarketPrime},
		{Code: "7203", Name: "トヨタ自動車", Market: model.MarketPrime},
		{Code: "9984", Name: "ソフトバンクグループ", Market: model.MarketPrime},
	})
	require.NoError(t, err)
	return cfg, cat
}

func buildPipeline(cfg *Config) *pipeline.Pipeline {
	clock := generate.FixedClock{T: time.Date(2024, time.March, 14, 15, 0, 0, 0, time.UTC)}
	dp := ProvideMockProvider(cfg, clock)
	return ProvidePipeline(cfg, dp, saver.JSONSaver{}, recorder.NewNoopRecorder(), clock)
}

func TestRunFlowOnce(t *testing.T) {
	cfg, cat := newFlowFixture(t, RunOnce, defaultRegenCron)
	require.NoError(t, RunFlow(context.Background(), cfg, buildPipeline(cfg), cat))

	for _, p := range []string{"all_stocks.json", "summary.json", "charts/1301.json", "charts/7203.json", "charts/9984.json"} {
		assert.FileExists(t, filepath.Join(cfg.DataDir, filepath.FromSlash(p)))
	}
}

func TestRunFlowScheduleStopsOnCancel(t *testing.T) {
	cfg, cat := newFlowFixture(t, RunSchedule, "*/1 * * * * *")
	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- RunFlow(ctx, cfg, buildPipeline(cfg), cat) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("RunFlow did not return after context cancellation")
	}
	assert.FileExists(t, filepath.Join(cfg.DataDir, "summary.json"))
}

func TestRunFlowRejectsBadCron(t *testing.T) {
	cfg, cat := newFlowFixture(t, RunSchedule, "every day")
	err := RunFlow(context.Background(), cfg, buildPipeline(cfg), cat)
	assert.ErrorContains(t, err, "register regeneration")
	assert.NoFileExists(t, filepath.Join(cfg.DataDir, "summary.json"))
}

func TestRunFlowPropagatesFirstRunError(t *testing.T) {
	cfg, cat := newFlowFixture(t, RunOnce, defaultRegenCron)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunFlow(ctx, cfg, buildPipeline(cfg), cat)
	assert.ErrorIs(t, err, context.Canceled)
}
