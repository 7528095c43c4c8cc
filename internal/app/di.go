package app

import (
	"log/slog"
	"time"

	"jp-stockgen/internal/catalog"
	"jp-stockgen/internal/generate"
	"jp-stockgen/internal/pipeline"
	"jp-stockgen/internal/provider"
	"jp-stockgen/internal/recorder"
	"jp-stockgen/internal/saver"
)

const heartbeatInterval = 5 * time.Second

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideSaver creates Saver from config (for Wire).
// Returns error if SaveFormat is not supported.
func ProvideSaver(cfg *Config) (saver.Saver, error) {
	return CreateSaver(cfg)
}

// ProvideCatalog loads the instrument catalog (for Wire).
func ProvideCatalog(cfg *Config) (*catalog.Catalog, error) {
	return LoadCatalog(cfg)
}

// ProvideClock returns the wall clock (for Wire).
func ProvideClock() generate.Clock {
	return generate.SystemClock{}
}

// ProvideMockProvider creates the generator-backed provider seeded from config (for Wire).
// Caller must call Close when shutting down.
func ProvideMockProvider(cfg *Config, clock generate.Clock) *provider.MockProvider {
	slog.Info("seed", "value", cfg.Seed, "from_env", cfg.SeedFromEnv)
	return provider.NewMockProvider(generate.NewSeeded(cfg.Seed, clock))
}

// ProvideRecorder opens the recorder; the cleanup closes it (for Wire).
func ProvideRecorder(cfg *Config) (recorder.Recorder, func(), error) {
	r, err := OpenRecorder(cfg)
	if err != nil {
		return nil, nil, err
	}
	return r, func() {
		if err := r.Close(); err != nil {
			slog.Warn("close recorder", "error", err)
		}
	}, nil
}

// ProvidePipeline assembles the pipeline from config and its collaborators (for Wire).
func ProvidePipeline(cfg *Config, dp provider.DataProvider, s saver.Saver, rec recorder.Recorder, clock generate.Clock) *pipeline.Pipeline {
	return pipeline.New(pipeline.Options{
		DataDir:   cfg.DataDir,
		ChartDays: cfg.ChartDays,
		Workers:   cfg.Workers,
		Seed:      cfg.Seed,
		Heartbeat: heartbeatInterval,
	}, dp, s, rec, clock)
}
