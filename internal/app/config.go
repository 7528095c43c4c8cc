package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"jp-stockgen/internal/generate"
)

// Run modes.
const (
	RunOnce     = "once"
	RunSchedule = "schedule"
)

const defaultRegenCron = "0 30 0 * * 1-5"

// Config holds application configuration from env
type Config struct {
	DataDir     string
	SaveFormat  string
	CatalogFile string // empty → embedded catalog
	ChartDays   int
	Seed        int64
	SeedFromEnv bool
	Workers     int
	LogLevel    string // debug | info | warn | error
	LogFormat   string // text | json
	SQLitePath  string // empty → no recorder
	RunMode     string // once | schedule
	RegenCron   string // cron spec with seconds field
}

// LoadConfig reads config from environment, after loading .env if one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		DataDir:     getEnv("DATA_DIR", "data"),
		SaveFormat:  strings.ToLower(getEnv("SAVE_FORMAT", "json")),
		CatalogFile: os.Getenv("CATALOG_FILE"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		SQLitePath:  os.Getenv("SQLITE_PATH"),
		RunMode:     strings.ToLower(getEnv("RUN_MODE", RunOnce)),
		RegenCron:   getEnv("REGEN_CRON", defaultRegenCron),
	}

	var err error
	if cfg.ChartDays, err = getEnvAsInt("CHART_DAYS", generate.DefaultChartDays); err != nil {
		return nil, err
	}
	if cfg.Workers, err = getEnvAsInt("WORKERS", 4); err != nil {
		return nil, err
	}
	if s := os.Getenv("SEED"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for SEED: expected an integer, got '%s'", s)
		}
		cfg.Seed, cfg.SeedFromEnv = v, true
	} else {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.ChartDays < 1 {
		return fmt.Errorf("CHART_DAYS must be at least 1, got %d", c.ChartDays)
	}
	if c.Workers < 1 {
		return fmt.Errorf("WORKERS must be at least 1, got %d", c.Workers)
	}
	switch c.RunMode {
	case RunOnce, RunSchedule:
	default:
		return fmt.Errorf("unsupported RUN_MODE %q (use: once, schedule)", c.RunMode)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: expected an integer, got '%s'", key, valueStr)
	}
	return value, nil
}
