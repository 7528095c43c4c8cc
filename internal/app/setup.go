package app

import (
	"fmt"
	"log/slog"
	"strings"

	"jp-stockgen/internal/catalog"
	"jp-stockgen/internal/model"
	"jp-stockgen/internal/recorder"
	"jp-stockgen/internal/saver"
)

// CreateSaver creates the Saver for SAVE_FORMAT.
func CreateSaver(cfg *Config) (saver.Saver, error) {
	s := saver.NewSaver(cfg.SaveFormat)
	if s == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: %s)", cfg.SaveFormat, strings.Join(saver.Formats(), ", "))
	}
	return s, nil
}

// LoadCatalog loads CATALOG_FILE, or the embedded catalog when unset, and warns about repeated codes.
func LoadCatalog(cfg *Config) (*catalog.Catalog, error) {
	var (
		c   *catalog.Catalog
		err error
	)
	if cfg.CatalogFile != "" {
		c, err = catalog.LoadFile(cfg.CatalogFile)
	} else {
		c, err = catalog.Default()
	}
	if err != nil {
		return nil, err
	}
	slog.Info("catalog loaded",
		"instruments", c.Len(),
		"prime", len(c.ByMarket(model.MarketPrime)),
		"standard", len(c.ByMarket(model.MarketStandard)),
		"growth", len(c.ByMarket(model.MarketGrowth)),
	)
	for _, d := range c.Duplicates() {
		slog.Warn("code listed more than once", "code", d.Code, "markets", d.Markets)
	}
	return c, nil
}

// OpenRecorder opens the SQLite recorder when SQLITE_PATH is set, otherwise a no-op one.
func OpenRecorder(cfg *Config) (recorder.Recorder, error) {
	if cfg.SQLitePath == "" {
		return recorder.NewNoopRecorder(), nil
	}
	r, err := recorder.NewSQLiteRecorder(cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open recorder: %w", err)
	}
	return r, nil
}
