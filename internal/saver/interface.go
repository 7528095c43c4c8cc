package saver

import (
	"strings"

	"jp-stockgen/internal/model"
)

// Saver persists generated records in one file format.
// The pipeline depends only on this interface; main picks the implementation.
type Saver interface {
	SaveChart(series model.ChartSeries, path string) error
	SaveSnapshots(snapshots []model.Snapshot, path string) error
	Extension() string
}

// Formats lists the accepted SAVE_FORMAT values.
func Formats() []string { return []string{"json", "csv", "parquet"} }

// NewSaver creates implementation by format (json, csv, parquet).
// Returns nil if format not supported.
func NewSaver(format string) Saver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSONSaver{}
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	default:
		return nil
	}
}
