package saver

import (
	"github.com/parquet-go/parquet-go"

	"jp-stockgen/internal/model"
)

// ParquetSaver writes records as Parquet rows using the struct parquet tags.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) SaveChart(series model.ChartSeries, path string) error {
	return parquet.WriteFile(path, []model.ChartPoint(series))
}

func (ParquetSaver) SaveSnapshots(snapshots []model.Snapshot, path string) error {
	return parquet.WriteFile(path, snapshots)
}
