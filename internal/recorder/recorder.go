package recorder

import "jp-stockgen/internal/model"

// Recorder keeps a queryable copy of each generation run next to the files.
type Recorder interface {
	RecordSnapshots(snapshots []model.Snapshot) error
	RecordChart(code string, series model.ChartSeries) error
	RecordSummary(summary model.Summary) error
	Close() error
}
