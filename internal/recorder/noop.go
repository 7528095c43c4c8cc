package recorder

import "jp-stockgen/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshots(_ []model.Snapshot) error         { return nil }
func (n *NoopRecorder) RecordChart(_ string, _ model.ChartSeries) error { return nil }
func (n *NoopRecorder) RecordSummary(_ model.Summary) error             { return nil }
func (n *NoopRecorder) Close() error                                    { return nil }
