package provider

import "jp-stockgen/internal/model"

// DataProvider is the abstraction used by the pipeline when producing market data.
// Implementations own their randomness and clock and release resources on Close.
type DataProvider interface {
	GetName() string
	Snapshot(inst model.Instrument) (model.Snapshot, error)
	Chart(code string, days int) (model.ChartSeries, error)
	Close() error
}
