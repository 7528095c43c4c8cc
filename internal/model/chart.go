package model

// ChartPoint represents one synthetic daily OHLCV bar.
// Shared by generator, saver and serialization (json, csv, parquet).
type ChartPoint struct {
	Date   string  `json:"date" parquet:"date"` // MM/DD label, no year
	Open   float64 `json:"open" parquet:"open"`
	High   float64 `json:"high" parquet:"high"`
	Low    float64 `json:"low" parquet:"low"`
	Close  float64 `json:"close" parquet:"close"`
	Volume int64   `json:"volume" parquet:"volume"`
}

// ChartSeries is the bars of one instrument in ascending date order, weekends excluded.
type ChartSeries []ChartPoint
