package model

// Snapshot is a point-in-time synthetic quote for one instrument.
type Snapshot struct {
	Code          string  `json:"code" parquet:"code"`
	Name          string  `json:"name" parquet:"name"`
	Market        Market  `json:"market" parquet:"market"`
	Price         float64 `json:"price" parquet:"price"`
	Change        float64 `json:"change" parquet:"change"`
	ChangePercent float64 `json:"changePercent" parquet:"changePercent"`
	Volume        int64   `json:"volume" parquet:"volume"`
	MarketCap     float64 `json:"marketCap" parquet:"marketCap"`
	Sector        string  `json:"sector" parquet:"sector"`
	LastUpdate    string  `json:"lastUpdate" parquet:"lastUpdate"` // ISO-8601
}

// Summary aggregates one generation run.
type Summary struct {
	TotalStocks int            `json:"totalStocks"`
	Markets     map[Market]int `json:"markets"`
	LastUpdate  string         `json:"lastUpdate"`
	DataSource  string         `json:"dataSource"`
}
