package model

// Market is a Tokyo Stock Exchange market segment.
type Market string

const (
	MarketPrime    Market = "PRIME"
	MarketStandard Market = "STANDARD"
	MarketGrowth   Market = "GROWTH"
)

// Markets returns all segments in listing order.
func Markets() []Market {
	return []Market{MarketPrime, MarketStandard, MarketGrowth}
}

// Valid reports whether m is one of the known segments.
func (m Market) Valid() bool {
	switch m {
	case MarketPrime, MarketStandard, MarketGrowth:
		return true
	}
	return false
}

// Instrument is one listed security from the catalog.
type Instrument struct {
	Code   string `json:"code" yaml:"code"`
	Name   string `json:"name" yaml:"name"`
	Market Market `json:"market" yaml:"market"`
}
