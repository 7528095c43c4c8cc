package generate

import (
	"time"

	"jp-stockgen/internal/model"
)

// Summarize counts snapshots per market. Every known market has an entry, zero included.
func Summarize(snapshots []model.Snapshot, source string, now time.Time) model.Summary {
	markets := make(map[model.Market]int, len(model.Markets()))
	for _, m := range model.Markets() {
		markets[m] = 0
	}
	for _, s := range snapshots {
		markets[s.Market]++
	}
	return model.Summary{
		TotalStocks: len(snapshots),
		Markets:     markets,
		LastUpdate:  now.Format(time.RFC3339Nano),
		DataSource:  source,
	}
}
