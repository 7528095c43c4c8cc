package generate

import (
	"time"

	"jp-stockgen/internal/model"
	"jp-stockgen/internal/sector"
)

const (
	minSnapshotVolume = 100_000
	maxSnapshotVolume = 5_000_000
	minCapMultiplier  = 10_000_000
	maxCapMultiplier  = 1_000_000_000
)

// Snapshot draws a quote for inst around its base price.
func (g *Generator) Snapshot(inst model.Instrument) (model.Snapshot, error) {
	base, err := BasePrice(inst.Code)
	if err != nil {
		return model.Snapshot{}, err
	}

	price := g.uniform(0.8*base, 1.2*base)
	changePercent := g.uniform(-5, 5)
	change := price * changePercent / 100
	volume := g.intn(minSnapshotVolume, maxSnapshotVolume)
	// Crude proxy; there is no share count in the catalog.
	marketCap := price * float64(g.intn(minCapMultiplier, maxCapMultiplier))

	return model.Snapshot{
		Code:          inst.Code,
		Name:          inst.Name,
		Market:        inst.Market,
		Price:         roundTo(price, 0),
		Change:        roundTo(change, 0),
		ChangePercent: roundTo(changePercent, 2),
		Volume:        volume,
		MarketCap:     marketCap,
		Sector:        sector.Classify(inst.Code),
		LastUpdate:    g.clock.Now().Format(time.RFC3339Nano),
	}, nil
}

// Snapshots generates one snapshot per instrument in order and stops at the first error.
func (g *Generator) Snapshots(instruments []model.Instrument) ([]model.Snapshot, error) {
	out := make([]model.Snapshot, 0, len(instruments))
	for _, inst := range instruments {
		s, err := g.Snapshot(inst)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
