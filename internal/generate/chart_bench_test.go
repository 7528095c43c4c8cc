package generate

import (
	"testing"

	"jp-stockgen/internal/model"
)

// BenchmarkChartDefaultDays generates one default-length series per op.
func BenchmarkChartDefaultDays(b *testing.B) {
	g := newTestGenerator(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Chart("7203", DefaultChartDays); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSnapshot draws one snapshot per op.
func BenchmarkSnapshot(b *testing.B) {
	g := newTestGenerator(1)
	inst := model.Instrument{Code: "7203", Name: "トヨタ自動車", Market: model.MarketPrime}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Snapshot(inst); err != nil {
			b.Fatal(err)
		}
	}
}
