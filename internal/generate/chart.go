package generate

import (
	"math"
	"time"

	"jp-stockgen/internal/model"
)

const (
	minBarVolume = 50_000
	maxBarVolume = 2_000_000

	// DateLayout is the label format of ChartPoint.Date.
	DateLayout = "01/02"
)

// Chart walks days calendar days ending yesterday and emits one bar per weekday.
// The running price starts at BasePrice(code) and only moves on emitted days.
func (g *Generator) Chart(code string, days int) (model.ChartSeries, error) {
	price, err := BasePrice(code)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		return model.ChartSeries{}, nil
	}

	start := g.clock.Now().AddDate(0, 0, -days)
	// ~5/7 of calendar days are weekdays; +1 covers rounding.
	series := make(model.ChartSeries, 0, days*5/7+1)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		if IsWeekend(date) {
			continue
		}

		price *= 1 + g.uniform(-0.03, 0.03)

		open := price * g.uniform(0.98, 1.02)
		closePrice := price * g.uniform(0.98, 1.02)
		high := math.Max(open, closePrice) * (1 + g.uniform(0, 0.02))
		low := math.Min(open, closePrice) * (1 - g.uniform(0, 0.02))
		volume := g.intn(minBarVolume, maxBarVolume)

		series = append(series, model.ChartPoint{
			Date:   date.Format(DateLayout),
			Open:   roundTo(open, 0),
			High:   roundTo(high, 0),
			Low:    roundTo(low, 0),
			Close:  roundTo(closePrice, 0),
			Volume: volume,
		})
	}
	return series, nil
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
