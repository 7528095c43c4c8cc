// Package generate synthesizes quotes and daily bars for catalog instruments.
//
// All randomness comes from the *rand.Rand passed to New and all timestamps
// from the Clock, so a fixed seed and clock reproduce a run exactly.
package generate

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"
)

// DefaultChartDays is the calendar-day span of a chart series when none is configured.
const DefaultChartDays = 250

// ErrInvalidCode is returned for codes that do not parse as integers.
var ErrInvalidCode = errors.New("invalid instrument code")

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process-local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// Generator produces snapshots and chart series.
// It is not safe for concurrent use: every draw advances the shared rng.
type Generator struct {
	rng   *rand.Rand
	clock Clock
}

// New creates a Generator drawing from rng. A nil clock means SystemClock.
func New(rng *rand.Rand, clock Clock) *Generator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Generator{rng: rng, clock: clock}
}

// NewSeeded creates a Generator with a private rng seeded with seed.
func NewSeeded(seed int64, clock Clock) *Generator {
	return New(rand.New(rand.NewSource(seed)), clock)
}

// BasePrice anchors the price scale of an instrument: 1000 + (code mod 1000) * 2.
func BasePrice(code string) (float64, error) {
	v, err := strconv.Atoi(code)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidCode, code)
	}
	return float64(1000 + (v%1000)*2), nil
}

// uniform draws from [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// intn draws an integer from [lo, hi], both inclusive.
func (g *Generator) intn(lo, hi int64) int64 {
	return lo + g.rng.Int63n(hi-lo+1)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
