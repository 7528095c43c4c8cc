// Package catalog holds the static instrument list the generator runs over.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"jp-stockgen/internal/model"
)

//go:embed tse_instruments.json
var embeddedInstruments []byte

var (
	ErrEmpty         = errors.New("catalog has no instruments")
	ErrInvalidCode   = errors.New("instrument code must be 4 digits")
	ErrInvalidMarket = errors.New("unknown market")
)

// Catalog is an immutable, ordered list of instruments.
// Codes may repeat across market segments; entries are never de-duplicated.
type Catalog struct {
	instruments []model.Instrument
}

// New validates instruments and wraps them in a Catalog.
func New(instruments []model.Instrument) (*Catalog, error) {
	if len(instruments) == 0 {
		return nil, ErrEmpty
	}
	list := make([]model.Instrument, len(instruments))
	for i, inst := range instruments {
		if !validCode(inst.Code) {
			return nil, fmt.Errorf("entry %d (%q): %w", i, inst.Code, ErrInvalidCode)
		}
		if !inst.Market.Valid() {
			return nil, fmt.Errorf("entry %d (%s): %w %q", i, inst.Code, ErrInvalidMarket, inst.Market)
		}
		list[i] = inst
	}
	return &Catalog{instruments: list}, nil
}

// Default returns the embedded TSE catalog.
func Default() (*Catalog, error) {
	return Parse(embeddedInstruments, FormatJSON)
}

func validCode(code string) bool {
	if len(code) != 4 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// Instruments returns a copy of the catalog entries in catalog order.
func (c *Catalog) Instruments() []model.Instrument {
	out := make([]model.Instrument, len(c.instruments))
	copy(out, c.instruments)
	return out
}

// Len returns the number of entries, duplicates included.
func (c *Catalog) Len() int { return len(c.instruments) }

// ByMarket returns the entries listed in market m.
func (c *Catalog) ByMarket(m model.Market) []model.Instrument {
	var out []model.Instrument
	for _, inst := range c.instruments {
		if inst.Market == m {
			out = append(out, inst)
		}
	}
	return out
}

// Duplicates returns codes that appear more than once, with the markets of each
// occurrence in catalog order. Codes are sorted.
func (c *Catalog) Duplicates() []Duplicate {
	seen := make(map[string][]model.Market)
	for _, inst := range c.instruments {
		seen[inst.Code] = append(seen[inst.Code], inst.Market)
	}
	var dups []Duplicate
	for code, markets := range seen {
		if len(markets) > 1 {
			dups = append(dups, Duplicate{Code: code, Markets: markets})
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i].Code < dups[j].Code })
	return dups
}

// Duplicate describes one repeated code.
type Duplicate struct {
	Code    string
	Markets []model.Market
}
