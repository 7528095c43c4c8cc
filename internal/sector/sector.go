// Package sector maps TSE security codes to coarse industry labels.
package sector

import "strconv"

// Other is returned for codes outside every band.
const Other = "その他"

// Band is a half-open code range [From, To) mapped to one label.
type Band struct {
	From  int
	To    int
	Label string
}

var bands = []Band{
	{1000, 2000, "水産・農林業"},
	{2000, 3000, "食料品"},
	{3000, 4000, "繊維製品・小売業"},
	{4000, 5000, "化学・医薬品"},
	{5000, 6000, "石油・石炭・ガラス・鉄鋼"},
	{6000, 7000, "機械"},
	{7000, 8000, "電気機器・自動車・精密機器"},
	{8000, 9000, "商社・金融・不動産"},
	{9000, 10000, "陸運・海運・空運・通信・電力・ガス"},
}

// Bands returns a copy of the band table in ascending order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// ForValue returns the label of the band containing v, or Other.
func ForValue(v int) string {
	for _, b := range bands {
		if v >= b.From && v < b.To {
			return b.Label
		}
	}
	return Other
}

// Classify returns the sector label for a security code.
// Codes that are not integers are classified as Other.
func Classify(code string) string {
	v, err := strconv.Atoi(code)
	if err != nil {
		return Other
	}
	return ForValue(v)
}
