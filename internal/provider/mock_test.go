package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jp-stockgen/internal/generate"
	"jp-stockgen/internal/model"
)

func TestMockProvider(t *testing.T) {
	clock := generate.FixedClock{T: time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)}
	var dp DataProvider = NewMockProvider(generate.NewSeeded(5, clock))
	defer dp.Close()

	assert.Equal(t, "Mock Data Generator", dp.GetName())

	s, err := dp.Snapshot(model.Instrument{Code: "9984", Name: "ソフトバンクグループ", Market: model.MarketPrime})
	require.NoError(t, err)
	assert.Equal(t, "9984", s.Code)

	series, err := dp.Chart("9984", 14)
	require.NoError(t, err)
	assert.Len(t, series, 10)
}
