package saver

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jp-stockgen/internal/model"
)

var (
	testSeries = model.ChartSeries{
		{Date: "03/11", Open: 1590, High: 1622, Low: 1571, Close: 1604, Volume: 812345},
		{Date: "03/12", Open: 1601, High: 1615, Low: 1588, Close: 1593, Volume: 1999999},
	}
	testSnapshots = []model.Snapshot{
		{
			Code: "1301", Name: "極洋", Market: model.MarketPrime,
			Price: 1577, Change: -42, ChangePercent: -2.66, Volume: 2345678,
			MarketCap: 1.2345678901234e+12, Sector: "水産・農林業",
			LastUpdate: "2024-03-14T15:00:00Z",
		},
		{
			Code: "3092", Name: "ZOZO", Market: model.MarketGrowth,
			Price: 1290, Change: 31, ChangePercent: 2.4, Volume: 100000,
			MarketCap: 98765432100, Sector: "繊維製品・小売業",
			LastUpdate: "2024-03-14T15:00:00Z",
		},
	}
)

func TestNewSaver(t *testing.T) {
	for _, f := range Formats() {
		s := NewSaver(f)
		require.NotNil(t, s, f)
		assert.Equal(t, f, s.Extension())
	}
	assert.NotNil(t, NewSaver(" JSON "))
	assert.Nil(t, NewSaver("xml"))
}

func TestJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := JSONSaver{}

	chartPath := filepath.Join(dir, "1301.json")
	require.NoError(t, s.SaveChart(testSeries, chartPath))
	var series model.ChartSeries
	readJSON(t, chartPath, &series)
	assert.Equal(t, testSeries, series)

	listPath := filepath.Join(dir, "all_stocks.json")
	require.NoError(t, s.SaveSnapshots(testSnapshots, listPath))
	var snaps []model.Snapshot
	readJSON(t, listPath, &snaps)
	assert.Equal(t, testSnapshots, snaps)

	raw, err := os.ReadFile(listPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name": "極洋"`)
	assert.Contains(t, string(raw), `"changePercent": -2.66`)
}

func TestJSONEmptyIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, JSONSaver{}.SaveChart(nil, path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestWriteJSONSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	sum := model.Summary{
		TotalStocks: 3,
		Markets:     map[model.Market]int{model.MarketPrime: 3, model.MarketStandard: 0, model.MarketGrowth: 0},
		LastUpdate:  "2024-03-14T15:00:00Z",
		DataSource:  "Mock Data Generator",
	}
	require.NoError(t, WriteJSON(path, sum))

	var got model.Summary
	readJSON(t, path, &got)
	assert.Equal(t, sum, got)
}

func TestCSV(t *testing.T) {
	dir := t.TempDir()
	s := CSVSaver{}

	chartPath := filepath.Join(dir, "1301.csv")
	require.NoError(t, s.SaveChart(testSeries, chartPath))
	raw, err := os.ReadFile(chartPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,open,high,low,close,volume", lines[0])
	assert.Equal(t, "03/11,1590,1622,1571,1604,812345", lines[1])

	listPath := filepath.Join(dir, "all_stocks.csv")
	require.NoError(t, s.SaveSnapshots(testSnapshots, listPath))
	raw, err = os.ReadFile(listPath)
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1301,極洋,PRIME,1577,-42,-2.66,2345678,1234567890123.4,"), lines[1])
}

func TestParquetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := ParquetSaver{}

	chartPath := filepath.Join(dir, "1301.parquet")
	require.NoError(t, s.SaveChart(testSeries, chartPath))
	points, err := parquet.ReadFile[model.ChartPoint](chartPath)
	require.NoError(t, err)
	assert.Equal(t, []model.ChartPoint(testSeries), points)

	listPath := filepath.Join(dir, "all_stocks.parquet")
	require.NoError(t, s.SaveSnapshots(testSnapshots, listPath))
	snaps, err := parquet.ReadFile[model.Snapshot](listPath)
	require.NoError(t, err)
	assert.Equal(t, testSnapshots, snaps)
}

func TestSaveIntoMissingDirFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "1301")
	for _, f := range Formats() {
		s := NewSaver(f)
		assert.Error(t, s.SaveChart(testSeries, path+"."+s.Extension()), f)
	}
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
}
