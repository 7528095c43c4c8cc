package saver

import (
	"encoding/csv"
	"os"
	"strconv"

	"jp-stockgen/internal/model"
)

var (
	chartHeader    = []string{"date", "open", "high", "low", "close", "volume"}
	snapshotHeader = []string{"code", "name", "market", "price", "change", "changePercent", "volume", "marketCap", "sector", "lastUpdate"}
)

// CSVSaver writes one header row followed by one row per record.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) SaveChart(series model.ChartSeries, path string) error {
	rows := make([][]string, 0, len(series))
	for _, p := range series {
		rows = append(rows, []string{
			p.Date,
			floatStr(p.Open),
			floatStr(p.High),
			floatStr(p.Low),
			floatStr(p.Close),
			strconv.FormatInt(p.Volume, 10),
		})
	}
	return writeCSV(path, chartHeader, rows)
}

func (CSVSaver) SaveSnapshots(snapshots []model.Snapshot, path string) error {
	rows := make([][]string, 0, len(snapshots))
	for _, s := range snapshots {
		rows = append(rows, []string{
			s.Code,
			s.Name,
			string(s.Market),
			floatStr(s.Price),
			floatStr(s.Change),
			floatStr(s.ChangePercent),
			strconv.FormatInt(s.Volume, 10),
			floatStr(s.MarketCap),
			s.Sector,
			s.LastUpdate,
		})
	}
	return writeCSV(path, snapshotHeader, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
