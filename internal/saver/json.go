package saver

import (
	"encoding/json"
	"os"

	"jp-stockgen/internal/model"
)

// JSONSaver writes indented JSON arrays. Non-ASCII names are written as-is.
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) SaveChart(series model.ChartSeries, path string) error {
	if series == nil {
		series = model.ChartSeries{}
	}
	return WriteJSON(path, series)
}

func (JSONSaver) SaveSnapshots(snapshots []model.Snapshot, path string) error {
	if snapshots == nil {
		snapshots = []model.Snapshot{}
	}
	return WriteJSON(path, snapshots)
}

// WriteJSON encodes v to path with two-space indentation.
func WriteJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
