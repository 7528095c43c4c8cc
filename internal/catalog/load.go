package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"jp-stockgen/internal/model"
)

// Supported catalog file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// LoadFile reads a catalog from path.
// Supported formats:
//   - .json        : JSON array of {code, name, market}
//   - .yaml / .yml : YAML sequence of the same records
func LoadFile(path string) (*Catalog, error) {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("unsupported catalog file extension %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	slog.Info("loaded catalog from file", "count", c.Len(), "path", path)
	return c, nil
}

// Parse decodes data in the given format and validates the entries.
func Parse(data []byte, format string) (*Catalog, error) {
	var instruments []model.Instrument
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &instruments); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &instruments); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	for i := range instruments {
		instruments[i].Code = strings.TrimSpace(instruments[i].Code)
		instruments[i].Market = model.Market(strings.ToUpper(strings.TrimSpace(string(instruments[i].Market))))
	}
	return New(instruments)
}
