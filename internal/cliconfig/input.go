package cliconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadRecord reads a wire-transfer record from a .json, .yaml or .yml file.
func LoadRecord(path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	record := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err := dec.Decode(&record); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &record); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		for k, v := range record {
			if t, ok := v.(time.Time); ok {
				record[k] = t.Format("2006-01-02")
			}
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", ext)
	}
	return record, nil
}
