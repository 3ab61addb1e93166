// internal/defs/loader.go
package defs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"go-hexmap-atlas/pkg/hexmap"
)

// ErrUnsupportedFormat is returned for map files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("defs: unsupported map file format")

// MapFile is the on-disk shape of map data: {"data": [...]}.
type MapFile struct {
	Data []hexmap.Cell `json:"data" yaml:"data"`
}

// LoadMap reads a map file and builds the cell collection. The format is
// picked from the extension: .json, .yaml or .yml.
func LoadMap(path string) (*hexmap.Collection, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}

	var cells []hexmap.Cell
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		cells, err = DecodeJSON(bytes.NewReader(file))
	case ".yaml", ".yml":
		cells, err = DecodeYAML(bytes.NewReader(file))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	c := hexmap.NewCollection(cells)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	for _, h := range c.Duplicates() {
		log.Printf("map %s: duplicate cell at %s, keeping the first", path, h)
	}
	log.Printf("Loaded %d map cells from %s", c.Len(), path)
	return c, nil
}

// DecodeJSON reads either {"data": [...]} or a bare array of cells.
func DecodeJSON(r io.Reader) ([]hexmap.Cell, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read map data: %w", err)
	}

	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		var cells []hexmap.Cell
		if err := json.Unmarshal(trimmed, &cells); err != nil {
			return nil, fmt.Errorf("failed to unmarshal map data: %w", err)
		}
		return cells, nil
	}

	var mf MapFile
	if err := json.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal map data: %w", err)
	}
	return mf.Data, nil
}

// DecodeYAML reads the YAML form of MapFile.
func DecodeYAML(r io.Reader) ([]hexmap.Cell, error) {
	var mf MapFile
	if err := yaml.NewDecoder(r).Decode(&mf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return mf.Data, nil
}
