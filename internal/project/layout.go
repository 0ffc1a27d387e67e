// Package project persists layouts, application configuration, printer
// profiles, and drawer templates as JSON files.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmaxseiner/drawerfinity/internal/engine"
	"github.com/rmaxseiner/drawerfinity/internal/grid"
	"github.com/rmaxseiner/drawerfinity/internal/model"
)

// SaveLayout writes a layout to the given path as JSON, creating missing
// parent directories.
func SaveLayout(path string, layout model.Layout) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}
	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadLayout reads a layout from the given path and re-validates its
// invariants: usable drawer dimensions, a partitionable footprint, and bins
// that are in bounds and pairwise non-overlapping. A layout file edited or
// corrupted outside the application is rejected rather than trusted.
func LoadLayout(path string) (model.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	var layout model.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return model.Layout{}, fmt.Errorf("failed to parse layout file: %w", err)
	}
	if layout.Bins == nil {
		layout.Bins = []model.PlacedBin{}
	}

	if errs := layout.Drawer.Validate(); len(errs) > 0 {
		return model.Layout{}, fmt.Errorf("invalid drawer in %s: %s", filepath.Base(path), strings.Join(errs, "; "))
	}

	units, err := grid.Partition(layout.Drawer.Width, layout.Drawer.Depth)
	if err != nil {
		return model.Layout{}, fmt.Errorf("invalid drawer in %s: %w", filepath.Base(path), err)
	}
	if _, err := engine.NewSession(units, layout.Bins); err != nil {
		return model.Layout{}, fmt.Errorf("invalid bins in %s: %w", filepath.Base(path), err)
	}

	return layout, nil
}
