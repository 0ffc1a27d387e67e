package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/rmaxseiner/drawerfinity/internal/model"
)

// DefaultPrintersPath returns the default file path for custom printer
// profiles.
func DefaultPrintersPath() string {
	return filepath.Join(DefaultConfigDir(), "printers.json")
}

// SaveCustomPrinters saves custom printer profiles to a JSON file.
func SaveCustomPrinters(path string, printers []model.PrinterProfile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(printers, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomPrinters loads custom printer profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomPrinters(path string) ([]model.PrinterProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.PrinterProfile{}, nil
		}
		return nil, err
	}

	var printers []model.PrinterProfile
	if err := json.Unmarshal(data, &printers); err != nil {
		return nil, err
	}

	// Loaded profiles are never built-in
	for i := range printers {
		printers[i].IsBuiltIn = false
	}
	return printers, nil
}
