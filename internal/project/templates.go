package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/rmaxseiner/drawerfinity/internal/model"
)

// DefaultTemplatesPath returns the default file path for drawer templates.
func DefaultTemplatesPath() string {
	return filepath.Join(DefaultConfigDir(), "templates.json")
}

// SaveTemplates writes a template store to the given JSON file.
func SaveTemplates(path string, store model.TemplateStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadTemplates reads a template store from the given JSON file.
// Returns an empty store if the file does not exist.
func LoadTemplates(path string) (model.TemplateStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewTemplateStore(), nil
		}
		return model.TemplateStore{}, err
	}

	var store model.TemplateStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.TemplateStore{}, err
	}
	if store.Templates == nil {
		store.Templates = []model.DrawerTemplate{}
	}
	return store, nil
}
