package model

import (
	"time"

	"github.com/google/uuid"
)

// DrawerTemplate is a reusable drawer configuration, optionally including a
// starting set of bins.
type DrawerTemplate struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
	Drawer      Drawer      `json:"drawer"`
	Printer     string      `json:"printer"`
	Bins        []PlacedBin `json:"bins"`
}

// NewDrawerTemplate creates a template from the given layout data.
func NewDrawerTemplate(name, description string, layout Layout) DrawerTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	bins := make([]PlacedBin, len(layout.Bins))
	copy(bins, layout.Bins)
	return DrawerTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Drawer:      layout.Drawer,
		Printer:     layout.Printer,
		Bins:        bins,
	}
}

// ToLayout creates a new Layout from this template. Bins get fresh IDs so
// they are independent of the template.
func (t DrawerTemplate) ToLayout(name string) Layout {
	l := NewLayout(name, t.Drawer)
	if t.Printer != "" {
		l.Printer = t.Printer
	}
	for _, b := range t.Bins {
		l.Bins = append(l.Bins, NewPlacedBin(b.Label, b.Width, b.Depth, b.X, b.Y))
	}
	return l
}

// TemplateStore holds a collection of drawer templates.
type TemplateStore struct {
	Templates []DrawerTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []DrawerTemplate{}}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t DrawerTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *DrawerTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}
