package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new layouts
	DefaultPrinter      string  `json:"default_printer"`
	DefaultDrawerHeight float64 `json:"default_drawer_height"` // mm, 0 = derive from depth

	// Application preferences
	RecentLayouts []string `json:"recent_layouts"`
}

// maxRecentLayouts bounds the recent-layouts list.
const maxRecentLayouts = 10

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultPrinter:      "Generic",
		DefaultDrawerHeight: 0,
		RecentLayouts:       []string{},
	}
}

// ApplyToLayout copies the configured defaults into a freshly created layout.
func (c AppConfig) ApplyToLayout(l *Layout) {
	if c.DefaultPrinter != "" {
		l.Printer = c.DefaultPrinter
	}
	if c.DefaultDrawerHeight > 0 && l.Drawer.Height == 0 {
		l.Drawer.Height = c.DefaultDrawerHeight
	}
}

// AddRecentLayout records a layout path at the front of the recent list,
// dropping duplicates and trimming to the maximum length.
func (c *AppConfig) AddRecentLayout(path string) {
	recent := []string{path}
	for _, p := range c.RecentLayouts {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentLayouts {
		recent = recent[:maxRecentLayouts]
	}
	c.RecentLayouts = recent
}
