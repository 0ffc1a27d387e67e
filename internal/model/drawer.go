package model

import "fmt"

// Drawer describes the interior of one storage drawer.
type Drawer struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`  // usable interior width, mm
	Depth  float64 `json:"depth"`  // usable interior depth, mm
	Height float64 `json:"height"` // usable interior height, mm
}

// Validate checks the drawer dimensions against the minimum practical sizes.
// It returns a list of human-readable problems, empty when the drawer is
// usable.
func (d Drawer) Validate() []string {
	var errs []string
	if d.Width < MinDrawerWidth {
		errs = append(errs, fmt.Sprintf("width (%.1fmm) must be at least %.0fmm", d.Width, MinDrawerWidth))
	}
	if d.Depth < MinDrawerDepth {
		errs = append(errs, fmt.Sprintf("depth (%.1fmm) must be at least %.0fmm", d.Depth, MinDrawerDepth))
	}
	if d.Height != 0 && d.Height < MinDrawerHeight {
		errs = append(errs, fmt.Sprintf("height (%.1fmm) must be at least %.0fmm", d.Height, MinDrawerHeight))
	}
	return errs
}

// Layout ties a drawer and its placed bins together for save/load.
type Layout struct {
	Name    string      `json:"name"`
	Drawer  Drawer      `json:"drawer"`
	Printer string      `json:"printer"` // printer profile name for baseplate sectioning
	Bins    []PlacedBin `json:"bins"`
}

// NewLayout creates an empty layout for the given drawer.
func NewLayout(name string, drawer Drawer) Layout {
	return Layout{
		Name:    name,
		Drawer:  drawer,
		Printer: "Generic",
		Bins:    []PlacedBin{},
	}
}

// UsedArea returns the total footprint area of all placed bins in square mm.
func (l Layout) UsedArea() float64 {
	var total float64
	for _, b := range l.Bins {
		total += b.Area()
	}
	return total
}

// TotalArea returns the drawer footprint area in square mm.
func (l Layout) TotalArea() float64 {
	return l.Drawer.Width * l.Drawer.Depth
}

// Fill returns the percentage of the drawer footprint covered by bins.
func (l Layout) Fill() float64 {
	ta := l.TotalArea()
	if ta == 0 {
		return 0
	}
	return (l.UsedArea() / ta) * 100.0
}

// FindBin returns a pointer to the bin with the given ID, or nil.
func (l *Layout) FindBin(id string) *PlacedBin {
	for i := range l.Bins {
		if l.Bins[i].ID == id {
			return &l.Bins[i]
		}
	}
	return nil
}
