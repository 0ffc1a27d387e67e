// Package plate splits a drawer baseplate into sections that each fit a 3D
// printer's build plate. Drawers are routinely wider than a build plate, so
// the baseplate is printed in pieces and assembled in the drawer.
package plate

import (
	"fmt"
	"math"

	"github.com/rmaxseiner/drawerfinity/internal/model"
)

// Section is one printable piece of a drawer baseplate.
type Section struct {
	Index   int     `json:"index"`
	Width   float64 `json:"width"`    // mm
	Depth   float64 `json:"depth"`    // mm
	XOffset float64 `json:"x_offset"` // mm from drawer left edge
	YOffset float64 `json:"y_offset"` // mm from drawer front edge
}

// Sections splits a drawer footprint into printable baseplate sections for
// the given printer. Interior section boundaries fall on grid-module lines so
// every section except the last row/column holds whole standard units; the
// final section on each axis absorbs the drawer's remainder. Sections are
// ordered row-major.
func Sections(width, depth float64, printer model.PrinterProfile) ([]Section, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("drawer dimensions must be positive: %.2f x %.2f", width, depth)
	}
	const g = model.GridSize
	if printer.BedWidth < g || printer.BedDepth < g {
		return nil, fmt.Errorf("printer %q build plate (%.0f x %.0f) is smaller than one %.0fmm grid module",
			printer.Name, printer.BedWidth, printer.BedDepth, g)
	}

	// The largest grid-aligned span per printed piece.
	stepX := math.Floor(printer.BedWidth/g) * g
	stepY := math.Floor(printer.BedDepth/g) * g

	widths := splitSpan(width, printer.BedWidth, stepX)
	depths := splitSpan(depth, printer.BedDepth, stepY)

	var sections []Section
	var yOffset float64
	for _, d := range depths {
		var xOffset float64
		for _, w := range widths {
			sections = append(sections, Section{
				Index:   len(sections),
				Width:   w,
				Depth:   d,
				XOffset: xOffset,
				YOffset: yOffset,
			})
			xOffset += w
		}
		yOffset += d
	}
	return sections, nil
}

// splitSpan divides one axis of the drawer into piece lengths. While the
// remaining span exceeds the build plate it takes grid-aligned steps; the
// final piece takes whatever is left, remainder included.
func splitSpan(total, bed, step float64) []float64 {
	var spans []float64
	remaining := total
	for remaining > bed {
		spans = append(spans, step)
		remaining -= step
	}
	spans = append(spans, remaining)
	return spans
}

// BinHeight derives a default bin height from the drawer's interior height:
// 75% of the available height, floored to a whole millimeter, but never below
// the standard Gridfinity module.
func BinHeight(drawerHeight float64) float64 {
	h := math.Floor(drawerHeight * 0.75)
	if h < model.GridSize {
		return model.GridSize
	}
	return h
}
