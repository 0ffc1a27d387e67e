package model

import (
	"math"

	"github.com/google/uuid"
)

// SnapIndex converts a millimeter value to its nearest grid-unit index.
// Used for the serialized unit-index fields; placement logic itself works
// in mm throughout.
func SnapIndex(mm float64) int {
	return int(math.Round(mm / GridSize))
}

// PlacedBin is a bin the user has committed to the drawer layout. Width and
// Depth may be smaller than the nominally requested size when the bin covers
// non-standard boundary units. X and Y coincide with the anchor unit's
// offset.
type PlacedBin struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Width float64 `json:"width"` // mm, possibly adjusted from the requested size
	Depth float64 `json:"depth"` // mm, possibly adjusted from the requested size
	X     float64 `json:"x"`     // mm from drawer left edge
	Y     float64 `json:"y"`     // mm from drawer front edge

	// Grid-unit indices derived from the mm values, for display and storage.
	UnitX     int `json:"unitX"`
	UnitY     int `json:"unitY"`
	UnitWidth int `json:"unitWidth"`
	UnitDepth int `json:"unitDepth"`
}

// NewPlacedBin creates a PlacedBin with a generated ID and derived grid-unit
// index fields.
func NewPlacedBin(label string, width, depth, x, y float64) PlacedBin {
	b := PlacedBin{
		ID:    uuid.New().String()[:8],
		Label: label,
		Width: width,
		Depth: depth,
		X:     x,
		Y:     y,
	}
	b.SyncUnitFields()
	return b
}

// SyncUnitFields recomputes the grid-unit index fields from the mm values.
func (b *PlacedBin) SyncUnitFields() {
	b.UnitX = SnapIndex(b.X)
	b.UnitY = SnapIndex(b.Y)
	b.UnitWidth = SnapIndex(b.Width)
	b.UnitDepth = SnapIndex(b.Depth)
}

// Overlaps reports whether two bins' rectangles intersect, using open
// intervals on both axes.
func (b PlacedBin) Overlaps(o PlacedBin) bool {
	return b.X < o.X+o.Width && b.X+b.Width > o.X &&
		b.Y < o.Y+o.Depth && b.Y+b.Depth > o.Y
}

// Area returns the bin footprint area in square mm.
func (b PlacedBin) Area() float64 {
	return b.Width * b.Depth
}
