package model

// GridSize is the Gridfinity grid modulus in millimeters. The partitioner,
// the placement engine, and the serialized grid-unit indices all derive from
// this single constant.
const GridSize = 42.0

// Minimum practical drawer dimensions in mm. Anything smaller cannot hold a
// usable bin.
const (
	MinDrawerWidth  = 15.0
	MinDrawerDepth  = 15.0
	MinDrawerHeight = 10.0
)

// Unit is one cell of a drawer's grid partition. Units tile the drawer
// rectangle exactly: no gaps, no overlaps. IsStandard is true only when both
// dimensions equal GridSize; remainder units along the right and bottom edges
// are non-standard.
type Unit struct {
	Width      float64 `json:"width"`       // mm
	Depth      float64 `json:"depth"`       // mm
	XOffset    float64 `json:"x_offset"`    // mm from drawer left edge
	YOffset    float64 `json:"y_offset"`    // mm from drawer front edge
	IsStandard bool    `json:"is_standard"` // true for full GridSize x GridSize cells
}

// Contains reports whether the point lies inside the unit's half-open
// rectangle [XOffset, XOffset+Width) x [YOffset, YOffset+Depth).
func (u Unit) Contains(x, y float64) bool {
	return x >= u.XOffset && x < u.XOffset+u.Width &&
		y >= u.YOffset && y < u.YOffset+u.Depth
}

// Overlaps reports whether the given rectangle overlaps the unit. The test
// uses open intervals on both axes, so rectangles that merely share an edge
// do not overlap.
func (u Unit) Overlaps(x, y, w, d float64) bool {
	return x < u.XOffset+u.Width && x+w > u.XOffset &&
		y < u.YOffset+u.Depth && y+d > u.YOffset
}

// Area returns the unit area in square mm.
func (u Unit) Area() float64 {
	return u.Width * u.Depth
}
