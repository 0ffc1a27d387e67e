package engine

import (
	"math"

	"github.com/rmaxseiner/drawerfinity/internal/model"
)

// coordEps absorbs float64 noise when comparing drawer coordinates. Unit
// offsets are sums of grid multiples and remainders computed the same way on
// both sides, so any drift is far below this threshold.
const coordEps = 1e-6

// rect is an axis-aligned rectangle in drawer-local mm coordinates.
type rect struct {
	x, y, w, h float64
}

func unitRect(u model.Unit) rect {
	return rect{x: u.XOffset, y: u.YOffset, w: u.Width, h: u.Depth}
}

func binRect(b model.PlacedBin) rect {
	return rect{x: b.X, y: b.Y, w: b.Width, h: b.Depth}
}

// intersects tests overlap with open intervals on both axes: rectangles that
// only share an edge do not intersect.
func (r rect) intersects(o rect) bool {
	return r.x < o.x+o.w && r.x+r.w > o.x &&
		r.y < o.y+o.h && r.y+r.h > o.y
}

// containsPoint tests membership in the half-open rectangle
// [x, x+w) x [y, y+h).
func (r rect) containsPoint(px, py float64) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

// within reports whether the rectangle lies inside the closed drawer bounds
// [0, width] x [0, depth].
func (r rect) within(width, depth float64) bool {
	return r.x >= -coordEps && r.y >= -coordEps &&
		r.x+r.w <= width+coordEps && r.y+r.h <= depth+coordEps
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= coordEps
}
