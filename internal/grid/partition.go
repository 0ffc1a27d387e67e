// Package grid partitions a drawer footprint into Gridfinity units.
//
// The partition tiles the drawer rectangle exactly: full GridSize x GridSize
// standard units over the aligned region, non-standard remainder units along
// the right and bottom edges, and a single corner unit when both axes have a
// remainder. Partition is a pure function; its output depends only on its
// input and it is safe to call concurrently.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/rmaxseiner/drawerfinity/internal/model"
)

// ErrInvalidDimension is returned when a drawer dimension is not positive.
var ErrInvalidDimension = errors.New("drawer dimensions must be positive")

// remainderEps guards the remainder checks against float64 noise so that
// exact grid multiples never produce sliver units.
const remainderEps = 1e-6

// Partition divides a drawer of the given usable width and depth (mm) into
// units. Units are emitted row-major (front to back, left to right), with the
// remainder column at the end of each row and the remainder row last, so the
// ordering is deterministic for a given input.
//
// A drawer smaller than one grid module on either axis becomes a single
// non-standard unit covering the whole footprint.
func Partition(width, depth float64) ([]model.Unit, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %.2f x %.2f", ErrInvalidDimension, width, depth)
	}

	const g = model.GridSize

	if width < g || depth < g {
		return []model.Unit{{
			Width:      width,
			Depth:      depth,
			XOffset:    0,
			YOffset:    0,
			IsStandard: false,
		}}, nil
	}

	nx := int(math.Floor(width / g))
	ny := int(math.Floor(depth / g))
	remX := width - float64(nx)*g
	remY := depth - float64(ny)*g
	hasRemX := remX > remainderEps
	hasRemY := remY > remainderEps

	units := make([]model.Unit, 0, (nx+1)*(ny+1))

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			units = append(units, model.Unit{
				Width:      g,
				Depth:      g,
				XOffset:    float64(i) * g,
				YOffset:    float64(j) * g,
				IsStandard: true,
			})
		}
		if hasRemX {
			units = append(units, model.Unit{
				Width:      remX,
				Depth:      g,
				XOffset:    float64(nx) * g,
				YOffset:    float64(j) * g,
				IsStandard: false,
			})
		}
	}

	if hasRemY {
		for i := 0; i < nx; i++ {
			units = append(units, model.Unit{
				Width:      g,
				Depth:      remY,
				XOffset:    float64(i) * g,
				YOffset:    float64(ny) * g,
				IsStandard: false,
			})
		}
		if hasRemX {
			units = append(units, model.Unit{
				Width:      remX,
				Depth:      remY,
				XOffset:    float64(nx) * g,
				YOffset:    float64(ny) * g,
				IsStandard: false,
			})
		}
	}

	return units, nil
}

// Bounds returns the drawer extent covered by a partition, derived as the
// maximum extent over all units.
func Bounds(units []model.Unit) (width, depth float64) {
	for _, u := range units {
		if right := u.XOffset + u.Width; right > width {
			width = right
		}
		if back := u.YOffset + u.Depth; back > depth {
			depth = back
		}
	}
	return width, depth
}

// CountStandard returns the number of standard and non-standard units.
func CountStandard(units []model.Unit) (standard, nonStandard int) {
	for _, u := range units {
		if u.IsStandard {
			standard++
		} else {
			nonStandard++
		}
	}
	return standard, nonStandard
}
