package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// FootprintResult holds the drawer dimensions measured from a DXF drawing,
// plus any problems encountered along the way.
type FootprintResult struct {
	Width    float64
	Depth    float64
	Errors   []string
	Warnings []string
}

// bounds accumulates an axis-aligned bounding box over 2D points.
type bounds struct {
	minX, minY float64
	maxX, maxY float64
	seen       bool
}

func (b *bounds) add(x, y float64) {
	if !b.seen {
		b.minX, b.maxX = x, x
		b.minY, b.maxY = y, y
		b.seen = true
		return
	}
	b.minX = math.Min(b.minX, x)
	b.maxX = math.Max(b.maxX, x)
	b.minY = math.Min(b.minY, y)
	b.maxY = math.Max(b.maxY, y)
}

// ImportFootprint measures a drawer footprint from a DXF drawing. The
// drawing is expected to contain the drawer interior traced with LINE,
// LWPOLYLINE, CIRCLE, or ARC entities; the footprint is the bounding box of
// everything found. Units are assumed to be millimeters.
func ImportFootprint(path string) FootprintResult {
	result := FootprintResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var box bounds
	skipped := 0
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			for _, v := range e.Vertices {
				box.add(v[0], v[1])
			}

		case *entity.Line:
			box.add(e.Start[0], e.Start[1])
			box.add(e.End[0], e.End[1])

		case *entity.Circle:
			box.add(e.Center[0]-e.Radius, e.Center[1]-e.Radius)
			box.add(e.Center[0]+e.Radius, e.Center[1]+e.Radius)

		case *entity.Arc:
			for _, p := range arcPoints(e, 32) {
				box.add(p[0], p[1])
			}

		default:
			skipped++
		}
	}

	if skipped > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Skipped %d unsupported entities", skipped))
	}

	if !box.seen {
		result.Errors = append(result.Errors, "No measurable geometry found in DXF file")
		return result
	}

	width := box.maxX - box.minX
	depth := box.maxY - box.minY
	if width < 0.01 || depth < 0.01 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Degenerate footprint (%.2f x %.2f mm)", width, depth))
		return result
	}

	result.Width = width
	result.Depth = depth
	return result
}

// arcPoints samples points along a DXF ARC entity.
func arcPoints(a *entity.Arc, numSegments int) [][2]float64 {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius
	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([][2]float64, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	return pts
}
