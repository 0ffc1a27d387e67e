package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/rmaxseiner/drawerfinity/internal/model"
)

func TestPartitionRejectsNonPositiveDimensions(t *testing.T) {
	tests := []struct {
		name         string
		width, depth float64
	}{
		{"zero width", 0, 100},
		{"zero depth", 100, 0},
		{"negative width", -42, 100},
		{"negative depth", 100, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Partition(tt.width, tt.depth)
			if !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("expected ErrInvalidDimension, got %v", err)
			}
		})
	}
}

func TestPartitionExactMultiples(t *testing.T) {
	units, err := Partition(84, 84)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(units) != 4 {
		t.Fatalf("expected 4 units, got %d", len(units))
	}

	wantOffsets := [][2]float64{{0, 0}, {42, 0}, {0, 42}, {42, 42}}
	for i, u := range units {
		if !u.IsStandard {
			t.Errorf("unit %d should be standard", i)
		}
		if u.Width != 42 || u.Depth != 42 {
			t.Errorf("unit %d size = %vx%v, want 42x42", i, u.Width, u.Depth)
		}
		if u.XOffset != wantOffsets[i][0] || u.YOffset != wantOffsets[i][1] {
			t.Errorf("unit %d offset = (%v,%v), want (%v,%v)",
				i, u.XOffset, u.YOffset, wantOffsets[i][0], wantOffsets[i][1])
		}
	}
}

func TestPartitionWidthRemainder(t *testing.T) {
	// 100 = 2*42 + 16: two standard units plus a 16x42 strip per row, 2 rows.
	units, err := Partition(100, 84)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(units) != 6 {
		t.Fatalf("expected 6 units, got %d", len(units))
	}

	standard, nonStandard := CountStandard(units)
	if standard != 4 || nonStandard != 2 {
		t.Errorf("got %d standard / %d non-standard, want 4 / 2", standard, nonStandard)
	}

	for _, u := range units {
		if u.IsStandard {
			continue
		}
		if math.Abs(u.Width-16) > 1e-9 || u.Depth != 42 {
			t.Errorf("remainder unit size = %vx%v, want 16x42", u.Width, u.Depth)
		}
		if u.XOffset != 84 {
			t.Errorf("remainder unit x_offset = %v, want 84", u.XOffset)
		}
	}
}

func TestPartitionCornerUnit(t *testing.T) {
	// 100x100: 2x2 standard region, a 16x42 strip per row, a 42x16 strip per
	// column, and exactly one 16x16 corner unit.
	units, err := Partition(100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(units) != 9 {
		t.Fatalf("expected 9 units, got %d", len(units))
	}

	standard, nonStandard := CountStandard(units)
	if standard != 4 || nonStandard != 5 {
		t.Errorf("got %d standard / %d non-standard, want 4 / 5", standard, nonStandard)
	}

	var corners int
	for _, u := range units {
		if u.XOffset == 84 && u.YOffset == 84 {
			corners++
			if math.Abs(u.Width-16) > 1e-9 || math.Abs(u.Depth-16) > 1e-9 {
				t.Errorf("corner unit size = %vx%v, want 16x16", u.Width, u.Depth)
			}
		}
	}
	if corners != 1 {
		t.Errorf("expected exactly one corner unit, got %d", corners)
	}
}

func TestPartitionDegenerateSingleUnit(t *testing.T) {
	tests := []struct {
		name         string
		width, depth float64
	}{
		{"narrow", 30, 100},
		{"shallow", 100, 30},
		{"tiny", 20, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units, err := Partition(tt.width, tt.depth)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(units) != 1 {
				t.Fatalf("expected single unit, got %d", len(units))
			}
			u := units[0]
			if u.IsStandard {
				t.Error("degenerate unit must be non-standard")
			}
			if u.Width != tt.width || u.Depth != tt.depth {
				t.Errorf("unit size = %vx%v, want %vx%v", u.Width, u.Depth, tt.width, tt.depth)
			}
		})
	}
}

// TestPartitionTilesExactly checks the tiling invariant over a spread of
// dimensions: unit areas sum to the drawer area, no unit escapes the drawer
// bounds, and no two units overlap.
func TestPartitionTilesExactly(t *testing.T) {
	dims := []struct{ w, d float64 }{
		{42, 42}, {84, 84}, {100, 84}, {100, 100},
		{420, 300}, {433.5, 387.2}, {41.9, 500}, {126, 126.5},
	}
	for _, dim := range dims {
		units, err := Partition(dim.w, dim.d)
		if err != nil {
			t.Fatalf("Partition(%v, %v): %v", dim.w, dim.d, err)
		}

		var area float64
		for i, u := range units {
			area += u.Area()
			if u.XOffset < 0 || u.YOffset < 0 ||
				u.XOffset+u.Width > dim.w+1e-6 || u.YOffset+u.Depth > dim.d+1e-6 {
				t.Errorf("Partition(%v, %v): unit %d escapes drawer bounds: %+v", dim.w, dim.d, i, u)
			}
			for j := i + 1; j < len(units); j++ {
				o := units[j]
				if u.Overlaps(o.XOffset, o.YOffset, o.Width, o.Depth) {
					t.Errorf("Partition(%v, %v): units %d and %d overlap", dim.w, dim.d, i, j)
				}
			}
		}
		if math.Abs(area-dim.w*dim.d) > 1e-6 {
			t.Errorf("Partition(%v, %v): unit areas sum to %v, want %v", dim.w, dim.d, area, dim.w*dim.d)
		}

		w, d := Bounds(units)
		if math.Abs(w-dim.w) > 1e-9 || math.Abs(d-dim.d) > 1e-9 {
			t.Errorf("Bounds = (%v, %v), want (%v, %v)", w, d, dim.w, dim.d)
		}
	}
}

func TestPartitionNoSliverUnitsOnExactMultiples(t *testing.T) {
	// 126 = 3*42; float64 division must not leave a remainder strip.
	units, err := Partition(126, 126)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(units) != 9 {
		t.Fatalf("expected 9 units, got %d", len(units))
	}
	if _, nonStandard := CountStandard(units); nonStandard != 0 {
		t.Errorf("expected no non-standard units, got %d", nonStandard)
	}
}

func TestPartitionIsDeterministic(t *testing.T) {
	a, _ := Partition(433.5, 387.2)
	b, _ := Partition(433.5, 387.2)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("unit %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

var benchUnits []model.Unit

func BenchmarkPartition(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchUnits, _ = Partition(1200, 800)
	}
}
