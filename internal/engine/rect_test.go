package engine

import "testing"

func TestRectIntersects(t *testing.T) {
	base := rect{x: 10, y: 10, w: 20, h: 20}

	tests := []struct {
		name string
		r    rect
		want bool
	}{
		{"identical", rect{10, 10, 20, 20}, true},
		{"contained", rect{15, 15, 5, 5}, true},
		{"partial", rect{25, 25, 20, 20}, true},
		{"shares right edge", rect{30, 10, 10, 20}, false},
		{"shares bottom edge", rect{10, 30, 20, 10}, false},
		{"disjoint", rect{100, 100, 5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.intersects(tt.r); got != tt.want {
				t.Errorf("intersects(%+v) = %v, want %v", tt.r, got, tt.want)
			}
			if got := tt.r.intersects(base); got != tt.want {
				t.Errorf("intersects is not symmetric for %+v", tt.r)
			}
		})
	}
}

func TestRectWithin(t *testing.T) {
	tests := []struct {
		name string
		r    rect
		want bool
	}{
		{"inside", rect{0, 0, 50, 50}, true},
		{"fills exactly", rect{0, 0, 100, 80}, true},
		{"past right", rect{60, 0, 50, 50}, false},
		{"past back", rect{0, 40, 50, 50}, false},
		{"negative origin", rect{-1, 0, 10, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.within(100, 80); got != tt.want {
				t.Errorf("within = %v, want %v", got, tt.want)
			}
		})
	}
}
