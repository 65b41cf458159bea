package geometry

import (
	"math"
	"testing"
)

func TestToDocumentSpace(t *testing.T) {
	cases := []struct {
		name     string
		px, py   float64
		origin   Point
		scale    float64
		expected Point
	}{
		{
			name:     "no zoom no offset",
			px:       100, py: 50,
			origin:   Point{},
			scale:    1,
			expected: Point{X: 100, Y: 50},
		},
		{
			name:     "offset origin",
			px:       120, py: 80,
			origin:   Point{X: 20, Y: 30},
			scale:    1,
			expected: Point{X: 100, Y: 50},
		},
		{
			name:     "zoomed in",
			px:       150, py: 150,
			origin:   Point{X: 20, Y: 20},
			scale:    1.5,
			expected: Point{X: 130 / 1.5, Y: 130 / 1.5},
		},
		{
			name:     "zoomed out",
			px:       50, py: 25,
			origin:   Point{},
			scale:    0.5,
			expected: Point{X: 100, Y: 50},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDocumentSpace(tc.px, tc.py, tc.origin, tc.scale)
			if math.Abs(got.X-tc.expected.X) > 1e-9 || math.Abs(got.Y-tc.expected.Y) > 1e-9 {
				t.Fatalf("expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}

func TestApplyDelta(t *testing.T) {
	x, y := ApplyDelta(10, 20, 30, -15, 1.5)
	if x != 30 || y != 10 {
		t.Fatalf("expected (30, 10), got (%v, %v)", x, y)
	}
}

func TestApplyDeltaInverse(t *testing.T) {
	const startX, startY = 86.5, 42.25
	deltas := []struct{ dx, dy float64 }{
		{13, -7},
		{-100.5, 33.25},
		{0.125, 1048576},
	}

	for _, d := range deltas {
		x, y := ApplyDelta(startX, startY, d.dx, d.dy, 2)
		x, y = ApplyDelta(x, y, -d.dx, -d.dy, 2)
		if x != startX || y != startY {
			t.Fatalf("delta (%v, %v) did not invert exactly: got (%v, %v)", d.dx, d.dy, x, y)
		}
	}
}
