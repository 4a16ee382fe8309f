package collision

import (
	"math"
	"testing"

	"github.com/fogleman/gg"
)

// square is a solid craft silhouette
type square struct {
	x, y, size float64
	renders    int
}

func (s *square) Render(dc *gg.Context, frame int) {
	s.renders++
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(s.x, s.y, s.size, s.size)
	dc.Fill()
}

func solidRect(x, y, w, h float64) Painter {
	return func(dc *gg.Context) {
		dc.SetRGB(1, 0, 0)
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
	}
}

func TestBarrierStrengthSolidSquare(t *testing.T) {
	tr := NewTester(320, 240)

	cases := []struct {
		name string
		x, y float64
		size float64
		cx   int
		cy   int
	}{
		{"quarter", 100, 100, 10, 110, 110},
		{"full cell", 40, 40, 20, 50, 50},
		{"small", 201, 63, 5, 210, 70},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			craft := &square{x: tc.x, y: tc.y, size: tc.size}
			areas := tr.TestBarrier(solidRect(0, 0, 320, 240), craft, 0)

			if len(areas) != 1 {
				t.Fatalf("got %d areas, want 1: %+v", len(areas), areas)
			}
			a := areas[0]
			if a.X != tc.cx || a.Y != tc.cy {
				t.Errorf("area center = (%d,%d), want (%d,%d)", a.X, a.Y, tc.cx, tc.cy)
			}
			want := math.Min(1, tc.size*tc.size/400)
			if math.Abs(a.Strength-want) > 1e-9 {
				t.Errorf("strength = %f, want %f", a.Strength, want)
			}
		})
	}
}

func TestBarrierNoOverlap(t *testing.T) {
	tr := NewTester(320, 240)
	craft := &square{x: 200, y: 200, size: 20}

	areas := tr.TestBarrier(solidRect(0, 0, 100, 100), craft, 0)
	if len(areas) != 0 {
		t.Errorf("got %d areas, want 0: %+v", len(areas), areas)
	}
}

func TestBarrierMultipleAreas(t *testing.T) {
	tr := NewTester(320, 240)
	// Craft spans three cells horizontally, obstacle covers the whole screen
	craft := &square{x: 60, y: 60, size: 20}
	wide := &wideCraft{x: 60, y: 60, w: 60, h: 20}

	if got := tr.TestBarrier(solidRect(0, 0, 320, 240), craft, 0); len(got) != 1 {
		t.Fatalf("square: got %d areas, want 1", len(got))
	}

	areas := tr.TestBarrier(solidRect(0, 0, 320, 240), wide, 0)
	if len(areas) != 3 {
		t.Fatalf("wide: got %d areas, want 3: %+v", len(areas), areas)
	}
	for i, a := range areas {
		if a.Strength != 1 {
			t.Errorf("area %d strength = %f, want 1", i, a.Strength)
		}
		if i > 0 && areas[i-1].X >= a.X {
			t.Errorf("areas not ordered by X: %+v", areas)
		}
	}
}

func TestBarrierBelowMinPixels(t *testing.T) {
	tr := NewTester(320, 240)
	craft := &square{x: 0, y: 0, size: 20}

	// Obstacle overlaps only two pixels of the craft
	areas := tr.TestBarrier(solidRect(0, 0, 2, 1), craft, 0)
	if len(areas) != 0 {
		t.Errorf("got %d areas, want 0: %+v", len(areas), areas)
	}
}

func TestCoinsThreshold(t *testing.T) {
	tr := NewTester(320, 240)
	craft := &square{x: 100, y: 100, size: 20}

	// Four pixels overlap: collected
	if !tr.TestCoins(solidRect(100, 100, 2, 2), craft, 0) {
		t.Error("4 pixel overlap should collect")
	}
	// Three pixels overlap: not collected
	if tr.TestCoins(solidRect(100, 100, 3, 1), craft, 0) {
		t.Error("3 pixel overlap should not collect")
	}
	// No overlap
	if tr.TestCoins(solidRect(0, 0, 10, 10), craft, 0) {
		t.Error("disjoint shapes should not collect")
	}
}

func TestSurfaceReuseIsStateless(t *testing.T) {
	tr := NewTester(320, 240)
	craft := &square{x: 10, y: 10, size: 20}

	first := tr.TestBarrier(solidRect(0, 0, 320, 240), craft, 0)
	_ = tr.TestBarrier(solidRect(0, 0, 15, 15), craft, 0)
	again := tr.TestBarrier(solidRect(0, 0, 320, 240), craft, 0)

	if len(first) != len(again) {
		t.Fatalf("results differ across reuse: %+v vs %+v", first, again)
	}
	for i := range first {
		if first[i] != again[i] {
			t.Errorf("area %d differs: %+v vs %+v", i, first[i], again[i])
		}
	}
	if craft.renders != 3 {
		t.Errorf("craft rendered %d times, want 3", craft.renders)
	}
}

type wideCraft struct {
	x, y, w, h float64
}

func (c *wideCraft) Render(dc *gg.Context, frame int) {
	dc.SetRGB(0, 1, 0)
	dc.DrawRectangle(c.x, c.y, c.w, c.h)
	dc.Fill()
}
