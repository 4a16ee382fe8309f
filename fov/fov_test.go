package fov

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestFarNotLargerThanNear(t *testing.T) {
	f := NewDefault()
	far, near := f.FarRect(), f.NearRect()
	if far.Width > near.Width || far.Height > near.Height {
		t.Fatalf("far %vx%v larger than near %vx%v", far.Width, far.Height, near.Width, near.Height)
	}

	// Shifts never change sizes
	f.MoveNearRect(500, -500)
	f.MoveFarRect(-1000, 1000)
	if f.FarRect().Width != far.Width || f.NearRect().Height != near.Height {
		t.Error("shifting changed rectangle size")
	}
}

func TestNearShiftClamped(t *testing.T) {
	limits := DefaultShiftLimits()
	f := NewDefault()
	base := f.NearRect()
	rng := rand.New(rand.NewPCG(7, 96))

	for i := 0; i < 2000; i++ {
		dx := (rng.Float64() - 0.5) * 1000
		dy := (rng.Float64() - 0.5) * 1000
		f.MoveNearRect(dx, dy)

		sx, sy := f.NearShift()
		if sx < limits.Left || sx > limits.Right {
			t.Fatalf("step %d: shiftX %f outside [%f,%f]", i, sx, limits.Left, limits.Right)
		}
		if sy < limits.Top || sy > limits.Bottom {
			t.Fatalf("step %d: shiftY %f outside [%f,%f]", i, sy, limits.Top, limits.Bottom)
		}
		if got := f.NearRect().Left - base.Left; math.Abs(got-sx) > 1e-9 {
			t.Fatalf("step %d: rect shift %f != reported %f", i, got, sx)
		}
	}

	// Saturate in both directions
	f.MoveNearRect(1e9, 1e9)
	if sx, sy := f.NearShift(); sx != limits.Right || sy != limits.Bottom {
		t.Errorf("saturated shift = (%f,%f), want (%f,%f)", sx, sy, limits.Right, limits.Bottom)
	}
	f.MoveNearRect(-1e9, -1e9)
	if sx, sy := f.NearShift(); sx != limits.Left || sy != limits.Top {
		t.Errorf("saturated shift = (%f,%f), want (%f,%f)", sx, sy, limits.Left, limits.Top)
	}
}

func TestFarShiftUnclamped(t *testing.T) {
	f := NewDefault()
	base := f.FarRect()
	f.MoveFarRect(1000, -1000)
	got := f.FarRect()
	if got.Left-base.Left != 1000 || got.Top-base.Top != -1000 {
		t.Errorf("far shift = (%f,%f), want (1000,-1000)", got.Left-base.Left, got.Top-base.Top)
	}
}

func TestResetIdempotent(t *testing.T) {
	f := NewDefault()
	f.MoveNearRect(30, -20)
	f.MoveFarRect(5, 5)

	f.Reset()
	near1, far1 := f.NearRect(), f.FarRect()
	f.Reset()
	near2, far2 := f.NearRect(), f.FarRect()

	if near1 != near2 || far1 != far2 {
		t.Errorf("double reset differs: %v/%v vs %v/%v", near1, far1, near2, far2)
	}
	if near1 != NewDefault().NearRect() {
		t.Errorf("reset near %v != fresh %v", near1, NewDefault().NearRect())
	}
}

func TestChangeNotification(t *testing.T) {
	f := NewDefault()
	calls := 0
	f.OnChange(func() { calls++ })

	f.MoveNearRect(1, 0)
	f.MoveFarRect(0, 1)
	if calls != 2 {
		t.Errorf("listener calls = %d, want 2", calls)
	}

	// Reset does not notify
	f.Reset()
	if calls != 2 {
		t.Errorf("listener calls after reset = %d, want 2", calls)
	}
}
