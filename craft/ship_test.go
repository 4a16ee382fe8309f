package craft

import (
	"image"
	"testing"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/racer796/fov"
	"github.com/lixenwraith/racer796/parameter"
)

func TestDamageClampsAtZero(t *testing.T) {
	s := New(fov.NewDefault())

	s.Damage(30)
	if s.HP() != parameter.ShipMaxHP-30 {
		t.Errorf("HP = %d, want %d", s.HP(), parameter.ShipMaxHP-30)
	}

	s.Damage(1000)
	if s.HP() != 0 {
		t.Errorf("HP = %d, want 0", s.HP())
	}

	s.Reset()
	if s.HP() != parameter.ShipMaxHP {
		t.Errorf("HP after reset = %d, want %d", s.HP(), parameter.ShipMaxHP)
	}
}

func TestMoveShiftsViewport(t *testing.T) {
	view := fov.NewDefault()
	s := New(view)

	s.Move(3, -0.5)
	s.Tick()

	x, y := view.NearShift()
	if x != parameter.ShipMoveStep || y != -parameter.ShipMoveStep {
		t.Errorf("near shift = (%v,%v), want (%d,%d)", x, y, parameter.ShipMoveStep, -parameter.ShipMoveStep)
	}

	// Intent is consumed by the tick
	s.Tick()
	if x2, y2 := view.NearShift(); x2 != x || y2 != y {
		t.Errorf("shift changed without intent: (%v,%v)", x2, y2)
	}
}

func TestTurnAngleLimits(t *testing.T) {
	s := New(fov.NewDefault())

	for range 10 {
		s.Move(1, 0)
		s.Tick()
	}
	if s.Angle() != -parameter.ShipTurnMaxAngle {
		t.Errorf("angle = %v, want %v", s.Angle(), -parameter.ShipTurnMaxAngle)
	}

	// Released stick levels out one step per tick
	s.Tick()
	if s.Angle() != -parameter.ShipTurnMaxAngle+parameter.ShipAngleStep {
		t.Errorf("angle = %v after release", s.Angle())
	}
	for range 10 {
		s.Tick()
	}
	if s.Angle() != 0 {
		t.Errorf("angle = %v, want level", s.Angle())
	}
}

func TestRotateFlipsTowardLastDirection(t *testing.T) {
	s := New(fov.NewDefault())

	s.Move(-1, 0)
	s.Tick()
	for range 20 {
		s.Rotate()
		s.Tick()
	}
	if s.Angle() != parameter.ShipFlipMaxAngle {
		t.Errorf("angle = %v, want %v", s.Angle(), parameter.ShipFlipMaxAngle)
	}
}

func TestRenderPaintsInsideBounds(t *testing.T) {
	s := New(fov.NewDefault())
	dc := gg.NewContext(parameter.ScreenWidth, parameter.ScreenHeight)

	s.Render(dc, 0)

	x, y, size := s.Bounds()
	img := dc.Image().(*image.RGBA)
	inside, outside := 0, 0
	b := img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			if img.RGBAAt(px, py).A == 0 {
				continue
			}
			if float64(px) >= x && float64(px) < x+size && float64(py) >= y && float64(py) < y+size {
				inside++
			} else {
				outside++
			}
		}
	}
	if inside == 0 {
		t.Error("ship painted nothing")
	}
	if outside != 0 {
		t.Errorf("%d pixels painted outside the ship bounds", outside)
	}
}
