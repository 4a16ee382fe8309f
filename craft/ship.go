// Package craft implements the player ship: hit points, steering intents and its silhouette,
// which is drawn both on screen and into the collision surface.
package craft

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/racer796/fov"
	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/parameter/visual"
	"github.com/lixenwraith/racer796/sprite"
	"github.com/lixenwraith/racer796/vmath"
)

// Ship is the player craft
// Move and Rotate record intents that the next Tick consumes
type Ship struct {
	view  *fov.FieldOfView
	sheet image.Image

	angle float64
	scale float64
	hp    int

	moveX, moveY int
	lastMoveX    int
	rotate       bool

	waveAngle float64
	offsetY   float64
}

// New creates a ship steering the given viewport
func New(view *fov.FieldOfView) *Ship {
	s := &Ship{view: view}
	s.Reset()
	return s
}

// SetSheet attaches the sprite sheet; nil falls back to the painted hull
func (s *Ship) SetSheet(sheet image.Image) {
	s.sheet = sheet
}

// Reset restores a fresh ship
func (s *Ship) Reset() {
	s.hp = parameter.ShipMaxHP
	s.angle = 0
	s.scale = parameter.ShipScale
	s.moveX, s.moveY, s.lastMoveX = 0, 0, 0
	s.rotate = false
	s.waveAngle = 0
	s.offsetY = 0
}

// HP returns the remaining hit points
func (s *Ship) HP() int { return s.hp }

// Angle returns the current bank angle in degrees
func (s *Ship) Angle() float64 { return s.angle }

// Damage removes hit points, never below zero
func (s *Ship) Damage(hp int) {
	s.hp = max(0, s.hp-hp)
}

// Move records a steering intent; only the sign of each axis is kept
func (s *Ship) Move(dx, dy float64) {
	s.moveX = int(vmath.Sign(dx))
	s.moveY = int(vmath.Sign(dy))
}

// Rotate requests a barrel roll toward the last steering direction
func (s *Ship) Rotate() {
	s.rotate = true
}

// Tick applies the pending intents and advances the hover wave
func (s *Ship) Tick() {
	if s.moveX != 0 || s.moveY != 0 {
		s.view.MoveNearRect(
			float64(parameter.ShipMoveStep*s.moveX),
			float64(parameter.ShipMoveStep*s.moveY),
		)
	}

	switch {
	case s.rotate:
		dir := s.lastMoveX
		if dir == 0 {
			dir = s.moveX
		}
		if dir == 0 {
			dir = 1
		}
		s.angle = vmath.Clamp(s.angle-parameter.ShipAngleStep*float64(dir),
			-parameter.ShipFlipMaxAngle, parameter.ShipFlipMaxAngle)

	case s.moveX != 0 && math.Abs(s.angle) <= parameter.ShipTurnMaxAngle:
		s.angle = vmath.Clamp(s.angle-parameter.ShipAngleStep*float64(s.moveX),
			-parameter.ShipTurnMaxAngle, parameter.ShipTurnMaxAngle)
		s.lastMoveX = s.moveX

	case s.angle != 0:
		// Ease back to level
		s.angle -= parameter.ShipAngleStep * vmath.Sign(s.angle)
	}

	s.moveX, s.moveY = 0, 0
	s.rotate = false

	s.waveAngle = math.Mod(s.waveAngle+parameter.ShipWaveAngleStep, 360)
	s.offsetY = math.Round(math.Sin(s.waveAngle*math.Pi/180) * parameter.ShipWaveShiftLength)
}

// Bounds returns the on-screen box of the ship: top-left corner and edge size
// The ship follows the viewport shift at a fraction of its magnitude
func (s *Ship) Bounds() (x, y, size float64) {
	near := s.view.NearRect()
	size = math.Floor(parameter.ShipSpriteSize * s.scale)
	half := float64(int(size) >> 1)

	cx := float64(parameter.ScreenWidth >> 1)
	cy := float64(parameter.ScreenHeight >> 1)
	shiftX := math.Round((cx - (near.Left + float64(int(near.Width)>>1))) * parameter.ShipMoveToFOVCoefficient)
	shiftY := math.Round((cy - (near.Top + float64(int(near.Height)>>1))) * parameter.ShipMoveToFOVCoefficient)

	x = cx + shiftX - half
	y = cy + shiftY + parameter.ShipShiftY - half + s.offsetY
	return x, y, size
}

// Render draws the ship for an animation frame
func (s *Ship) Render(dc *gg.Context, frame int) {
	x, y, size := s.Bounds()
	blink := (frame / parameter.ShipBlinkDuration) % 2

	if s.sheet != nil {
		src := sprite.Cell(s.sheet, s.spriteColumn(), blink, parameter.ShipSpriteSize)
		sprite.Draw(dc, s.sheet, src, x, y, size, size)
		return
	}
	s.paintHull(dc, x+size/2, y+size/2, size, blink)
}

// spriteColumn picks the sheet column whose angle is closest to the current bank
func (s *Ship) spriteColumn() int {
	best, bestDelta := 0, math.MaxFloat64
	for _, a := range parameter.ShipAngleSprites {
		if d := math.Abs(s.angle - a.Angle); d < bestDelta {
			best, bestDelta = a.Column, d
		}
	}
	return best
}

// paintHull draws the ship seen from behind, banked by the current angle
func (s *Ship) paintHull(dc *gg.Context, cx, cy, size float64, blink int) {
	u := size / 10

	dc.Push()
	defer dc.Pop()
	dc.RotateAbout(gg.Radians(-s.angle), cx, cy)

	// Wings and body
	dc.SetColor(visual.RgbShipHull)
	dc.MoveTo(cx-4.5*u, cy+1*u)
	dc.LineTo(cx-1.5*u, cy-1.5*u)
	dc.LineTo(cx+1.5*u, cy-1.5*u)
	dc.LineTo(cx+4.5*u, cy+1*u)
	dc.LineTo(cx+2*u, cy+2*u)
	dc.LineTo(cx-2*u, cy+2*u)
	dc.ClosePath()
	dc.Fill()

	dc.SetColor(visual.RgbShipCanopy)
	dc.DrawEllipse(cx, cy-0.6*u, 1.2*u, 0.7*u)
	dc.Fill()

	// Engines
	dc.SetColor(visual.RgbShipFlame[blink])
	dc.DrawCircle(cx-1.2*u, cy+1.8*u, 0.5*u)
	dc.DrawCircle(cx+1.2*u, cy+1.8*u, 0.5*u)
	dc.Fill()
}
