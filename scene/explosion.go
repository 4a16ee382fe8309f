package scene

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/parameter/visual"
	"github.com/lixenwraith/racer796/sprite"
)

// Explosion is a short animation at a collision area
type Explosion struct {
	x, y  float64
	size  float64
	sheet image.Image

	frame int
	ticks int
}

// NewExplosion creates an explosion centered at x, y; scale is clamped from below
func NewExplosion(x, y int, scale float64, sheet image.Image) *Explosion {
	scale = max(parameter.ExplosionMinScale, scale)
	return &Explosion{
		x:     float64(x),
		y:     float64(y),
		size:  math.Floor(parameter.ExplosionSize * scale),
		sheet: sheet,
	}
}

// Tick advances the animation
func (e *Explosion) Tick() {
	e.ticks++
	if e.ticks%parameter.ExplosionFrameDuration == 0 {
		e.frame++
	}
}

// Done reports whether every frame was shown
func (e *Explosion) Done() bool {
	return e.frame >= parameter.ExplosionSprites
}

// Size returns the rendered edge length
func (e *Explosion) Size() float64 {
	return e.size
}

// Render draws the current frame
func (e *Explosion) Render(dc *gg.Context, frame int) {
	if e.Done() {
		return
	}
	half := float64(int(e.size) >> 1)

	if e.sheet != nil {
		src := sprite.Cell(e.sheet, e.frame, 0, parameter.ExplosionSize)
		sprite.Draw(dc, e.sheet, src, e.x-half, e.y-half, e.size, e.size)
		return
	}

	// Expanding fireball fading from core to embers
	t := float64(e.frame+1) / parameter.ExplosionSprites
	n := len(visual.RgbExplosion)
	for i := n - 1; i >= 0; i-- {
		c := visual.RgbExplosion[i]
		r := half * t * float64(i+1) / float64(n)
		alpha := int(255 * (1 - t*0.7))
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), alpha)
		dc.DrawCircle(e.x, e.y, r)
		dc.Fill()
	}
}
