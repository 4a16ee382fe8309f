package scene

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/parameter/visual"
	"github.com/lixenwraith/racer796/track"
)

const starCount = 80

type star struct {
	x, y  float64
	shade color.RGBA
}

// Background is the sky behind the track, scrolled by the distance flown
type Background struct {
	position *track.Position
	stars    []star
}

// NewBackground creates the sky with a fixed star layout
func NewBackground(position *track.Position) *Background {
	rng := rand.New(rand.NewPCG(796, 796))
	stars := make([]star, starCount)
	for i := range stars {
		v := uint8(96 + rng.IntN(160))
		stars[i] = star{
			x:     float64(rng.IntN(parameter.ScreenWidth)),
			y:     float64(rng.IntN(parameter.ScreenHeight)),
			shade: color.RGBA{v, v, v, 255},
		}
	}
	return &Background{position: position, stars: stars}
}

// Render fills the screen and draws the stars
func (b *Background) Render(dc *gg.Context, frame int) {
	dc.SetColor(visual.RgbBackground)
	dc.Clear()

	offset := math.Floor(float64(b.position.Value()) * parameter.BackgroundShiftStep)
	for _, s := range b.stars {
		y := math.Mod(s.y+offset, parameter.ScreenHeight)
		dc.SetColor(s.shade)
		dc.SetPixel(int(s.x), int(y))
	}
}
