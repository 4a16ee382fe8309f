// Package scene holds the presentation items the game composes around the walls: background,
// floor, explosions, the top bar and banner texts. Each item ticks with the simulation and
// renders into the frame raster.
package scene

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/racer796/fov"
	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/parameter/visual"
	"github.com/lixenwraith/racer796/track"
	"github.com/lixenwraith/racer796/vmath"
)

type floorLine struct {
	index  int
	y      float64
	height float64
	scale  float64 // eased
}

// Floor draws the scrolling track surface with its edge lights
type Floor struct {
	view     *fov.FieldOfView
	position *track.Position
	lines    []floorLine
}

// NewFloor creates the floor and projects its lines
func NewFloor(view *fov.FieldOfView, position *track.Position) *Floor {
	f := &Floor{view: view, position: position}
	f.calc()
	return f
}

// Tick reprojects the stripes for the current position
func (f *Floor) Tick() {
	f.calc()
}

func (f *Floor) calc() {
	far := f.view.FarRect()
	near := f.view.NearRect()
	startY := math.Ceil(far.Bottom)
	fovHeight := math.Ceil(near.Bottom - startY)
	offset := f.position.Value() % (parameter.FloorLineLength << 1)

	line := func(n int) floorLine {
		depth := float64(parameter.FloorLineLength*n+offset) / parameter.FOVLength
		scale := vmath.EaseInExpo(depth)
		return floorLine{index: n, y: math.Floor(startY + scale*fovHeight), scale: scale}
	}

	f.lines = f.lines[:0]
	for n := 0; n <= parameter.FloorLineCount; n++ {
		l := line(n)
		l.height = line(n+1).y - l.y
		f.lines = append(f.lines, l)
	}
}

// Render draws horizon, stripes, side shadows and the light rays
func (f *Floor) Render(dc *gg.Context, frame int) {
	far := f.view.FarRect()
	near := f.view.NearRect()

	dc.SetColor(visual.RgbBlack)
	dc.DrawRectangle(0, far.Bottom-parameter.FloorHorizonHeight, parameter.ScreenWidth, parameter.FloorHorizonHeight)
	dc.Fill()

	for _, l := range f.lines {
		dc.SetColor(visual.RgbFloorLines[l.index%len(visual.RgbFloorLines)])
		dc.DrawRectangle(0, l.y, parameter.ScreenWidth, l.height)
		dc.Fill()
	}

	f.shadow(dc, far.Left, near.Left, far, near)
	f.shadow(dc, far.Right, near.Right, far, near)

	for _, pos := range []float64{0, 0.25, 0.5, 0.75, 1} {
		f.ray(dc, pos, far, near)
	}
}

func (f *Floor) shadow(dc *gg.Context, farX, nearX float64, far, near fov.Rect) {
	dx := (farX - nearX) * 2
	dy := (far.Bottom - near.Bottom) * 2

	dc.SetColor(visual.RgbShadow)
	dc.MoveTo(farX, far.Bottom)
	dc.LineTo(farX-dx, far.Bottom-dy)
	dc.LineTo(farX-dx, far.Bottom)
	dc.ClosePath()
	dc.Fill()
}

func (f *Floor) ray(dc *gg.Context, pos float64, far, near fov.Rect) {
	x1 := far.Left + far.Width*pos
	x2 := near.Left + near.Width*pos
	dx := x2 - x1

	for _, l := range f.lines {
		width := parameter.FloorLightSize * l.scale
		alpha := min(1, width)
		width = min(parameter.FloorLightSize, max(1, math.Round(width)))
		half := float64(int(width) >> 1)

		c := visual.RgbFloorLights[l.index%len(visual.RgbFloorLights)]
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(alpha*255))
		dc.DrawRectangle(x1+dx*l.scale-half, l.y-half, width, width)
		dc.Fill()
	}
}
