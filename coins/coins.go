// Package coins draws the coin layout of a segment and counts collected coins.
package coins

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/racer796/fov"
	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/parameter/visual"
	"github.com/lixenwraith/racer796/path"
	"github.com/lixenwraith/racer796/sprite"
)

// spinWidth squashes the painted coin per spin frame
var spinWidth = [parameter.CoinSprites]float64{1, 0.6, 0.15, 0.6}

// Display renders one segment's coin grid at a time
// A collected coin floats up and shrinks over its fade steps; the score counts it on the first step
type Display struct {
	view  *fov.FieldOfView
	sheet image.Image

	lineX, lineY float64
	scale        float64
	grid         *path.CoinGrid

	score int
}

// New creates a coin display bound to the viewport
func New(view *fov.FieldOfView) *Display {
	return &Display{view: view, scale: 1}
}

// SetSheet attaches the spin sprite strip; nil falls back to painted coins
func (d *Display) SetSheet(sheet image.Image) {
	d.sheet = sheet
}

// Reset clears the score
func (d *Display) Reset() {
	d.score = 0
}

// Score returns the number of collected coins
func (d *Display) Score() int {
	return d.score
}

// SetProps selects the segment to draw: lane origin at the bottom-left of the track, segment scale
// and its coin grid, which Render mutates in place
func (d *Display) SetProps(lineX, lineY, scale float64, grid *path.CoinGrid) {
	d.lineX = lineX
	d.lineY = lineY
	d.scale = scale
	d.grid = grid
}

// Render draws the first coin of the grid and advances its fade if collected
func (d *Display) Render(dc *gg.Context, frame int) {
	if d.grid == nil {
		return
	}

	near := d.view.NearRect()
	cellWidth := float64(int(near.Width)>>2) * d.scale
	cellHeight := parameter.BarriersLineHeight * d.scale
	size := parameter.CoinSize * d.scale
	spin := (frame / parameter.CoinSpriteDuration) % parameter.CoinSprites

	for r := range d.grid {
		for c := range d.grid[r] {
			cell := &d.grid[r][c]
			if cell.State == path.CoinEmpty {
				continue
			}

			shift, scale := 0.0, 1.0
			if cell.State == path.CoinFading {
				if cell.Step == 0 {
					d.score++
				}
				// value 2 is the first frame after collection
				value := float64(cell.Step + 2)
				shift = value * parameter.CoinFadeoutShift
				scale = max(0, min(1, 1-value/parameter.CoinFadeoutSteps))
				if scale <= 0 {
					return
				}
				cell.Step++
			}

			w := size * scale
			x := d.lineX + float64(c)*cellWidth + float64(int(cellWidth)>>1) - w/2
			y := d.lineY - float64(path.Rows-1-r)*cellHeight - float64(int(cellHeight)>>1) - w/2 - shift
			d.draw(dc, spin, x, y, w)
			return
		}
	}
}

func (d *Display) draw(dc *gg.Context, spin int, x, y, size float64) {
	if d.sheet != nil {
		src := sprite.Frame(d.sheet, spin, parameter.CoinSprites)
		sprite.Draw(dc, d.sheet, src, x, y, size, size)
		return
	}

	dc.Push()
	defer dc.Pop()
	rx := size / 2 * spinWidth[spin]
	dc.SetColor(visual.RgbCoin[0])
	dc.DrawEllipse(x+size/2, y+size/2, max(rx, 0.5), size/2)
	dc.Fill()
	dc.SetColor(visual.RgbCoin[1])
	dc.DrawEllipse(x+size/2, y+size/2, max(rx*0.5, 0.5), size/4)
	dc.Fill()
}
