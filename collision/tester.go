// Package collision tests pixel overlap between the craft silhouette and an obstacle silhouette.
// Both shapes are painted into an offscreen raster; the obstacle alpha masks the craft draw
// (source-in) and the surviving opaque pixels are the overlap.
package collision

import (
	"image"
	"slices"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/racer796/parameter"
)

// Painter draws a shape into a raster context
type Painter func(dc *gg.Context)

// Drawable is anything that renders itself for a given animation frame
type Drawable interface {
	Render(dc *gg.Context, frame int)
}

// Area is one collision bucket
// X, Y is the bucket center, Strength in [0,1] is the opaque overlap density
type Area struct {
	X, Y     int
	Strength float64
}

// Tester owns the offscreen surfaces; reused across calls, not safe for concurrent use
type Tester struct {
	bounds image.Rectangle

	surface *image.RGBA // obstacle layer, then composite result
	layer   *image.RGBA // craft layer
	mask    *image.Alpha

	surfaceDC *gg.Context
	layerDC   *gg.Context

	cellSize  int
	minPixels int
	opaque    uint8
}

// NewTester creates a tester with a surface of the given size
func NewTester(width, height int) *Tester {
	bounds := image.Rect(0, 0, width, height)
	surface := image.NewRGBA(bounds)
	layer := image.NewRGBA(bounds)

	return &Tester{
		bounds:    bounds,
		surface:   surface,
		layer:     layer,
		mask:      image.NewAlpha(bounds),
		surfaceDC: gg.NewContextForRGBA(surface),
		layerDC:   gg.NewContextForRGBA(layer),
		cellSize:  parameter.CollisionAreaSize,
		minPixels: parameter.CollisionAreaMinPixels,
		opaque:    parameter.CollisionOpaqueAlpha,
	}
}

// NewDefaultTester creates a tester sized to the screen raster
func NewDefaultTester() *Tester {
	return NewTester(parameter.ScreenWidth, parameter.ScreenHeight)
}

// TestCoins reports whether the craft overlaps the painted coins by more than a few pixels
func (t *Tester) TestCoins(coins Painter, craft Drawable, frame int) bool {
	t.composite(coins, craft, frame)

	count := 0
	pix := t.surface.Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] >= t.opaque {
			count++
		}
	}
	return count > parameter.CollisionCoinMinPixels
}

// TestBarrier buckets the overlap into square cells and returns every cell dense enough to count
// Areas are ordered top-to-bottom, left-to-right
func (t *Tester) TestBarrier(barrier Painter, craft Drawable, frame int) []Area {
	t.composite(barrier, craft, frame)

	half := t.cellSize >> 1
	cells := make(map[image.Point]int)

	w := t.bounds.Dx()
	pix := t.surface.Pix
	stride := t.surface.Stride
	for y := 0; y < t.bounds.Dy(); y++ {
		row := pix[y*stride : y*stride+w*4]
		for x := 0; x < w; x++ {
			if row[x*4+3] < t.opaque {
				continue
			}
			key := image.Point{
				X: (x/t.cellSize)*t.cellSize + half,
				Y: (y/t.cellSize)*t.cellSize + half,
			}
			cells[key]++
		}
	}

	cellArea := float64(t.cellSize * t.cellSize)
	out := make([]Area, 0, len(cells))
	for p, n := range cells {
		if n < t.minPixels {
			continue
		}
		out = append(out, Area{X: p.X, Y: p.Y, Strength: min(1, float64(n)/cellArea)})
	}

	slices.SortFunc(out, func(a, b Area) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// composite leaves craft pixels only where the obstacle has content
func (t *Tester) composite(obstacle Painter, craft Drawable, frame int) {
	clear(t.surface.Pix)
	clear(t.layer.Pix)

	t.surfaceDC.Push()
	obstacle(t.surfaceDC)
	t.surfaceDC.Pop()

	t.layerDC.Push()
	craft.Render(t.layerDC, frame)
	t.layerDC.Pop()

	xdraw.Draw(t.mask, t.bounds, t.surface, image.Point{}, xdraw.Src)

	clear(t.surface.Pix)
	xdraw.DrawMask(t.surface, t.bounds, t.layer, image.Point{}, t.mask, image.Point{}, xdraw.Src)
}
