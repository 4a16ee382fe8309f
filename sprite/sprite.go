// Package sprite draws sprite sheets into gg raster contexts and provides the image atlases
// the renderers read from.
package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Atlas maps image indexes to sprite sheets
type Atlas interface {
	// Image returns the sheet at index or nil when it is not loaded
	Image(index int) image.Image
}

// Images is a slice-backed Atlas
type Images []image.Image

// Image implements Atlas
func (s Images) Image(index int) image.Image {
	if index < 0 || index >= len(s) {
		return nil
	}
	return s[index]
}

// Frame returns the rectangle of frame i of a horizontal strip of n frames
func Frame(img image.Image, i, n int) image.Rectangle {
	b := img.Bounds()
	if n < 1 {
		n = 1
	}
	w := b.Dx() / n
	return image.Rect(b.Min.X+i*w, b.Min.Y, b.Min.X+(i+1)*w, b.Max.Y)
}

// Cell returns the rectangle of the sprite at column col and row row of a grid of size x size cells
func Cell(img image.Image, col, row, size int) image.Rectangle {
	b := img.Bounds()
	x := b.Min.X + col*size
	y := b.Min.Y + row*size
	return image.Rect(x, y, x+size, y+size)
}

// Flip mirrors an image horizontally
func Flip(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	s2d := f64.Aff3{
		-1, 0, float64(b.Max.X),
		0, 1, float64(-b.Min.Y),
	}
	xdraw.NearestNeighbor.Transform(out, s2d, img, b, xdraw.Src, nil)
	return out
}

// Draw scales the src region of img into the destination box, composited over the context image
func Draw(dc *gg.Context, img image.Image, src image.Rectangle, x, y, w, h float64) {
	DrawShaded(dc, img, src, x, y, w, h, 1)
}

// DrawShaded draws like Draw with color channels multiplied by brightness in [0,1]
func DrawShaded(dc *gg.Context, img image.Image, src image.Rectangle, x, y, w, h, brightness float64) {
	dst, ok := dc.Image().(xdraw.Image)
	if !ok || img == nil {
		return
	}

	r := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
	if r.Empty() || !r.Overlaps(dst.Bounds()) {
		return
	}

	if brightness >= 1 {
		xdraw.ApproxBiLinear.Scale(dst, r, img, src, xdraw.Over, nil)
		return
	}

	scratch := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.ApproxBiLinear.Scale(scratch, scratch.Bounds(), img, src, xdraw.Src, nil)
	Shade(scratch, brightness)
	xdraw.Draw(dst, r, scratch, image.Point{}, xdraw.Over)
}

// Shade multiplies the color channels of a premultiplied image, leaving alpha intact
func Shade(img *image.RGBA, brightness float64) {
	b := max(0, min(1, brightness))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(float64(img.Pix[i]) * b)
		img.Pix[i+1] = uint8(float64(img.Pix[i+1]) * b)
		img.Pix[i+2] = uint8(float64(img.Pix[i+2]) * b)
	}
}

// Scale multiplies the color channels of c by brightness in [0,1]
func Scale(c color.RGBA, brightness float64) color.RGBA {
	b := max(0, min(1, brightness))
	return color.RGBA{
		R: uint8(float64(c.R) * b),
		G: uint8(float64(c.G) * b),
		B: uint8(float64(c.B) * b),
		A: c.A,
	}
}
