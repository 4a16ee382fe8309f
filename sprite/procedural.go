package sprite

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/parameter/visual"
)

// Lane geometry of the procedural barriers at scale 1
const (
	laneWidth  = int(parameter.ScreenWidth*parameter.NearRectScale) >> 2
	rowHeight  = parameter.BarriersLineHeight
	trackWidth = laneWidth * 4
	postWidth  = 30
	gateWidth  = 250
)

// buildingHeights sizes the side building images by atlas index
var buildingHeights = map[int]int{0: 160, 1: 200, 2: 140, 3: 220, 4: 180, 8: 240}

// Procedural paints a complete wall atlas with gg, used when no sprite directory is configured
// Barrier images are laid out so their opaque pixels cover the lane cells of the catalog shapes
func Procedural() Images {
	imgs := make(Images, parameter.WallImageCount)

	for idx, h := range buildingHeights {
		imgs[idx] = building(idx, h)
	}

	imgs[5] = beam(0, visual.RgbBarrier, false)
	imgs[6] = strip(2, func(dc *gg.Context, frame int) {
		paintBeam(dc, 1, visual.RgbBarrier, frame == 1)
	}, trackWidth, rowHeight*3)
	imgs[7] = block()
	imgs[9] = gate(rowHeight * 2)
	imgs[10] = gate(rowHeight * 3)
	imgs[11] = groundWall()
	imgs[12] = strip(3, trafficLights, trackWidth, 220)
	imgs[13] = finishLine()

	return imgs
}

func building(idx, h int) image.Image {
	const w = 100
	dc := gg.NewContext(w, h)

	base := visual.RgbBuildings[idx%len(visual.RgbBuildings)]
	dc.SetColor(base)
	dc.DrawRectangle(0, 0, w, float64(h))
	dc.Fill()

	dc.SetColor(visual.RgbBorder)
	dc.SetLineWidth(2)
	dc.DrawRectangle(1, 1, w-2, float64(h-2))
	dc.Stroke()

	lit := visual.RgbFloorLights[idx%len(visual.RgbFloorLights)]
	for y := 12; y+10 < h; y += 20 {
		for x := 12; x+12 < w; x += 22 {
			if (x/22+y/20+idx)%3 == 0 {
				dc.SetColor(lit)
			} else {
				dc.SetColor(visual.RgbShadow)
			}
			dc.DrawRectangle(float64(x), float64(y), 12, 10)
			dc.Fill()
		}
	}
	return dc.Image()
}

// beam paints a full-width bar on one lane row of a three-row image
func beam(row int, c color.RGBA, lit bool) image.Image {
	dc := gg.NewContext(trackWidth, rowHeight*3)
	paintBeam(dc, row, c, lit)
	return dc.Image()
}

func paintBeam(dc *gg.Context, row int, c color.RGBA, lit bool) {
	y := float64(row * rowHeight)
	dc.SetColor(c)
	dc.DrawRectangle(0, y, float64(trackWidth), rowHeight)
	dc.Fill()

	dc.SetColor(visual.RgbBorder)
	for x := 0; x < trackWidth; x += 48 {
		dc.DrawRectangle(float64(x), y+rowHeight/2-3, 24, 6)
	}
	dc.Fill()

	if lit {
		dc.SetColor(visual.RgbFloorLights[0])
		for x := 24; x < trackWidth; x += 48 {
			dc.DrawCircle(float64(x)+12, y+rowHeight/2, 4)
		}
		dc.Fill()
	}
}

// strip paints n frames side by side
func strip(n int, paint func(dc *gg.Context, frame int), w, h int) image.Image {
	dc := gg.NewContext(w*n, h)
	for i := range n {
		dc.Push()
		dc.Translate(float64(i*w), 0)
		dc.DrawRectangle(0, 0, float64(w), float64(h))
		dc.Clip()
		paint(dc, i)
		dc.ResetClip()
		dc.Pop()
	}
	return dc.Image()
}

func block() image.Image {
	w := laneWidth - 20
	dc := gg.NewContext(w, rowHeight)
	dc.SetColor(visual.RgbBarrier)
	dc.DrawRoundedRectangle(0, 0, float64(w), rowHeight, 6)
	dc.Fill()
	dc.SetColor(visual.RgbWhite)
	dc.DrawRectangle(6, rowHeight/2-4, float64(w-12), 8)
	dc.Fill()
	return dc.Image()
}

// gate is a post on the left with a beam across the top row of the image
func gate(h int) image.Image {
	dc := gg.NewContext(gateWidth, h)
	dc.SetColor(visual.RgbBuildings[1])
	dc.DrawRectangle(0, 0, postWidth, float64(h))
	dc.Fill()

	dc.SetColor(visual.RgbBarrier)
	dc.DrawRectangle(0, 0, gateWidth, rowHeight)
	dc.Fill()

	dc.SetColor(visual.RgbWhite)
	for x := postWidth + 10; x+20 < gateWidth; x += 40 {
		dc.DrawRectangle(float64(x), rowHeight/2-4, 20, 8)
	}
	dc.Fill()
	return dc.Image()
}

func groundWall() image.Image {
	dc := gg.NewContext(gateWidth, rowHeight)
	dc.SetColor(visual.RgbBuildings[0])
	dc.DrawRectangle(0, 0, gateWidth, rowHeight)
	dc.Fill()
	dc.SetColor(visual.RgbBorder)
	for y := 0; y < rowHeight; y += 15 {
		dc.DrawLine(0, float64(y), gateWidth, float64(y))
	}
	dc.SetLineWidth(1)
	dc.Stroke()
	return dc.Image()
}

// trafficLights lights one lamp per frame: red, yellow, green
func trafficLights(dc *gg.Context, frame int) {
	lamps := [3]color.RGBA{{0xff, 0x22, 0x22, 255}, {0xff, 0xdd, 0x22, 255}, {0x22, 0xff, 0x44, 255}}

	dc.SetColor(visual.RgbBorder)
	dc.DrawRectangle(float64(trackWidth/2-60), 0, 120, 36)
	dc.Fill()

	for i, c := range lamps {
		if i != frame {
			c = Scale(c, 0.25)
		}
		dc.SetColor(c)
		dc.DrawCircle(float64(trackWidth/2-36+i*36), 18, 12)
		dc.Fill()
	}
}

func finishLine() image.Image {
	const h, band, square = 220, 36, 12
	dc := gg.NewContext(trackWidth, h)
	for y := 0; y < band; y += square {
		for x := 0; x < trackWidth; x += square {
			if (x/square+y/square)%2 == 0 {
				dc.SetColor(visual.RgbWhite)
			} else {
				dc.SetColor(visual.RgbBlack)
			}
			dc.DrawRectangle(float64(x), float64(y), square, square)
			dc.Fill()
		}
	}
	return dc.Image()
}
