package visual

import "image/color"

// Palette for everything drawn into the frame raster
var (
	RgbBlack = color.RGBA{0, 0, 0, 255}
	RgbWhite = color.RGBA{255, 255, 255, 255}
	RgbRed   = color.RGBA{255, 0, 0, 255}

	RgbBackground = color.RGBA{0x23, 0x23, 0x31, 255}
	RgbShadow     = color.RGBA{0x2a, 0x2c, 0x34, 255}
	RgbBorder     = color.RGBA{0x14, 0x15, 0x18, 255}

	// Floor stripes alternate, lights alternate per stripe
	RgbFloorLines  = [2]color.RGBA{{0x41, 0x46, 0x4f, 255}, {0x35, 0x39, 0x41, 255}}
	RgbFloorLights = [2]color.RGBA{{0x97, 0xde, 0xff, 255}, {0xa3, 0xff, 0x97, 255}}

	// HP bar colors from empty to full
	RgbHealth = [6]color.RGBA{
		{0xff, 0x00, 0x00, 255},
		{0xff, 0x33, 0x00, 255},
		{0xff, 0x66, 0x00, 255},
		{0xff, 0x99, 0x00, 255},
		{0xff, 0xcc, 0x66, 255},
		{0xff, 0xff, 0x99, 255},
	}

	RgbGameOverText   = [2]color.RGBA{{0xff, 0x00, 0x00, 255}, {0xff, 0x55, 0x00, 255}}
	RgbGameOverShadow = [2]color.RGBA{{0x66, 0x00, 0x00, 255}, {0x99, 0x00, 0x00, 255}}

	RgbFinishText = [4]color.RGBA{
		{0xcc, 0xff, 0xff, 255},
		{0x33, 0xff, 0x99, 255},
		{0xff, 0xff, 0x33, 255},
		{0xff, 0x99, 0xff, 255},
	}
	RgbFinishShadow = [4]color.RGBA{
		{0x99, 0x33, 0x00, 255},
		{0x00, 0x33, 0x99, 255},
		{0x66, 0x00, 0x66, 255},
		{0x00, 0x66, 0x33, 255},
	}

	// Procedural sprites used when no atlas image is attached
	RgbShipHull   = color.RGBA{0xd0, 0xea, 0xff, 255}
	RgbShipCanopy = color.RGBA{0x4d, 0x5d, 0x6c, 255}
	RgbShipFlame  = [2]color.RGBA{{0xff, 0x99, 0x00, 255}, {0xff, 0xff, 0x66, 255}}
	RgbCoin       = [2]color.RGBA{{0xff, 0xd7, 0x00, 255}, {0xff, 0xf3, 0x8a, 255}}
	RgbBuildings  = [3]color.RGBA{{0x8c, 0x97, 0xa6, 255}, {0x6b, 0x75, 0x84, 255}, {0xa9, 0xb3, 0xc0, 255}}
	RgbBarrier    = color.RGBA{0xc0, 0x39, 0x2b, 255}
	RgbExplosion  = [3]color.RGBA{{0xff, 0xff, 0x99, 255}, {0xff, 0x99, 0x00, 255}, {0x99, 0x22, 0x00, 255}}
)
