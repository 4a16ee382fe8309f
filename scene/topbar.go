package scene

import (
	"image"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/parameter/visual"
	"github.com/lixenwraith/racer796/sprite"
)

// HPSource reports craft hit points
type HPSource interface {
	HP() int
}

// ScoreSource reports collected coins
type ScoreSource interface {
	Score() int
}

// TopBar is the HUD: hit point gauge, coin counter and track progress
// The gauge eases toward the craft's hit points instead of jumping
type TopBar struct {
	ship  HPSource
	coins ScoreSource

	coinIcon   image.Image
	finishIcon image.Image

	hp            int
	finishPercent int
}

// NewTopBar creates the HUD; icons may be nil
func NewTopBar(ship HPSource, coins ScoreSource, coinIcon, finishIcon image.Image) *TopBar {
	return &TopBar{ship: ship, coins: coins, coinIcon: coinIcon, finishIcon: finishIcon}
}

// SetIcons replaces the coin and finish icons; nil draws the painted fallback
func (b *TopBar) SetIcons(coinIcon, finishIcon image.Image) {
	b.coinIcon = coinIcon
	b.finishIcon = finishIcon
}

// Reset empties the gauge so it fills up again at flight start
func (b *TopBar) Reset() {
	b.hp = 0
}

// SetFinishPercent updates the progress readout
func (b *TopBar) SetFinishPercent(v int) {
	b.finishPercent = v
}

// DisplayedHP returns the gauge value
func (b *TopBar) DisplayedHP() int {
	return b.hp
}

// Tick moves the gauge halfway to the craft's hit points, at least one point
func (b *TopBar) Tick() {
	if delta := b.ship.HP() - b.hp; delta != 0 {
		b.hp += delta/2 + delta%2
	}
}

// Render draws the bar
func (b *TopBar) Render(dc *gg.Context, frame int) {
	dc.SetFontFace(basicfont.Face7x13)
	b.drawHP(dc)
	b.drawCoins(dc)
	b.drawFinish(dc)
}

func (b *TopBar) drawHP(dc *gg.Context) {
	hpPath(dc, parameter.HPBarX, parameter.HPBarWidth)
	dc.SetColor(visual.RgbShadow)
	dc.Fill()

	hp := float64(b.hp) / parameter.ShipMaxHP
	segments := parameter.HPBarWidth / parameter.HPBarSegmentWidth
	filled := int(math.Round(float64(segments) * hp))
	c := visual.RgbHealth[int(math.Round(hp*float64(len(visual.RgbHealth)-1)))]

	dc.SetLineWidth(1)
	for s := range filled {
		hpPath(dc, parameter.HPBarX+float64(parameter.HPBarSegmentWidth*s), parameter.HPBarSegmentWidth)
		dc.SetColor(c)
		dc.FillPreserve()
		dc.SetColor(visual.RgbShadow)
		dc.Stroke()
	}

	hpPath(dc, parameter.HPBarX, parameter.HPBarWidth)
	dc.SetColor(visual.RgbBorder)
	dc.Stroke()
}

// hpPath outlines a skewed gauge section
func hpPath(dc *gg.Context, x, width float64) {
	y := parameter.HPBarY
	dc.NewSubPath()
	dc.MoveTo(x+parameter.HPBarSkew, y)
	dc.LineTo(x+width+parameter.HPBarSkew, y)
	dc.LineTo(x+width, y+parameter.HPBarHeight)
	dc.LineTo(x, y+parameter.HPBarHeight)
	dc.ClosePath()
}

func (b *TopBar) drawCoins(dc *gg.Context) {
	const icon = parameter.CoinSize >> 1
	if b.coinIcon != nil {
		src := sprite.Frame(b.coinIcon, 0, parameter.CoinSprites)
		sprite.Draw(dc, b.coinIcon, src, parameter.CoinsBarX, parameter.CoinsBarY, icon, icon)
	} else {
		dc.SetColor(visual.RgbCoin[0])
		dc.DrawCircle(parameter.CoinsBarX+icon/2, parameter.CoinsBarY+icon/2, icon/2)
		dc.Fill()
	}
	shadowText(dc, strconv.Itoa(b.coins.Score()), parameter.CoinsBarScoreX, parameter.CoinsBarScoreY)
}

func (b *TopBar) drawFinish(dc *gg.Context) {
	if b.finishIcon != nil {
		r := b.finishIcon.Bounds()
		sprite.Draw(dc, b.finishIcon, r, parameter.FinishBarX, parameter.FinishBarY, float64(r.Dx()), float64(r.Dy()))
	} else {
		// Checkered flag
		for i := range 4 {
			if i%3 == 0 {
				dc.SetColor(visual.RgbWhite)
			} else {
				dc.SetColor(visual.RgbBlack)
			}
			dc.DrawRectangle(parameter.FinishBarX+float64(i%2*6), parameter.FinishBarY+float64(i/2*6), 6, 6)
			dc.Fill()
		}
	}
	shadowText(dc, strconv.Itoa(b.finishPercent)+"%", parameter.FinishBarPercentX, parameter.FinishBarPercentY)
}

// shadowText draws white text with a one pixel drop shadow, top-left anchored
func shadowText(dc *gg.Context, s string, x, y float64) {
	dc.SetColor(visual.RgbShadow)
	dc.DrawStringAnchored(s, x+1, y+1, 0, 1)
	dc.SetColor(visual.RgbWhite)
	dc.DrawStringAnchored(s, x, y, 0, 1)
}
