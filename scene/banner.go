package scene

import (
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/parameter/visual"
)

// Banner texts
const (
	TextReady    = "READY!"
	TextGo       = "GO!"
	TextFinish   = "FINISH!"
	TextGameOver = "GAME OVER"
)

// glyphHeight is the cap height the font scale is derived from
const glyphHeight = 13.0

// Banner is a centered text that grows over its first ticks
// Colors cycle through the palette every colorTicks ticks
type Banner struct {
	text       string
	size       int
	ticks      int
	colorTicks int
	fg, shadow []color.RGBA
}

// NewFinishBanner creates the FINISH! text
func NewFinishBanner() *Banner {
	return &Banner{
		text:       TextFinish,
		colorTicks: parameter.BannerColorDuration,
		fg:         visual.RgbFinishText[:],
		shadow:     visual.RgbFinishShadow[:],
	}
}

// NewGameOverBanner creates the GAME OVER text
func NewGameOverBanner() *Banner {
	return &Banner{
		text:       TextGameOver,
		colorTicks: parameter.GameOverColorTicks,
		fg:         visual.RgbGameOverText[:],
		shadow:     visual.RgbGameOverShadow[:],
	}
}

// Text returns the displayed string
func (b *Banner) Text() string {
	return b.text
}

// Size returns the growth step, 0 to BannerGrowSteps
func (b *Banner) Size() int {
	return b.size
}

// Reset shrinks the text back to nothing
func (b *Banner) Reset() {
	b.size = 0
	b.ticks = 0
}

// Tick grows the text and advances the color cycle
func (b *Banner) Tick() {
	b.ticks++
	if b.size < parameter.BannerGrowSteps {
		b.size++
	}
}

func (b *Banner) colorIndex() int {
	return (b.ticks / max(1, b.colorTicks)) % len(b.fg)
}

// Render draws the text with its drop shadow
func (b *Banner) Render(dc *gg.Context, frame int) {
	i := b.colorIndex()
	drawBanner(dc, b.text, b.size, b.fg[i], b.shadow[i])
}

// StartTimer shows READY! during the countdown and switches to GO!
type StartTimer struct {
	Banner
	goAfter int
}

// NewStartTimer creates the countdown banner
func NewStartTimer() *StartTimer {
	s := &StartTimer{
		Banner: Banner{
			text:   TextReady,
			fg:     []color.RGBA{visual.RgbWhite},
			shadow: []color.RGBA{visual.RgbShadow},
		},
		goAfter: parameter.TicksFor(parameter.StartTimerDuration),
	}
	return s
}

// Reset returns to READY!
func (s *StartTimer) Reset() {
	s.Banner.Reset()
	s.text = TextReady
}

// Tick grows the text and switches to GO! once READY! has been shown long enough
func (s *StartTimer) Tick() {
	s.ticks++
	if s.text == TextReady && s.ticks > s.goAfter {
		s.text = TextGo
		s.size = 0
	}
	if s.size < parameter.BannerGrowSteps {
		s.size++
	}
}

// drawBanner centers text at a font size of size*8 pixels, baseline below screen center
func drawBanner(dc *gg.Context, text string, size int, fg, shadow color.RGBA) {
	if size <= 0 {
		return
	}
	fontSize := float64(size * 8)
	k := fontSize / glyphHeight

	dc.Push()
	defer dc.Pop()
	dc.SetFontFace(basicfont.Face7x13)

	w, _ := dc.MeasureString(text)
	x := float64(parameter.ScreenWidth>>1) - w*k/2
	y := float64(parameter.ScreenHeight>>1) - fontSize

	for _, layer := range []struct {
		c      color.RGBA
		offset float64
	}{{shadow, 2}, {fg, 0}} {
		dc.Push()
		dc.Translate(x+layer.offset, y+layer.offset)
		dc.Scale(k, k)
		dc.SetColor(layer.c)
		dc.DrawStringAnchored(text, 0, 0, 0, 1)
		dc.Pop()
	}
}
