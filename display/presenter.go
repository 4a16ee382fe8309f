// Package display presents composed frames on a terminal through tcell.
// Each cell shows two vertically stacked pixels with the upper half block:
// foreground is the top pixel, background the bottom one.
package display

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/racer796/core"
)

const halfBlock = '▀'

// Presenter scales frames to the terminal and draws text lines over them
type Presenter struct {
	mu     sync.Mutex
	screen tcell.Screen

	width, height int
	scaled        *image.RGBA

	overlay []string
	status  string

	done     chan struct{}
	finiOnce sync.Once
	pollers  sync.WaitGroup
}

// Open creates and initializes a terminal screen
func Open() (*Presenter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	return New(screen), nil
}

// New wraps an initialized screen
func New(screen tcell.Screen) *Presenter {
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()
	return &Presenter{screen: screen, done: make(chan struct{})}
}

// Screen returns the underlying tcell screen
func (p *Presenter) Screen() tcell.Screen {
	return p.screen
}

// Fini restores the terminal and waits for event forwarding to stop, safe to call more than once
func (p *Presenter) Fini() {
	p.finiOnce.Do(func() {
		close(p.done)
		p.screen.Fini()
		p.pollers.Wait()
	})
}

// Events polls the screen in a goroutine and forwards events until the presenter is finalized.
// The channel is closed when forwarding stops, even if nobody is reading it.
func (p *Presenter) Events() <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	p.pollers.Add(1)
	core.Go(func() {
		defer p.pollers.Done()
		defer close(events)
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-p.done:
				return
			}
		}
	})
	return events
}

// SetOverlay replaces the text lines drawn over the top-left of the frame
func (p *Presenter) SetOverlay(lines []string) {
	p.mu.Lock()
	p.overlay = lines
	p.mu.Unlock()
}

// SetStatus replaces the bottom status line
func (p *Presenter) SetStatus(line string) {
	p.mu.Lock()
	p.status = line
	p.mu.Unlock()
}

// Resize drops the scaled buffer so the next frame matches the new terminal size
func (p *Presenter) Resize() {
	p.mu.Lock()
	p.width, p.height = 0, 0
	p.mu.Unlock()
	p.screen.Sync()
}

// Present draws one frame letterboxed into the terminal, keeping the last row for the status line
func (p *Presenter) Present(frame *image.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()

	w, h := p.screen.Size()
	rows := h - 1
	if w <= 0 || rows <= 0 {
		return
	}
	if w != p.width || h != p.height || p.scaled == nil {
		p.width, p.height = w, h
		p.scaled = image.NewRGBA(image.Rect(0, 0, w, rows*2))
	}

	draw.Draw(p.scaled, p.scaled.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.ApproxBiLinear.Scale(p.scaled, Fit(frame.Bounds(), p.scaled.Bounds()), frame, frame.Bounds(), draw.Src, nil)

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < w; cx++ {
			top := p.scaled.RGBAAt(cx, cy*2)
			bottom := p.scaled.RGBAAt(cx, cy*2+1)
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			p.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}

	text := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, line := range p.overlay {
		if i >= rows {
			break
		}
		drawText(p.screen, 1, i, w, line, text)
	}
	drawText(p.screen, 0, h-1, w, p.status, text)
	for x := len([]rune(p.status)); x < w; x++ {
		p.screen.SetContent(x, h-1, ' ', nil, text)
	}

	p.screen.Show()
}

// Fit returns the largest rectangle of src's aspect ratio centred inside dst
func Fit(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()
	if sw == 0 || sh == 0 {
		return image.Rectangle{Min: dst.Min, Max: dst.Min}
	}

	w, h := dw, dw*sh/sw
	if h > dh {
		w, h = dh*sw/sh, dh
	}
	x := dst.Min.X + (dw-w)/2
	y := dst.Min.Y + (dh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
