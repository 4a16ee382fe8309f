// Package walls manages the sliding window of active track segments: their perspective
// projection, back-to-front rendering with the craft interleaved, and the one-shot collision
// test of each segment as it reaches the craft.
package walls

import (
	"image"
	"math"
	"sync/atomic"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/racer796/collision"
	"github.com/lixenwraith/racer796/event"
	"github.com/lixenwraith/racer796/fov"
	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/path"
	"github.com/lixenwraith/racer796/sprite"
	"github.com/lixenwraith/racer796/status"
	"github.com/lixenwraith/racer796/track"
	"github.com/lixenwraith/racer796/vmath"
)

// Ship is the craft as seen by the segment manager
type Ship interface {
	collision.Drawable
	HP() int
}

// CoinDisplay draws and mutates the coin grid of one segment at a time
type CoinDisplay interface {
	SetProps(lineX, lineY, scale float64, grid *path.CoinGrid)
	Render(dc *gg.Context, frame int)
}

// Wall is the projection of one active segment
type Wall struct {
	ID       int
	Position int // along-track position, ID * WallDistance

	Y, Left, Right float64
	SizeScale      float64
	FOVScale       float64 // eased depth scale in [0,1]
	Brightness     int     // percent

	ImgLeft, ImgRight int

	// Line is nil once the generated path is exhausted
	Line *path.Line

	TestCollision bool
}

type side int

const (
	sideLeft side = iota
	sideCenter
	sideRight
)

// Walls owns the active segments of one flight
type Walls struct {
	view     *fov.FieldOfView
	position *track.Position
	ship     Ship
	coins    CoinDisplay
	router   *event.Router
	tester   *collision.Tester
	gen      *path.Generator

	atlas   sprite.Atlas
	flipped map[int]image.Image

	walls        []*Wall // ascending ID, nearest first
	path         []*path.Line
	lastPosition int
	dirty        bool

	initPathLength int
	passed         int
	readyValue     int

	statTests      *atomic.Int64
	statExplosions *atomic.Int64
	statCoins      *atomic.Int64
}

// New creates the segment manager and generates the first track
// Projection stays a no-op until an atlas is attached
func New(view *fov.FieldOfView, position *track.Position, ship Ship, coins CoinDisplay,
	router *event.Router, reg *status.Registry, gen *path.Generator) *Walls {
	w := &Walls{
		view:           view,
		position:       position,
		ship:           ship,
		coins:          coins,
		router:         router,
		tester:         collision.NewDefaultTester(),
		gen:            gen,
		statTests:      reg.Ints.Get("walls.collision_tests"),
		statExplosions: reg.Ints.Get("walls.explosions"),
		statCoins:      reg.Ints.Get("coins.collected"),
	}
	view.OnChange(func() { w.dirty = true })
	w.Reset()
	return w
}

// AttachAtlas supplies the wall imagery and projects the current window
func (w *Walls) AttachAtlas(atlas sprite.Atlas) {
	w.atlas = atlas
	w.flipped = make(map[int]image.Image)
	w.dirty = true
	w.calc()
}

// Ready reports whether imagery is attached
func (w *Walls) Ready() bool {
	return w.atlas != nil
}

// Reset generates a new track and clears the window
func (w *Walls) Reset() {
	w.ResetWithPath(w.gen.Generate())
}

// ResetWithPath starts over on the given segment list
func (w *Walls) ResetWithPath(lines []*path.Line) {
	w.walls = w.walls[:0]
	w.path = lines
	w.initPathLength = len(lines)
	w.passed = 0
	w.readyValue = 0
	w.dirty = true
	w.calc()
}

// SetReadyValue selects the traffic light frame shown during the countdown
func (w *Walls) SetReadyValue(v int) {
	w.readyValue = v
}

// PathPercent reports consumed segments as a percentage of the track, capped at 100
func (w *Walls) PathPercent() int {
	if w.initPathLength == 0 {
		return 0
	}
	return min(100, int(math.Round(float64(w.passed)/float64(w.initPathLength)*100)))
}

// Walls returns a copy of the active window, nearest first
func (w *Walls) Walls() []Wall {
	out := make([]Wall, len(w.walls))
	for i, wall := range w.walls {
		out[i] = *wall
	}
	return out
}

// Tick reprojects the window when the position or the viewport changed
func (w *Walls) Tick() {
	if w.dirty || w.lastPosition != w.position.Value() {
		w.calc()
	}
}

// Render draws every segment back to front with the craft interleaved at the ship plane
// The first render after a segment crosses the ship plane runs its collision test
func (w *Walls) Render(dc *gg.Context, frame int) {
	if w.atlas == nil {
		return
	}

	shipDrawn := w.ship.HP() <= 0

	for i := len(w.walls) - 1; i >= 0; i-- {
		wall := w.walls[i]

		if !shipDrawn && wall.SizeScale > parameter.WallShipPosition {
			if wall.TestCollision {
				w.test(wall, frame)
			}
			shipDrawn = true
			w.drawShip(dc, frame)
		}

		w.drawSegment(dc, wall, frame)
	}

	if !shipDrawn {
		w.drawShip(dc, frame)
	}
}

// ExplodeShip tests the craft against a full-screen obstacle so the explosions cover its whole shape
// Emitted explosions do not count damage
func (w *Walls) ExplodeShip() {
	areas := w.tester.TestBarrier(func(dc *gg.Context) {
		dc.SetRGB(1, 0, 0)
		dc.DrawRectangle(0, 0, parameter.ScreenWidth, parameter.ScreenHeight)
		dc.Fill()
	}, w.ship, 0)
	w.emitExplosions(areas, false)
}

func (w *Walls) test(wall *Wall, frame int) {
	wall.TestCollision = false
	w.passed++
	w.statTests.Add(1)

	line := wall.Line
	if line == nil {
		return
	}

	if line.Coins.HasPresent() {
		hit := w.tester.TestCoins(func(dc *gg.Context) {
			w.coins.SetProps(wall.Left, wall.Y, wall.SizeScale, &line.Coins)
			w.coins.Render(dc, frame)
		}, w.ship, frame)
		if hit {
			line.Coins.Collect()
			w.statCoins.Add(1)
			w.router.Emit(event.EventCoinCollected, nil)
		}
	}

	if line.Barrier != nil {
		if line.Barrier.IsFinish() {
			w.router.Emit(event.EventFinish, nil)
		}
		areas := w.tester.TestBarrier(func(dc *gg.Context) {
			w.drawWall(dc, wall, line.Barrier.Image, sideCenter, line.Barrier, frame, 1)
		}, w.ship, frame)
		w.emitExplosions(areas, true)
	}
}

func (w *Walls) emitExplosions(areas []collision.Area, damages bool) {
	for _, a := range areas {
		w.statExplosions.Add(1)
		w.router.Emit(event.EventExplosion, &event.ExplosionPayload{
			X:        a.X,
			Y:        a.Y,
			Strength: a.Strength,
			Damages:  damages,
		})
	}
}

func (w *Walls) drawShip(dc *gg.Context, frame int) {
	dc.Push()
	w.ship.Render(dc, frame)
	dc.Pop()
}

func (w *Walls) drawSegment(dc *gg.Context, wall *Wall, frame int) {
	brightness := float64(wall.Brightness) / 100

	w.drawWall(dc, wall, wall.ImgLeft, sideLeft, nil, frame, brightness)
	w.drawWall(dc, wall, wall.ImgRight, sideRight, nil, frame, brightness)

	if wall.Line == nil {
		return
	}
	if b := wall.Line.Barrier; b != nil {
		w.drawWall(dc, wall, b.Image, sideCenter, b, frame, brightness)
	}
	if wall.Line.Coins.Any() {
		dc.Push()
		w.coins.SetProps(wall.Left, wall.Y, wall.SizeScale, &wall.Line.Coins)
		w.coins.Render(dc, frame)
		dc.Pop()
	}
}

// drawWall places one image of a segment
// Side buildings stand outside the track edges; barriers with a positive column anchor to it,
// flipped ones to the right edge of it, the rest start at the left track edge
func (w *Walls) drawWall(dc *gg.Context, wall *Wall, img int, pos side, barrier *path.Barrier, frame int, brightness float64) {
	flip := pos == sideRight || (barrier != nil && barrier.Flipped)
	sheet := w.image(img, flip)
	if sheet == nil {
		return
	}

	anim, ok := parameter.WallAnimated[img]
	if !ok {
		anim = parameter.WallAnimation{Sprites: 1, Duration: 1}
	}
	spriteIdx := (frame / anim.Duration) % anim.Sprites
	if barrier.IsTrafficLights() {
		spriteIdx = min(anim.Sprites-1, w.readyValue)
	}

	scale := wall.SizeScale
	if pos != sideCenter {
		scale *= parameter.WallSideScale
	}

	src := sprite.Frame(sheet, spriteIdx, anim.Sprites)
	width := math.Floor(float64(src.Dx()) * scale)
	height := math.Floor(float64(src.Dy()) * scale)
	x := wall.Left
	y := wall.Y - height

	switch pos {
	case sideLeft:
		x = wall.Left - width
	case sideRight:
		x = wall.Right
	default:
		if barrier != nil && barrier.Col > 0 {
			near, far := w.view.NearRect(), w.view.FarRect()
			lane := (near.Width - far.Width) / 4 * wall.SizeScale
			offset := math.Round(float64(barrier.Offset) * wall.SizeScale)
			if barrier.Flipped {
				x += math.Round(lane*float64(barrier.Col+1)) - width - offset
			} else {
				x += math.Round(lane*float64(barrier.Col)) + offset
			}
		}
	}

	sprite.DrawShaded(dc, sheet, src, x, y, width, height, brightness)
}

// image returns an atlas image, mirrored copies are built on first use
func (w *Walls) image(idx int, flip bool) image.Image {
	img := w.atlas.Image(idx)
	if img == nil || !flip {
		return img
	}
	if f, ok := w.flipped[idx]; ok {
		return f
	}
	f := sprite.Flip(img)
	w.flipped[idx] = f
	return f
}

// calc slides the window to the current position and reprojects every segment
func (w *Walls) calc() {
	if w.atlas == nil {
		return
	}
	w.dirty = false
	w.lastPosition = w.position.Value()

	far := w.view.FarRect()
	near := w.view.NearRect()
	startY := math.Ceil(far.Bottom)
	fovHeight := math.Ceil(near.Bottom - startY)

	minID := w.lastPosition / parameter.WallDistance
	maxID := minID + int(math.Ceil(float64(parameter.FOVLength)/parameter.WallDistance))

	kept := w.walls[:0]
	maxAdded := 0
	for _, wall := range w.walls {
		if wall.ID >= minID && wall.ID <= maxID {
			kept = append(kept, wall)
			maxAdded = max(maxAdded, wall.ID)
		}
	}
	w.walls = kept

	for id := maxAdded + 1; id <= maxID; id++ {
		w.walls = append(w.walls, &Wall{
			ID:            id,
			Position:      id * parameter.WallDistance,
			ImgLeft:       parameter.WallSequence[id%len(parameter.WallSequence)],
			ImgRight:      parameter.WallSequence[(id+parameter.WallSideOffset)%len(parameter.WallSequence)],
			Line:          w.shift(),
			TestCollision: true,
		})
	}

	for _, wall := range w.walls {
		pos := 1 - float64(wall.Position-w.lastPosition)/parameter.FOVLength
		scale := vmath.EaseInExpo(pos)
		wall.FOVScale = scale
		wall.Brightness = int(math.Round(min(100, scale*parameter.WallBrightnessFactor)))
		wall.SizeScale = parameter.WallStartScale + (1-parameter.WallStartScale)*scale
		wall.Y = startY + scale*fovHeight
		wall.Left = vmath.Lerp(far.Left, near.Left, scale)
		wall.Right = vmath.Lerp(far.Right, near.Right, scale)
	}
}

// shift consumes the next generated segment
func (w *Walls) shift() *path.Line {
	if len(w.path) == 0 {
		return nil
	}
	line := w.path[0]
	w.path = w.path[1:]
	return line
}
