// Package game is the flight orchestrator: it owns the viewport, track position, craft and
// segment manager, drives the countdown/flying/finishing/destroyed state machine once per
// tick and turns segment events into damage, explosions and screen transitions.
package game

import (
	"image"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/racer796/coins"
	"github.com/lixenwraith/racer796/craft"
	"github.com/lixenwraith/racer796/engine"
	"github.com/lixenwraith/racer796/event"
	"github.com/lixenwraith/racer796/fov"
	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/path"
	"github.com/lixenwraith/racer796/scene"
	"github.com/lixenwraith/racer796/sprite"
	"github.com/lixenwraith/racer796/status"
	"github.com/lixenwraith/racer796/track"
	"github.com/lixenwraith/racer796/walls"
)

// Phase is the flight state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountdown
	PhaseFlying
	PhaseFinishing
	PhaseDestroyed
)

var phaseNames = [...]string{"Idle", "Countdown", "Flying", "Finishing", "Destroyed"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// Layer is anything composed into the frame
type Layer interface {
	Render(dc *gg.Context, frame int)
}

// Item is a layer that also ticks
type Item interface {
	engine.Ticker
	Layer
}

// Game composes one flight
// Every method that mutates state runs under the interrupter lock
type Game struct {
	it     *engine.Interrupter
	router *event.Router

	view     *fov.FieldOfView
	position *track.Position
	ship     *craft.Ship
	coins    *coins.Display
	walls    *walls.Walls

	background *scene.Background
	floor      *scene.Floor
	topBar     *scene.TopBar
	startTimer *scene.StartTimer
	finishText *scene.Banner
	gameOver   *scene.Banner

	explosionSheet image.Image
	explosions     []*scene.Explosion

	layers []Layer
	dc     *gg.Context

	phase      Phase
	generation uint64
	countdown  int
	speed      float64
	input      bool

	statFlights *atomic.Int64
}

// New builds a game on the given interrupter; rng seeds track generation
// The procedural atlas is attached until AttachSheets supplies images
func New(it *engine.Interrupter, router *event.Router, reg *status.Registry, rng *rand.Rand) *Game {
	view := fov.NewDefault()
	position := &track.Position{}
	ship := craft.New(view)
	coinDisplay := coins.New(view)

	g := &Game{
		it:          it,
		router:      router,
		view:        view,
		position:    position,
		ship:        ship,
		coins:       coinDisplay,
		walls:       walls.New(view, position, ship, coinDisplay, router, reg, path.NewGenerator(rng)),
		background:  scene.NewBackground(position),
		floor:       scene.NewFloor(view, position),
		topBar:      scene.NewTopBar(ship, coinDisplay, nil, nil),
		startTimer:  scene.NewStartTimer(),
		finishText:  scene.NewFinishBanner(),
		gameOver:    scene.NewGameOverBanner(),
		dc:          gg.NewContext(parameter.ScreenWidth, parameter.ScreenHeight),
		statFlights: reg.Ints.Get("game.flights"),
	}
	g.walls.AttachAtlas(sprite.Procedural())

	it.OnFrame(router.SetFrame)
	router.Subscribe(event.EventExplosion, g.handleExplosion)
	router.Subscribe(event.EventFinish, g.handleFinish)
	return g
}

// AttachSheets replaces the procedural imagery with loaded sprite sheets
func (g *Game) AttachSheets(s *sprite.Sheets) {
	g.it.RunSafe(func() {
		g.walls.AttachAtlas(s.Walls)
		g.ship.SetSheet(s.Ship)
		g.coins.SetSheet(s.Coin)
		g.topBar.SetIcons(s.Coin, s.Finish)
		g.explosionSheet = s.Explosion
	})
}

// Router returns the event router game events are emitted on
func (g *Game) Router() *event.Router { return g.router }

// Phase returns the current flight state
func (g *Game) Phase() Phase { return g.phase }

// Speed returns the current speed in track units per tick
func (g *Game) Speed() float64 { return g.speed }

// Position returns the distance flown
func (g *Game) Position() int { return g.position.Value() }

// Generation identifies the current flight
func (g *Game) Generation() uint64 { return g.generation }

// InputEnabled reports whether steering is accepted
func (g *Game) InputEnabled() bool { return g.input }

// Ship returns the craft
func (g *Game) Ship() *craft.Ship { return g.ship }

// Walls returns the segment manager
func (g *Game) Walls() *walls.Walls { return g.walls }

// Coins returns the coin display holding the score
func (g *Game) Coins() *coins.Display { return g.coins }

// Explosions returns the number of visual explosions on screen
func (g *Game) Explosions() int { return len(g.explosions) }

// Start resets everything and begins a new flight with the countdown
// Must not be called from an event handler or timer callback
func (g *Game) Start() {
	g.it.RunSafe(func() {
		g.detach()
		g.reset()
		g.attach()
	})
}

// Stop ends the flight and unregisters every item
// Must not be called from an event handler or timer callback
func (g *Game) Stop() {
	g.it.RunSafe(g.detach)
}

// Steer records a steering intent while input is enabled
func (g *Game) Steer(dx, dy float64) {
	g.it.RunSafe(func() {
		if g.input {
			g.ship.Move(dx, dy)
		}
	})
}

// Roll records a barrel roll intent while input is enabled
func (g *Game) Roll() {
	g.it.RunSafe(func() {
		if g.input {
			g.ship.Rotate()
		}
	})
}

// Step runs one tick and composes its frame
func (g *Game) Step() *image.RGBA {
	g.it.Step()
	return g.Compose()
}

// Compose renders the current state into the frame raster
// Rendering runs the collision tests of segments crossing the ship plane
func (g *Game) Compose() *image.RGBA {
	g.it.RunSafe(func() {
		frame := int(g.it.Ticks())
		g.router.SetFrame(int64(frame))
		g.background.Render(g.dc, frame)
		// Layers may spawn explosions while rendering
		for i := 0; i < len(g.layers); i++ {
			g.layers[i].Render(g.dc, frame)
		}
	})
	return g.dc.Image().(*image.RGBA)
}

func (g *Game) reset() {
	g.generation++
	g.countdown = 0
	g.speed = 0
	g.input = false
	g.explosions = g.explosions[:0]

	g.view.Reset()
	g.view.MoveNearRect(0, parameter.NearShiftStartY)
	g.position.Reset()
	g.walls.Reset()
	g.ship.Reset()
	g.coins.Reset()
	g.topBar.Reset()
	g.startTimer.Reset()
	g.finishText.Reset()
	g.gameOver.Reset()
}

func (g *Game) attach() {
	g.phase = PhaseCountdown
	g.statFlights.Add(1)

	g.it.Add(g)
	g.addItem(g.floor)
	g.addItem(g.walls)
	g.addItem(g.topBar)
	g.addItem(g.startTimer)
	g.it.Add(g.ship)
}

func (g *Game) detach() {
	g.phase = PhaseIdle
	g.input = false

	g.it.Remove(g)
	g.it.Remove(g.ship)
	for _, l := range g.layers {
		if t, ok := l.(engine.Ticker); ok {
			g.it.Remove(t)
		}
	}
	g.layers = g.layers[:0]
	g.explosions = g.explosions[:0]
}

func (g *Game) addItem(item Item) {
	g.layers = append(g.layers, item)
	g.it.Add(item)
}

func (g *Game) removeItem(item Item) {
	for i, l := range g.layers {
		if l == Layer(item) {
			g.layers = append(g.layers[:i], g.layers[i+1:]...)
			break
		}
	}
	g.it.Remove(item)
}

// Tick advances the state machine
func (g *Game) Tick() {
	g.topBar.SetFinishPercent(g.walls.PathPercent())
	g.pruneExplosions()

	switch g.phase {
	case PhaseCountdown:
		g.countdown++
		if g.countdown == parameter.StartWaitTicks {
			g.input = true
			g.speed = parameter.FlySpeedAccelerator
			g.phase = PhaseFlying
		}
		lights := parameter.WallAnimated[path.TrafficLights.Image].Sprites
		g.walls.SetReadyValue(int(math.Floor(float64(g.countdown) / parameter.StartWaitTicks * float64(lights-1))))
		return

	case PhaseFlying:
		g.removeItem(g.startTimer)
		g.speed = min(parameter.FlySpeed, g.speed+parameter.FlySpeedAccelerator)

	case PhaseFinishing:
		g.removeItem(g.startTimer)
		g.speed = max(0, g.speed-parameter.FlySpeedFinishAccelerator)

	default:
		return
	}

	if g.speed > 0 {
		g.position.Advance(int(math.Floor(g.speed)))
	}
}

func (g *Game) pruneExplosions() {
	kept := g.explosions[:0]
	for _, e := range g.explosions {
		if e.Done() {
			g.removeItem(e)
			continue
		}
		kept = append(kept, e)
	}
	g.explosions = kept
}

// flying reports whether the craft can still be destroyed
func (g *Game) flying() bool {
	return g.phase == PhaseCountdown || g.phase == PhaseFlying || g.phase == PhaseFinishing
}

func (g *Game) handleFinish(ev event.GameEvent) {
	if g.phase != PhaseFlying {
		return
	}
	g.phase = PhaseFinishing
	g.input = false
	g.addItem(g.finishText)

	g.after(parameter.FinishScreenDelay, func() {
		if g.phase != PhaseFinishing {
			return
		}
		g.router.Emit(event.EventSaveScore, &event.SaveScorePayload{Score: g.coins.Score()})
	})
}

func (g *Game) handleExplosion(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.ExplosionPayload)
	if !ok {
		return
	}

	if p.Damages {
		g.ship.Damage(int(math.Round(p.Strength * parameter.CollisionAreaDamageHP)))
		if g.ship.HP() <= 0 {
			g.destroy()
			return
		}
	}

	e := scene.NewExplosion(p.X, p.Y, p.Strength, g.explosionSheet)
	g.explosions = append(g.explosions, e)
	g.addItem(e)
}

// destroy takes the destroyed transition once per flight
func (g *Game) destroy() {
	if !g.flying() {
		return
	}
	g.phase = PhaseDestroyed
	g.input = false
	g.removeItem(g.startTimer)
	g.addItem(g.gameOver)
	g.walls.ExplodeShip()

	g.after(parameter.GameOverScreenDelay, func() {
		g.router.Emit(event.EventClose, nil)
	})
}

// after defers fn by a wall-clock delay, dropped if a new flight started meanwhile
func (g *Game) after(d time.Duration, fn func()) {
	gen := g.generation
	g.it.Timers().After(parameter.TicksFor(d), func() {
		if g.generation != gen {
			return
		}
		fn()
	})
}
