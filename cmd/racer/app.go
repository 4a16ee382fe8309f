package main

import (
	"context"
	"fmt"
	"image"
	"log"

	"github.com/lixenwraith/racer796/audio"
	"github.com/lixenwraith/racer796/config"
	"github.com/lixenwraith/racer796/core"
	"github.com/lixenwraith/racer796/event"
	"github.com/lixenwraith/racer796/game"
	"github.com/lixenwraith/racer796/input"
	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/score"
)

// screenState is the front end around the flight
type screenState int

const (
	stateMenu screenState = iota
	stateFlight
	stateName
)

// flightEvent is a game notification handed from the tick goroutine to the front end
type flightEvent struct {
	typ   event.EventType
	score int
}

// presenter is the part of the display the front end drives
type presenter interface {
	Present(frame *image.RGBA)
	SetOverlay(lines []string)
	SetStatus(line string)
	Resize()
}

// app owns the front end: menu with the score table, the flight and nickname entry
type app struct {
	ctx     context.Context
	game    *game.Game
	display presenter
	machine *input.Machine
	sound   *audio.SoundManager // nil without audio
	names   *config.NameCache

	// Remote table when configured, local table otherwise
	client *score.Client
	local  *score.Store

	state   screenState
	editor  *input.LineEditor
	pending int
	scores  []score.Record

	flights chan flightEvent
	results chan []score.Record
}

func newApp(ctx context.Context, g *game.Game, display presenter, sound *audio.SoundManager,
	client *score.Client, names *config.NameCache) *app {
	a := &app{
		ctx:     ctx,
		game:    g,
		display: display,
		machine: input.NewMachine(),
		sound:   sound,
		names:   names,
		client:  client,
		local:   score.NewStore(),
		flights: make(chan flightEvent, 4),
		results: make(chan []score.Record, 1),
	}

	// Handlers run on the tick goroutine under the tick lock; flight control happens in the main loop
	g.Router().Subscribe(event.EventSaveScore, func(ev event.GameEvent) {
		if p, ok := ev.Payload.(*event.SaveScorePayload); ok {
			a.notify(flightEvent{typ: ev.Type, score: p.Score})
		}
	})
	g.Router().Subscribe(event.EventClose, func(ev event.GameEvent) {
		a.notify(flightEvent{typ: ev.Type})
	})

	a.showMenu()
	return a
}

func (a *app) notify(fe flightEvent) {
	select {
	case a.flights <- fe:
	default:
		log.Printf("racer: dropped %s notification", fe.typ)
	}
}

// handleIntent applies one input intent and reports whether the program keeps running
func (a *app) handleIntent(in *input.Intent) bool {
	if in == nil {
		return true
	}

	switch in.Type {
	case input.IntentResize:
		a.display.Resize()
		return true
	case input.IntentToggleMute:
		if a.sound != nil {
			log.Printf("racer: muted=%v", a.sound.ToggleMute())
		}
		return true
	}

	switch a.state {
	case stateMenu:
		switch in.Type {
		case input.IntentQuit:
			return false
		case input.IntentConfirm:
			a.startFlight()
		}

	case stateFlight:
		switch in.Type {
		case input.IntentQuit:
			a.game.Stop()
			a.showMenu()
		case input.IntentSteer:
			a.game.Steer(float64(in.DX), float64(in.DY))
		case input.IntentRoll:
			a.game.Roll()
		}

	case stateName:
		switch in.Type {
		case input.IntentQuit:
			return false
		case input.IntentTextCancel:
			a.game.Stop()
			a.showMenu()
		case input.IntentConfirm:
			a.submitName()
		default:
			if a.editor.Apply(in) {
				a.showNameEntry()
			}
		}
	}
	return true
}

// handleFlight reacts to the end of a flight
func (a *app) handleFlight(fe flightEvent) {
	if a.state != stateFlight {
		return
	}
	switch fe.typ {
	case event.EventSaveScore:
		a.pending = fe.score
		a.editor = input.NewLineEditor(a.names.Load(), parameter.NicknameMaxLength)
		a.state = stateName
		a.machine.SetMode(input.ModeText)
		a.showNameEntry()
	case event.EventClose:
		a.game.Stop()
		a.showMenu()
	}
}

// handleResults replaces the displayed score table
func (a *app) handleResults(records []score.Record) {
	a.scores = records
	if a.state == stateMenu {
		a.showMenu()
	}
}

func (a *app) startFlight() {
	a.state = stateFlight
	a.machine.SetMode(input.ModeFlight)
	a.display.SetOverlay(nil)
	a.display.SetStatus("arrows/wasd steer  space roll  m mute  esc menu")
	a.game.Start()
}

func (a *app) submitName() {
	name := score.CleanName(a.editor.String())
	if name == "" {
		return
	}
	if err := a.names.Save(name); err != nil {
		log.Printf("racer: %v", err)
	}

	a.game.Stop()
	a.showMenu()

	total := a.pending
	core.Go(func() {
		if a.client != nil {
			a.client.Save(a.ctx, name, total)
		} else {
			a.local.Add(name, total)
		}
		a.fetchScores()
	})
}

// refreshScores loads the table in the background
func (a *app) refreshScores() {
	core.Go(a.fetchScores)
}

func (a *app) fetchScores() {
	var records []score.Record
	if a.client != nil {
		records = a.client.List(a.ctx)
	} else {
		records = a.local.Top(parameter.ScoreTableRows - 1)
	}

	// Only the latest table matters
	select {
	case <-a.results:
	default:
	}
	select {
	case a.results <- records:
	default:
	}
}

func (a *app) showMenu() {
	a.state = stateMenu
	a.machine.SetMode(input.ModeFlight)

	lines := []string{"RACER 796", "", "TOP PILOTS"}
	if len(a.scores) == 0 {
		lines = append(lines, "  no results yet")
	}
	for i, r := range a.scores {
		if i == parameter.ScoreTableRows-1 {
			break
		}
		lines = append(lines, fmt.Sprintf("%2d. %-*s %5d", i+1, parameter.NicknameMaxLength, r.Name, r.Score))
	}
	a.display.SetOverlay(lines)
	a.display.SetStatus("enter fly  q quit")
}

func (a *app) showNameEntry() {
	a.display.SetOverlay([]string{
		fmt.Sprintf("SCORE %d", a.pending),
		"",
		"NAME: " + a.editor.String() + "_",
	})
	a.display.SetStatus("enter save  esc skip")
}

// present composes the frame of the last tick and shows it
func (a *app) present() {
	a.display.Present(a.game.Compose())
}
