// Command racer flies the pseudo-3D racer in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/racer796/audio"
	"github.com/lixenwraith/racer796/config"
	"github.com/lixenwraith/racer796/core"
	"github.com/lixenwraith/racer796/display"
	"github.com/lixenwraith/racer796/engine"
	"github.com/lixenwraith/racer796/event"
	"github.com/lixenwraith/racer796/game"
	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/score"
	"github.com/lixenwraith/racer796/sprite"
	"github.com/lixenwraith/racer796/status"
)

func main() {
	cfg := config.LoadConfig()

	debug := flag.Bool("debug", false, "Write logs to logs/racer.log")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "Sprite sheet directory, empty for built-in imagery")
	flag.StringVar(&cfg.ScoreURL, "score-url", cfg.ScoreURL, "Score table server, empty to keep scores locally")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Track seed, 0 for random")
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	// Panic recovery on the main goroutine; worker goroutines use core.Go
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "racer: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pres, err := display.Open()
	if err != nil {
		return err
	}
	core.RegisterFinisher(pres)
	defer func() {
		core.RegisterFinisher(nil)
		pres.Fini()
	}()

	reg := status.NewRegistry()
	router := event.NewRouter()
	it, tickDone := engine.NewInterrupter(parameter.TickInterval, reg)

	seed := cfg.SeedOrNow()
	log.Printf("racer: seed %d", seed)
	g := game.New(it, router, reg, rand.New(rand.NewPCG(seed, 796)))

	if cfg.AssetDir != "" {
		if sheets, err := sprite.LoadDir(cfg.AssetDir); err != nil {
			log.Printf("racer: %v (using built-in imagery)", err)
		} else {
			g.AttachSheets(sheets)
		}
	}

	var sound *audio.SoundManager
	sm := audio.NewSoundManager(cfg.Audio)
	if err := sm.Initialize(); err != nil {
		log.Printf("racer: audio initialization failed: %v (continuing without audio)", err)
	} else {
		sound = sm
		router.Register(sm)
		defer sm.Cleanup()
	}

	var client *score.Client
	if cfg.ScoreURL != "" {
		client = score.NewClient(cfg.ScoreURL, cfg.ScoreTimeout)
	}

	a := newApp(ctx, g, pres, sound, client, config.NewNameCache(cfg.NameFile))
	a.refreshScores()

	core.Go(func() { it.Run(ctx) })
	defer it.Stop()

	events := pres.Events()
	for {
		select {
		case <-ctx.Done():
			log.Printf("racer: %s", reg)
			return nil
		case ev, ok := <-events:
			if !ok || !a.handleIntent(a.machine.Process(ev)) {
				log.Printf("racer: %s", reg)
				return nil
			}
		case fe := <-a.flights:
			a.handleFlight(fe)
		case records := <-a.results:
			a.handleResults(records)
		case <-tickDone:
			a.present()
		}
	}
}
