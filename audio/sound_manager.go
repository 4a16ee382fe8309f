// Package audio plays the synthesized sound effects of a flight through the beep speaker.
// Audio is optional: every operation is a no-op until Initialize succeeds.
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/racer796/event"
	"github.com/lixenwraith/racer796/parameter"
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	cache       *soundCache
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// Effects requested by events, played or not
	requests  [soundTypeCount]int
	lastFrame [soundTypeCount]int64
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:   cfg,
		cache: newSoundCache(beep.SampleRate(cfg.SampleRate)),
		mixer: &beep.Mixer{},
	}
	for i := range sm.lastFrame {
		sm.lastFrame[i] = -1
	}
	return sm
}

// Initialize sets up the speaker and renders the effect buffers
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.SpeakerBufferDuration)); err != nil {
		return err
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close that allows a later Init, clearing the mixer is enough
	sm.initialized = false
}

// Play starts one effect at its configured volume
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	buf := sm.cache.get(st)
	if buf == nil {
		return
	}

	vol := sm.cfg.EffectVolumes[st] * sm.cfg.MasterVolume
	speaker.Lock()
	sm.mixer.Add(newVolume(buf.Streamer(0, buf.Len()), vol))
	speaker.Unlock()
}

// ToggleMute silences or restores effects and returns the new muted state
// Sounds already playing finish
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether effects are silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Requests returns how many times an effect was requested by events
func (sm *SoundManager) Requests(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.requests[st]
}

// HandleEvent implements event.Handler
// A barrier hit emits one explosion per collision area; the effect plays once per frame
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	var st SoundType
	switch ev.Type {
	case event.EventCoinCollected:
		st = SoundCoin
	case event.EventFinish:
		st = SoundFinish
	case event.EventExplosion:
		st = SoundExplosion
		if p, ok := ev.Payload.(*event.ExplosionPayload); ok && !p.Damages {
			st = SoundGameOver
		}
	default:
		return
	}

	sm.mu.Lock()
	if sm.lastFrame[st] == ev.Frame {
		sm.mu.Unlock()
		return
	}
	sm.lastFrame[st] = ev.Frame
	sm.requests[st]++
	sm.mu.Unlock()

	sm.Play(st)
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{event.EventCoinCollected, event.EventFinish, event.EventExplosion}
}
