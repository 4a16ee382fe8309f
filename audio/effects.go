package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/racer796/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	sweep    float64 // frequency change per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency moves linearly by sweep Hz per second
// Noise is seeded so every rendering of an effect is identical
func NewSweep(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewPCG(uint64(freq), 796)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := max(0, o.freq+o.sweep*float64(o.position)/float64(o.rate))
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(0, total-att-rel),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateCoinSound generates a two-note chime
func CreateCoinSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, parameter.CoinSoundDuration, WaveSquare, rate)
		return NewEnvelope(osc, parameter.CoinSoundDuration, parameter.CoinSoundAttack, parameter.CoinSoundRelease, rate)
	}
	// B5 then E6
	return newVolume(beep.Seq(note(987.77), note(1318.51)), 0.4)
}

// CreateExplosionSound generates a noise burst over a falling rumble
func CreateExplosionSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ExplosionSoundDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d,
		parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)
	rumble := NewEnvelope(NewSweep(140, -250, d, WaveSaw, rate), d,
		parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)

	return beep.Mix(newVolume(noise, 0.5), newVolume(rumble, 0.4))
}

// CreateFinishSound generates a rising major arpeggio
func CreateFinishSound(rate beep.SampleRate) beep.Streamer {
	var notes []beep.Streamer
	// C5 E5 G5 C6
	for _, freq := range []float64{523.25, 659.25, 783.99, 1046.5} {
		osc := NewOscillator(freq, parameter.FinishNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, parameter.FinishNoteDuration,
			parameter.CoinSoundAttack, parameter.FinishNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.35)
}

// CreateGameOverSound generates a long falling saw
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.GameOverSoundDuration
	osc := NewSweep(440, -400, d, WaveSaw, rate)
	shaped := NewEnvelope(osc, d, parameter.ExplosionSoundAttack, parameter.GameOverSoundRelease, rate)
	return newVolume(shaped, 0.4)
}

// GetSoundEffect returns the unity-volume streamer for the given type
func GetSoundEffect(soundType SoundType, rate beep.SampleRate) beep.Streamer {
	switch soundType {
	case SoundCoin:
		return CreateCoinSound(rate)
	case SoundExplosion:
		return CreateExplosionSound(rate)
	case SoundFinish:
		return CreateFinishSound(rate)
	case SoundGameOver:
		return CreateGameOverSound(rate)
	default:
		return nil
	}
}
