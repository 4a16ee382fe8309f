package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Expected 50 samples, got %d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond

	got := drain(NewOscillator(440, duration, WaveSine, rate))
	if len(got) != rate.N(duration) {
		t.Errorf("Expected %d samples, got %d", rate.N(duration), len(got))
	}
}

// TestNoiseDeterministic verifies two renderings of the same noise match
func TestNoiseDeterministic(t *testing.T) {
	rate := beep.SampleRate(44100)
	a := drain(NewOscillator(0, 20*time.Millisecond, WaveNoise, rate))
	b := drain(NewOscillator(0, 20*time.Millisecond, WaveNoise, rate))

	varied := false
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Sample %d differs: %v vs %v", i, a[i], b[i])
		}
		if a[i][0] != a[0][0] {
			varied = true
		}
	}
	if !varied {
		t.Error("Expected noise samples to vary")
	}
}

// TestEnvelopeEdges verifies the envelope starts silent and ends faded
func TestEnvelopeEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(440, d, WaveSquare, rate), d, 20*time.Millisecond, 20*time.Millisecond, rate)

	got := drain(env)
	if got[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", got[0][0])
	}
	mid := got[len(got)/2][0]
	if math.Abs(mid) != 1 {
		t.Errorf("Expected full level in sustain, got %f", mid)
	}
	if last := math.Abs(got[len(got)-1][0]); last > 0.01 {
		t.Errorf("Expected faded last sample, got %f", last)
	}
}

// TestSoundEffectsFinite verifies every effect ends, stays in range and is not silent
func TestSoundEffectsFinite(t *testing.T) {
	rate := beep.SampleRate(44100)
	for st := range soundTypeCount {
		s := GetSoundEffect(st, rate)
		if s == nil {
			t.Fatalf("Expected an effect for %s", st)
		}
		samples := drain(s)
		if len(samples) == 0 || len(samples) > rate.N(2*time.Second) {
			t.Errorf("%s: unexpected length %d", st, len(samples))
		}
		peak := 0.0
		for _, v := range samples {
			peak = max(peak, math.Abs(v[0]))
		}
		if peak == 0 || peak > 1 {
			t.Errorf("%s: peak %f out of range", st, peak)
		}
	}
	if GetSoundEffect(soundTypeCount, rate) != nil {
		t.Error("Expected nil for an unknown effect")
	}
}

// TestSoundCacheReuse verifies buffers are rendered once
func TestSoundCacheReuse(t *testing.T) {
	c := newSoundCache(beep.SampleRate(22050))
	a := c.get(SoundCoin)
	if a == nil || a.Len() == 0 {
		t.Fatal("Expected a rendered coin buffer")
	}
	if c.get(SoundCoin) != a {
		t.Error("Expected the cached buffer")
	}
	if c.get(SoundType(-1)) != nil {
		t.Error("Expected nil for an invalid type")
	}
}
