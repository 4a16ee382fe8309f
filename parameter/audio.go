package parameter

import "time"

// Sound effects
const (
	CoinSoundDuration      = 120 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundRelease       = 80 * time.Millisecond
	ExplosionSoundDuration = 350 * time.Millisecond
	FinishSoundDuration    = 600 * time.Millisecond
	AudioSampleRate        = 44100
)

// Tone shapes
const (
	ExplosionSoundAttack  = 2 * time.Millisecond
	ExplosionSoundRelease = 300 * time.Millisecond
	FinishNoteDuration    = 150 * time.Millisecond
	FinishNoteRelease     = 100 * time.Millisecond
	GameOverSoundDuration = 900 * time.Millisecond
	GameOverSoundRelease  = 600 * time.Millisecond
	SpeakerBufferDuration = 100 * time.Millisecond
)
