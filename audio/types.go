package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundCoin      SoundType = iota // Coins of a segment collected
	SoundExplosion                  // Barrier hit
	SoundFinish                     // Finish line crossed
	SoundGameOver                   // Craft destroyed
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"coin", "explosion", "finish", "gameover"}

// String returns the name used in configuration
func (st SoundType) String() string {
	if st < 0 || st >= soundTypeCount {
		return "unknown"
	}
	return soundNames[st]
}
