package parameter

// Coins
const (
	// CoinSize is the sprite edge at scale 1
	CoinSize = 20

	// CoinSprites is the number of spin frames
	CoinSprites = 4

	// CoinSpriteDuration is ticks per spin frame
	CoinSpriteDuration = 6

	// CoinFadeoutSteps is the number of frames a collected coin floats away
	CoinFadeoutSteps = 10

	// CoinFadeoutShift is the upward drift per fade step
	CoinFadeoutShift = 10
)
