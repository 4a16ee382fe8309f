package parameter

// Walls and segments
const (
	// WallDistance is the along-track spacing between segments
	WallDistance = 40

	// WallStartScale is the size scale of a segment at the far plane
	WallStartScale = 0.05

	// WallBrightnessFactor multiplies the eased scale into a brightness percent
	WallBrightnessFactor = 1000

	// WallShipPosition is the eased scale at which the craft is drawn and segments are tested
	WallShipPosition = 0.94

	// WallSideScale enlarges side buildings relative to the lane barrier
	WallSideScale = 1.4

	// WallImageCount is the number of wall/barrier images in the atlas
	WallImageCount = 14
)

// WallSequence selects side building images by segment id
var WallSequence = [...]int{0, 1, 2, 8, 4, 3, 2, 2, 1, 4, 3, 8, 8, 0, 2, 1, 4}

// WallSideOffset is the sequence distance between left and right side images
const WallSideOffset = 4

// WallAnimation describes a sprite strip
type WallAnimation struct {
	Sprites  int
	Duration int // ticks per sprite
}

// WallAnimated lists the animated wall images keyed by image index
var WallAnimated = map[int]WallAnimation{
	6:  {Sprites: 2, Duration: 12},
	12: {Sprites: 3, Duration: 24},
}

// Path generation
const (
	// BarriersCount is the number of barrier segments in one track
	BarriersCount = 100

	// BarriersCooldownBufferLength is the recency window of the anti-repeat filter
	BarriersCooldownBufferLength = 8

	// BarriersThresholdShapeCellValue is the cooldown a lane cell needs before it is blocked again
	BarriersThresholdShapeCellValue = 5

	// BarriersLineHeight is the lane row height at scale 1
	BarriersLineHeight = 60

	// PathDistanceFromStart is the empty start buffer length
	PathDistanceFromStart = 10

	// PathDistanceToFinish is the empty tail before the finish line
	PathDistanceToFinish = 5

	// CoinWindowMin and CoinWindowMax bound the coin placement window length
	CoinWindowMin = 2
	CoinWindowMax = 7
)

// Floor
const (
	FloorLineLength    = 40
	FloorLineCount     = 26
	FloorLightSize     = 4
	FloorHorizonHeight = 6
)
