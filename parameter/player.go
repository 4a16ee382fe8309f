package parameter

// Ship
const (
	// ShipMaxHP is the hit point pool of a fresh craft
	ShipMaxHP = 200

	// ShipMoveStep is the near rectangle shift per tick of held direction
	ShipMoveStep = 7

	// ShipSpriteSize is the size of one frame in the ship sprite sheet
	ShipSpriteSize = 240

	// ShipScale is the render scale of the sprite
	ShipScale = 0.5

	ShipAngleStep     = 7.5
	ShipTurnMaxAngle  = 30.0
	ShipFlipMaxAngle  = 90.0
	ShipBlinkDuration = 1 // ticks per engine flame frame

	// ShipMoveToFOVCoefficient converts view shift into on-screen ship shift
	ShipMoveToFOVCoefficient = 0.2

	// ShipShiftY lowers the ship below screen center
	ShipShiftY = 50

	ShipWaveAngleStep   = 10
	ShipWaveShiftLength = 4
)

// ShipAngleSprites maps a bank angle to its sprite column
var ShipAngleSprites = [...]struct {
	Angle  float64
	Column int
}{
	{0, 0}, {15, 1}, {30, 2}, {45, 3}, {60, 4}, {75, 5},
	{-15, 6}, {-30, 7}, {-45, 8}, {-60, 9}, {-75, 10},
}
