package parameter

import "time"

// Flight speed, in track units per tick
const (
	// FlySpeed is the cruise speed target
	FlySpeed = 5.0

	// FlySpeedAccelerator is added each tick until FlySpeed is reached
	FlySpeedAccelerator = 0.5

	// FlySpeedFinishAccelerator is subtracted each tick after the finish line
	FlySpeedFinishAccelerator = 0.1

	// PositionModulus wraps the track position
	PositionModulus = 100000
)

// Flight lifecycle
const (
	// StartWaitTicks is the countdown length
	StartWaitTicks = 40

	// FinishScreenDelay is the time between the finish line and the score transition
	FinishScreenDelay = 2000 * time.Millisecond

	// GameOverScreenDelay is the time between destruction and the menu transition
	GameOverScreenDelay = 2000 * time.Millisecond

	// StartTimerDuration is how long the READY banner stays before GO
	StartTimerDuration = 1300 * time.Millisecond
)
