package parameter

import "time"

// Screen raster, all simulation coordinates are in these pixels
const (
	// ScreenWidth is the logical raster width
	ScreenWidth = 320

	// ScreenHeight is the logical raster height
	ScreenHeight = 240
)

// Game Loop Timing
const (
	// TickInterval is the fixed simulation tick, 1000/24 ms rounded (24 ticks per second)
	TickInterval = 42 * time.Millisecond
)

// TicksFor converts a wall-clock delay into whole simulation ticks, minimum 1
func TicksFor(d time.Duration) int {
	n := int((d + TickInterval - 1) / TickInterval)
	if n < 1 {
		return 1
	}
	return n
}
