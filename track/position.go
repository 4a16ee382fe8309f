// Package track holds the scalar along-track position shared by every depth-dependent item
package track

import "github.com/lixenwraith/racer796/parameter"

// Position is the distance flown, wrapped at PositionModulus
// Owned by the game, read by walls, floor and background
type Position struct {
	value int
}

// Value returns the current position
func (p *Position) Value() int {
	return p.value
}

// Set replaces the position, wrapping into [0, PositionModulus)
func (p *Position) Set(v int) {
	p.value = wrap(v)
}

// Advance moves forward by delta
func (p *Position) Advance(delta int) {
	p.value = wrap(p.value + delta)
}

// Reset returns to the start of the track
func (p *Position) Reset() {
	p.value = 0
}

func wrap(v int) int {
	v %= parameter.PositionModulus
	if v < 0 {
		v += parameter.PositionModulus
	}
	return v
}
