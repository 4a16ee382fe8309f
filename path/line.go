package path

// CoinState tags a coin cell
type CoinState uint8

const (
	CoinEmpty CoinState = iota
	CoinPresent
	CoinFading
)

// CoinCell is one lane cell of a coin layout
// Step counts fade frames and is only meaningful while Fading
type CoinCell struct {
	State CoinState
	Step  int
}

// Present is a coin waiting to be collected
func Present() CoinCell { return CoinCell{State: CoinPresent} }

// Fading is a collected coin at the given fade step
func Fading(step int) CoinCell { return CoinCell{State: CoinFading, Step: step} }

// CoinGrid is the coin layout of one segment
type CoinGrid [Rows][Cols]CoinCell

// Any reports whether the grid holds a coin in any state
func (g *CoinGrid) Any() bool {
	for r := range g {
		for c := range g[r] {
			if g[r][c].State != CoinEmpty {
				return true
			}
		}
	}
	return false
}

// HasPresent reports whether any coin is still collectable
func (g *CoinGrid) HasPresent() bool {
	for r := range g {
		for c := range g[r] {
			if g[r][c].State == CoinPresent {
				return true
			}
		}
	}
	return false
}

// Collect turns every present coin into the first fade step and returns how many changed
func (g *CoinGrid) Collect() int {
	n := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c].State == CoinPresent {
				g[r][c] = Fading(0)
				n++
			}
		}
	}
	return n
}

// Shape returns the cells holding a coin in any state
func (g *CoinGrid) Shape() Shape {
	var s Shape
	for r := range g {
		for c := range g[r] {
			s[r][c] = g[r][c].State != CoinEmpty
		}
	}
	return s
}

// Line is one generated track segment
type Line struct {
	// Barrier is nil for an empty segment, otherwise it points at an immutable catalog value
	Barrier *Barrier
	Coins   CoinGrid
}
