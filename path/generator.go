package path

import (
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/racer796/parameter"
)

// Pick records one barrier selection for inspection
type Pick struct {
	Barrier BarrierID

	// Cooldown is the counter matrix immediately before selection
	Cooldown [Rows][Cols]int

	// Fallback is set when the density filter left nothing and the full catalog was used
	Fallback bool
}

// Generator builds one full track instance
// Not safe for concurrent use; a generator is owned by the walls manager
type Generator struct {
	rng     *rand.Rand
	catalog []Barrier

	cooldown [Rows][Cols]int
	recent   []BarrierID
	picks    []Pick
}

// NewGenerator creates a generator over the default catalog
func NewGenerator(rng *rand.Rand) *Generator {
	return NewGeneratorWithCatalog(rng, Catalog())
}

// NewGeneratorWithCatalog creates a generator over a custom catalog
func NewGeneratorWithCatalog(rng *rand.Rand, catalog []Barrier) *Generator {
	return &Generator{rng: rng, catalog: catalog}
}

// Length is the number of lines every generated track has
func Length() int {
	return 2*parameter.BarriersCount + parameter.PathDistanceFromStart + parameter.PathDistanceToFinish + 1
}

// Picks returns the selections made by the last Generate call
func (g *Generator) Picks() []Pick {
	return g.picks
}

// Generate produces the ordered segment list of one track
func (g *Generator) Generate() []*Line {
	g.cooldown = [Rows][Cols]int{}
	g.recent = g.recent[:0]
	g.picks = g.picks[:0]

	path := make([]*Line, 0, Length())

	for i := 0; i < parameter.BarriersCount; i++ {
		path = append(path, &Line{})
		g.increaseCooldown()

		path = append(path, &Line{Barrier: g.pickBarrier()})
		g.increaseCooldown()
	}

	for i := 0; i < parameter.PathDistanceToFinish; i++ {
		path = append(path, &Line{})
	}

	g.placeCoins(path)

	start := make([]*Line, parameter.PathDistanceFromStart, Length())
	for i := range start {
		start[i] = &Line{}
	}
	path = append(start, path...)

	lights := TrafficLights
	path[0].Barrier = &lights

	finish := Finish
	path = append(path, &Line{Barrier: &finish})

	return path
}

func (g *Generator) increaseCooldown() {
	for r := range g.cooldown {
		for c := range g.cooldown[r] {
			g.cooldown[r][c]++
		}
	}
}

// eligible reports whether every cell of the shape has cooled down
func (g *Generator) eligible(s Shape) bool {
	for r := range s {
		for c := range s[r] {
			if s[r][c] && g.cooldown[r][c] < parameter.BarriersThresholdShapeCellValue {
				return false
			}
		}
	}
	return true
}

func (g *Generator) pickBarrier() *Barrier {
	pick := Pick{Cooldown: g.cooldown}

	list := make([]*Barrier, 0, len(g.catalog))
	for i := range g.catalog {
		if g.eligible(g.catalog[i].Shape) {
			list = append(list, &g.catalog[i])
		}
	}
	if len(list) == 0 {
		pick.Fallback = true
		list = g.all()
	}

	list = g.withoutRecent(list)
	if len(list) == 0 {
		// Density and recency together exclude everything; recency still wins
		pick.Fallback = true
		list = g.withoutRecent(g.all())
		if len(list) == 0 {
			list = g.all()
		}
	}

	b := list[g.rng.IntN(len(list))]
	pick.Barrier = b.ID
	g.picks = append(g.picks, pick)

	g.recent = append(g.recent, b.ID)
	if len(g.recent) > parameter.BarriersCooldownBufferLength {
		g.recent = g.recent[1:]
	}

	for r := range b.Shape {
		for c := range b.Shape[r] {
			if b.Shape[r][c] {
				g.cooldown[r][c] = 0
			}
		}
	}

	out := *b
	return &out
}

func (g *Generator) all() []*Barrier {
	list := make([]*Barrier, len(g.catalog))
	for i := range g.catalog {
		list[i] = &g.catalog[i]
	}
	return list
}

func (g *Generator) withoutRecent(list []*Barrier) []*Barrier {
	out := list[:0:0]
	for _, b := range list {
		if !slices.Contains(g.recent, b.ID) {
			out = append(out, b)
		}
	}
	return out
}

// placeCoins scans the path in non-overlapping windows and drops one coin lane per window
func (g *Generator) placeCoins(path []*Line) {
	span := parameter.CoinWindowMax - parameter.CoinWindowMin + 1

	for offset := 0; offset < len(path); {
		end := min(len(path), offset+parameter.CoinWindowMin+g.rng.IntN(span))

		var blocked Shape
		for i := offset; i < end; i++ {
			if b := path[i].Barrier; b != nil {
				blocked = blocked.Union(b.Shape)
			}
		}

		if row, col, ok := g.freeCell(blocked); ok {
			for i := offset; i < end; i++ {
				path[i].Coins[row][col] = Present()
			}
		}

		offset = end
	}
}

// freeCell scans lane rows bottom-up and picks a random free column in the first row that has one
func (g *Generator) freeCell(blocked Shape) (row, col int, ok bool) {
	for r := Rows - 1; r >= 0; r-- {
		free := make([]int, 0, Cols)
		for c := 0; c < Cols; c++ {
			if !blocked[r][c] {
				free = append(free, c)
			}
		}
		if len(free) > 0 {
			return r, free[g.rng.IntN(len(free))], true
		}
	}
	return 0, 0, false
}
