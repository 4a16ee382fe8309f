package path

// Rows and Cols size the lane grid: three lane rows (top to bottom) by four lane columns
const (
	Rows = 3
	Cols = 4
)

// BarrierID identifies a catalog entry; recency and selection are tracked by id
type BarrierID int

// Shape marks the lane cells a barrier blocks
type Shape [Rows][Cols]bool

// Cells returns the number of occupied cells
func (s Shape) Cells() int {
	n := 0
	for r := range s {
		for c := range s[r] {
			if s[r][c] {
				n++
			}
		}
	}
	return n
}

// Union returns the cells occupied by either shape
func (s Shape) Union(o Shape) Shape {
	for r := range s {
		for c := range s[r] {
			s[r][c] = s[r][c] || o[r][c]
		}
	}
	return s
}

// Overlaps reports whether any cell is occupied by both shapes
func (s Shape) Overlaps(o Shape) bool {
	for r := range s {
		for c := range s[r] {
			if s[r][c] && o[r][c] {
				return true
			}
		}
	}
	return false
}

// Barrier is an immutable catalog entry
type Barrier struct {
	ID BarrierID

	// Image is the atlas index of the sprite
	Image int

	// Col anchors the sprite to a lane column when positive, Offset adds pixels at scale 1
	Col    int
	Offset int

	// Flipped mirrors the sprite and anchors it to the right edge of the lane
	Flipped bool

	Shape Shape
}

// Marker ids outside the catalog range
const (
	TrafficLightsID BarrierID = 100
	FinishID        BarrierID = 101
)

// TrafficLights marks the start segment
var TrafficLights = Barrier{ID: TrafficLightsID, Image: 12}

// Finish marks the last segment
var Finish = Barrier{ID: FinishID, Image: 13}

// IsFinish reports whether b is the finish line
func (b *Barrier) IsFinish() bool {
	return b != nil && b.ID == FinishID
}

// IsTrafficLights reports whether b is the start marker
func (b *Barrier) IsTrafficLights() bool {
	return b != nil && b.ID == TrafficLightsID
}

// row shorthands for the catalog table
var (
	full  = [Cols]bool{true, true, true, true}
	empty = [Cols]bool{}
)

func cols(c ...int) [Cols]bool {
	var r [Cols]bool
	for _, i := range c {
		r[i] = true
	}
	return r
}

func lane(id BarrierID, img, col, offset int, flipped bool, shape Shape) Barrier {
	return Barrier{ID: id, Image: img, Col: col, Offset: offset, Flipped: flipped, Shape: shape}
}

var catalog = []Barrier{
	{ID: 1, Image: 5, Shape: Shape{full, empty, empty}},
	{ID: 2, Image: 6, Shape: Shape{empty, full, empty}},

	// Low blocks, one lane each
	lane(3, 7, 0, 10, false, Shape{empty, empty, cols(0)}),
	lane(4, 7, 1, 10, false, Shape{empty, empty, cols(1)}),
	lane(5, 7, 2, 10, false, Shape{empty, empty, cols(2)}),
	lane(6, 7, 3, 10, false, Shape{empty, empty, cols(3)}),

	// Middle gates
	lane(7, 9, 1, 40, false, Shape{empty, cols(1, 2, 3), cols(1)}),
	lane(8, 9, 2, 40, false, Shape{empty, cols(2, 3), cols(2)}),
	lane(9, 9, 3, 40, false, Shape{empty, cols(3), cols(3)}),
	lane(10, 9, 0, 40, true, Shape{empty, cols(0), cols(0)}),
	lane(11, 9, 1, 40, true, Shape{empty, cols(0, 1), cols(1)}),
	lane(12, 9, 2, 40, true, Shape{empty, cols(0, 1, 2), cols(2)}),

	// Tall gates
	lane(13, 10, 1, 40, false, Shape{cols(1, 2, 3), cols(1), cols(1)}),
	lane(14, 10, 2, 40, false, Shape{cols(2, 3), cols(2), cols(2)}),
	lane(15, 10, 3, 40, false, Shape{cols(3), cols(3), cols(3)}),
	lane(16, 10, 0, 40, true, Shape{cols(0), cols(0), cols(0)}),
	lane(17, 10, 1, 40, true, Shape{cols(0, 1), cols(1), cols(1)}),
	lane(18, 10, 2, 40, true, Shape{cols(0, 1, 2), cols(2), cols(2)}),

	// Ground walls
	lane(19, 11, 1, 60, false, Shape{empty, empty, cols(1, 2, 3)}),
	lane(20, 11, 2, 60, false, Shape{empty, empty, cols(2, 3)}),
	lane(21, 11, 3, 60, false, Shape{empty, empty, cols(3)}),
	lane(22, 11, 0, 60, true, Shape{empty, empty, cols(0)}),
	lane(23, 11, 1, 60, true, Shape{empty, empty, cols(0, 1)}),
	lane(24, 11, 2, 60, true, Shape{empty, empty, cols(0, 1, 2)}),
}

// Catalog returns a copy of the barrier catalog in id order
func Catalog() []Barrier {
	out := make([]Barrier, len(catalog))
	copy(out, catalog)
	return out
}
