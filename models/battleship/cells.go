package battleship

import (
	"math/bits"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

const cellSetWords = (BoardCells + 63) / 64

// CellSet is the set of cells a ship occupies. It is a plain
// value; every method works on a copy of the receiver.
type CellSet struct {
	words [cellSetWords]uint64
}

// Points off the board are ignored.
func NewCellSet(points ...Point) CellSet {
	var cs CellSet
	for _, p := range points {
		if !p.IsInBounds() {
			continue
		}
		i := ToIndex(p)
		cs.words[i/64] |= 1 << (uint(i) % 64)
	}
	return cs
}

func (cs CellSet) Contains(i CellIndex) bool {
	if i < 0 || int(i) >= BoardCells {
		return false
	}
	return cs.words[i/64]&(1<<(uint(i)%64)) != 0
}

func (cs CellSet) Len() int {
	n := 0
	for _, w := range cs.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Indices returns the occupied cells in ascending order.
func (cs CellSet) Indices() []CellIndex {
	indices := make([]CellIndex, 0, cs.Len())
	for wi, w := range cs.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			indices = append(indices, CellIndex(wi*64+b))
			w &= w - 1
		}
	}
	return indices
}

func (cs CellSet) Intersects(other CellSet) bool {
	for i := range cs.words {
		if cs.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// DetectCollision only looks at shared cells, ships
// touching edge to edge do not collide.
func DetectCollision(a, b CellSet) bool {
	return a.Intersects(b)
}

// PointsRange walks from start to end inclusive. The two points
// must share a row or a column.
func PointsRange(start, end Point) ([]Point, error) {
	if start.X != end.X && start.Y != end.Y {
		return nil, cerr.ErrInvalidShipShape("ship", start.X, start.Y, end.X, end.Y)
	}

	dx, dy := step(start.X, end.X), step(start.Y, end.Y)
	n := max(abs(end.X-start.X), abs(end.Y-start.Y)) + 1

	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{X: start.X + i*dx, Y: start.Y + i*dy}
	}
	return points, nil
}

// ShipCells expands a ship's endpoints into the set of cells it covers.
// Both endpoints must be on the board, a colinear run between two
// on-board points never leaves it.
func ShipCells(start, end Point) (CellSet, error) {
	points, err := PointsRange(start, end)
	if err != nil {
		return CellSet{}, err
	}
	if !start.IsInBounds() || !end.IsInBounds() {
		return CellSet{}, cerr.ErrShipOutOfBounds("ship", start.X, start.Y, end.X, end.Y)
	}
	return NewCellSet(points...), nil
}

func step(from, to int) int {
	switch {
	case to > from:
		return 1
	case to < from:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
