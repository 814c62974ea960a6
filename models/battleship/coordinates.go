package battleship

const (
	// Boards are always square
	BoardSize  int = 10
	BoardCells int = BoardSize * BoardSize

	ValidLowerBound int = 0
	ValidUpperBound int = BoardSize - 1
)

// Point is a cell on the board. X is the row
// and Y is the column, both zero based.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) IsInBounds() bool {
	return p.X >= ValidLowerBound && p.X <= ValidUpperBound &&
		p.Y >= ValidLowerBound && p.Y <= ValidUpperBound
}

// CellIndex is the flat, row-major position of a cell.
type CellIndex int

// ToIndex expects p to be in bounds.
func ToIndex(p Point) CellIndex {
	return CellIndex(p.X*BoardSize + p.Y)
}

// ToPoint expects i to be in [0, BoardCells).
func ToPoint(i CellIndex) Point {
	return Point{X: int(i) / BoardSize, Y: int(i) % BoardSize}
}
