package grid

import "fmt"

// NotFound is returned by every query whose answer is "no tile".
const NotFound = -1

// Kind distinguishes the two tile families of a grid.
type Kind int

const (
	// Octagon tiles sit on integer lattice coordinates.
	Octagon Kind = iota
	// Square tiles sit on half-integer lattice coordinates.
	Square
)

// String returns the lower-case family name.
func (k Kind) String() string {
	switch k {
	case Octagon:
		return "octagon"
	case Square:
		return "square"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Point is a position in continuous lattice space.
type Point struct {
	X, Y float64
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Grid is the query surface every tiling family implements.
// Implementations are immutable, so all methods are safe for concurrent use.
type Grid interface {
	// Size returns the number of tile indices, valid indices being [0, Size()).
	Size() int

	// IndexToPosition returns the lattice position of the tile centre.
	// It panics if index is out of range.
	IndexToPosition(index int) (x, y float64)

	// PositionToIndex returns the tile centred at (row, column),
	// or NotFound if no tile is centred there.
	PositionToIndex(row, column float64) int

	// WhichTileAt returns the non-empty tile whose polygon contains (x, y),
	// or NotFound.
	WhichTileAt(x, y float64) int

	// FindNeighbour returns the tile adjacent to index in direction d and
	// whether that neighbour is absent (out of range, structurally missing
	// or an empty cell). The index is NotFound when no tile exists at all.
	FindNeighbour(index int, d Direction) (neighbour int, empty bool)

	// IsEmpty reports whether index is part of the empty-cell overlay.
	IsEmpty(index int) bool

	// Directions returns the supported directions in iteration order.
	Directions() []Direction
}
