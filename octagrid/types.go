package octagrid

import "github.com/katalvlaran/tilegrid/grid"

// CornerCut is the length cut from each octagon corner along both edges,
// in lattice units. It is also the half-diagonal of every square tile.
const CornerCut = 1.0 / 3.0

// octagonReach is the largest |dx|+|dy| still inside an octagon.
const octagonReach = 1 - CornerCut

// maxHalfStep bounds half-lattice coordinates so float→int conversion
// stays exact.
const maxHalfStep = 1 << 52

// OctaGrid is an immutable octagon-square grid. All methods are safe for
// concurrent use; the empty-cell overlay is replaced, never mutated.
type OctaGrid struct {
	width, height int
	cells         int // width*height, the first square index
	wrap          bool
	empty         map[int]struct{}
}

// Option configures an OctaGrid at construction.
type Option func(*options)

type options struct {
	empty []int
}

// WithEmptyCells marks the given indices as holes in the board.
// Duplicates are ignored; out-of-range indices make New fail.
func WithEmptyCells(indices ...int) Option {
	return func(o *options) {
		o.empty = append(o.empty, indices...)
	}
}

// Neighbour is one entry of the full neighbourhood of a tile.
type Neighbour struct {
	Direction grid.Direction
	Index     int  // grid.NotFound when no tile exists
	Empty     bool // true when absent for any reason
}

var _ grid.Grid = (*OctaGrid)(nil)
