package octagrid

import "github.com/katalvlaran/tilegrid/grid"

// FindNeighbour returns the tile next to index in direction d.
//
// Octagons reach octagons orthogonally and squares diagonally; squares
// reach octagons diagonally and have no orthogonal neighbours at all.
// The target goes through the same wrap/bounds rule as PositionToIndex.
// empty is true when the neighbour is missing (neighbour == grid.NotFound)
// or is an empty cell (neighbour is its index).
// Panics if index is out of range.
func (g *OctaGrid) FindNeighbour(index int, d grid.Direction) (neighbour int, empty bool) {
	g.mustIndex(index)
	if !d.Valid() {
		return grid.NotFound, true
	}
	if index >= g.cells && !d.Diagonal() {
		return grid.NotFound, true
	}
	col2, row2 := g.halfPosition(index)
	delta := d.Delta()
	n := g.resolve(col2+delta.DCol, row2+delta.DRow)
	if n == grid.NotFound {
		return grid.NotFound, true
	}
	return n, g.IsEmpty(n)
}

// Neighbours returns FindNeighbour for every direction, in table order.
// Panics if index is out of range.
func (g *OctaGrid) Neighbours(index int) []Neighbour {
	dirs := g.Directions()
	out := make([]Neighbour, 0, len(dirs))
	for _, d := range dirs {
		n, empty := g.FindNeighbour(index, d)
		out = append(out, Neighbour{Direction: d, Index: n, Empty: empty})
	}
	return out
}
