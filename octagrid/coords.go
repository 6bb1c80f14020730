package octagrid

import (
	"math"

	"github.com/katalvlaran/tilegrid/grid"
)

// IndexToPosition returns the lattice position (x = column, y = row) of
// the tile centre: integers for octagons, x.5 values for squares.
// Panics if index is out of range.
func (g *OctaGrid) IndexToPosition(index int) (x, y float64) {
	g.mustIndex(index)
	col2, row2 := g.halfPosition(index)
	return float64(col2) / 2, float64(row2) / 2
}

// PositionToIndex returns the tile centred at (row, column), or
// grid.NotFound when the coordinates are malformed (fraction other than
// 0 or .5, or mixed kinds) or fall outside a bounded grid.
// Wrapping grids reduce the integer parts modulo height and width first.
func (g *OctaGrid) PositionToIndex(row, column float64) int {
	row2, ok := halfStep(row)
	if !ok {
		return grid.NotFound
	}
	col2, ok := halfStep(column)
	if !ok {
		return grid.NotFound
	}
	return g.resolve(col2, row2)
}

// halfPosition returns the tile centre of a valid index in half-lattice units.
func (g *OctaGrid) halfPosition(index int) (col2, row2 int) {
	if index < g.cells {
		return 2 * (index % g.width), 2 * (index / g.width)
	}
	s := index - g.cells
	return 2*(s%g.width) + 1, 2*(s/g.width) + 1
}

// resolve maps a half-lattice coordinate to an index. Both axes even is an
// octagon, both odd a square; anything else is grid.NotFound.
func (g *OctaGrid) resolve(col2, row2 int) int {
	odd := col2&1 != 0
	if odd != (row2&1 != 0) {
		return grid.NotFound
	}
	// arithmetic shift floors negative values, keeping the .5 offset implicit
	c, r := col2>>1, row2>>1
	if g.wrap {
		c, r = floorMod(c, g.width), floorMod(r, g.height)
	} else if c < 0 || c >= g.width || r < 0 || r >= g.height {
		return grid.NotFound
	}
	idx := r*g.width + c
	if odd {
		idx += g.cells
	}
	return idx
}

// halfStep converts v to half-lattice units. ok is false unless v is a
// whole or half integer of representable magnitude.
func halfStep(v float64) (int, bool) {
	d := v * 2
	if math.IsNaN(d) || math.IsInf(d, 0) || math.Abs(d) > maxHalfStep || d != math.Trunc(d) {
		return 0, false
	}
	return int(d), true
}

// floorMod is a mod n with the sign of n (always in [0, n) for n > 0).
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
