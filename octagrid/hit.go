package octagrid

import (
	"math"

	"github.com/katalvlaran/tilegrid/grid"
)

// WhichTileAt returns the tile whose polygon contains (x, y).
//
// The point is first rounded to the nearest lattice point (ties toward the
// lower coordinate). If it lies within octagonReach (L1 distance) of that
// point it belongs to the octagon there; otherwise it sits in one of the
// four cut corners, which is the square in the diagonal direction matching
// the signs of the offset. The result goes through the same wrap/bounds
// rule as PositionToIndex. Empty cells and points outside a bounded grid
// yield grid.NotFound.
func (g *OctaGrid) WhichTileAt(x, y float64) int {
	cx, cy := math.Ceil(x-0.5), math.Ceil(y-0.5)
	col2, ok := halfStep(cx)
	if !ok {
		return grid.NotFound
	}
	row2, ok := halfStep(cy)
	if !ok {
		return grid.NotFound
	}

	dx, dy := x-cx, y-cy
	if math.Abs(dx)+math.Abs(dy) > octagonReach {
		// outside the cut line both offsets are non-zero
		d, _ := grid.DiagonalFor(dx, dy)
		delta := d.Delta()
		col2 += delta.DCol
		row2 += delta.DRow
	}

	idx := g.resolve(col2, row2)
	if idx == grid.NotFound || g.IsEmpty(idx) {
		return grid.NotFound
	}
	return idx
}

// Outline returns the polygon of a tile in lattice units, vertices in
// order around the centre: eight for an octagon, four for a square.
// The polygons tile the plane exactly and agree with WhichTileAt.
// Panics if index is out of range.
func (g *OctaGrid) Outline(index int) []grid.Point {
	cx, cy := g.IndexToPosition(index)
	const (
		h = 0.5
		a = CornerCut
	)
	if index >= g.cells {
		return []grid.Point{
			{X: cx + a, Y: cy},
			{X: cx, Y: cy + a},
			{X: cx - a, Y: cy},
			{X: cx, Y: cy - a},
		}
	}
	return []grid.Point{
		{X: cx + h, Y: cy - h + a},
		{X: cx + h, Y: cy + h - a},
		{X: cx + h - a, Y: cy + h},
		{X: cx - h + a, Y: cy + h},
		{X: cx - h, Y: cy + h - a},
		{X: cx - h, Y: cy - h + a},
		{X: cx - h + a, Y: cy - h},
		{X: cx + h - a, Y: cy - h},
	}
}
