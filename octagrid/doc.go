// Package octagrid implements grid.Grid for the octagon-square (4.8.8)
// tiling used by the puzzle board.
//
// What:
//
//   - Octagons sit on integer lattice points (column, row); the small
//     diamond squares sit on the half-integer points between four octagons.
//   - One index space covers both families: [0, W·H) are octagons in
//     row-major order, [W·H, 2·W·H) are squares in the same order.
//   - Grids are bounded or toroidal (wrap); wrapping reduces the integer
//     part of a coordinate with floored modulo and keeps the .5 offset.
//   - An empty-cell overlay marks holes that stay addressable but are
//     reported absent by FindNeighbour and never returned by WhichTileAt.
//
// Geometry:
//
//	Every octagon is the unit cell around its lattice point with each
//	corner cut CornerCut along both edges. The cut corners of four
//	neighbouring octagons form one square, a diamond of half-diagonal
//	CornerCut.
//
//	A point belongs to the octagon when |dx|+|dy| ≤ 1−CornerCut relative
//	to the nearest lattice point. The cut line itself belongs to the
//	octagon, and an edge shared by two octagons belongs to the one with
//	the lower lattice coordinate.
//
// Complexity:
//
//   - Every query is O(1) time and allocation-free, except Outline,
//     Neighbours, Directions and EmptyCells which allocate their result.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrEmptyCellOutOfRange: an empty-cell index lies outside the grid.
//   - grid.ErrIndexOutOfRange: wrapped in the panic raised when a query
//     receives an index outside [0, Size()).
package octagrid
