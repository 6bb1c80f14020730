// Package tilegrid is a geometric indexing toolkit for puzzle boards built
// from interleaved tile families, starting with the octagon-square (4.8.8)
// tiling.
//
// What you get:
//
//   - grid/     — the shared Grid contract, the ordered Direction table and NotFound
//   - octagrid/ — octagon-square grids: index↔position, hit testing, neighbours,
//     bounded or toroidal, with an empty-cell overlay
//   - tilewalk/ — BFS, shortest tile paths and connected regions over any Grid
//   - config/   — YAML board descriptions with an embedded default
//   - cmd/octagrid — a small CLI to inspect boards from the terminal
//
// Everything in grid, octagrid and tilewalk is pure and allocation-light;
// grids are immutable, so one *octagrid.OctaGrid can serve any number of
// goroutines. To change the holes of a board, build a new grid with
// ReplaceEmptyCells and swap the reference.
//
// Quick example:
//
//	g := octagrid.MustNew(4, 3, true)
//	x, y := g.IndexToPosition(6)          // 2, 1
//	idx := g.WhichTileAt(0.5, -0.2)       // 20, the square across the top edge
//	n, empty := g.FindNeighbour(0, grid.NorthEast)
//
//	go get github.com/katalvlaran/tilegrid
package tilegrid
