// Package grid defines the capability contract shared by every tiling
// family in github.com/katalvlaran/tilegrid.
//
// What:
//
//   - Grid is the read-only query surface: index↔position conversion,
//     point containment and directional neighbours.
//   - Direction is the fixed, ordered table of the eight compass steps,
//     each with an integral delta in half-lattice units.
//   - NotFound is the single sentinel returned for absent tiles.
//
// Why:
//
//   - Renderers, solvers and input handlers hold a Grid, never a concrete
//     tiling type, so new tilings plug in without touching callers.
//
// Addressing:
//
//	Lattice coordinates are (column, row). A tile sitting on integer
//	coordinates is a primary tile; a tile sitting on half-integer
//	coordinates (x.5, y.5) fills the gap between four primary tiles.
//	Directions express their deltas doubled, so (+1, −1) means
//	"half a column right, half a row up".
//
// Errors:
//
//   - ErrIndexOutOfRange: an index outside [0, Size()) was passed to an
//     operation whose contract requires a valid index.
//   - ErrUnknownDirection: ParseDirection could not recognise its input.
package grid
