// Package tilewalk explores any grid.Grid as an unweighted graph whose
// edges are the FindNeighbour relations.
//
// What:
//
//   - BFS walks outward from a start tile, recording visit order, depth
//     and parent links; hooks, depth limits, neighbour filters and
//     context cancellation are available as functional options.
//   - ShortestPath returns the fewest-steps tile path between two tiles.
//   - Regions groups non-empty tiles into connected components, e.g. to
//     detect a board split in two by holes.
//
// Empty cells are never entered; a start tile that is itself empty is
// rejected with ErrStartEmpty.
//
// Complexity:
//
//   - BFS, ShortestPath: O(V·d) time, O(V) memory (d = len(Directions())).
//   - Regions:           O(V·d) time, O(V) memory.
package tilewalk
