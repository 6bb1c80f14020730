package octagrid

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tilegrid/grid"
)

// New builds a width×height grid. wrap makes both axes toroidal.
// Returns ErrInvalidDimensions for non-positive sizes and
// ErrEmptyCellOutOfRange for bad WithEmptyCells indices.
func New(width, height int, wrap bool, opts ...Option) (*OctaGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, width, height)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	g := &OctaGrid{
		width:  width,
		height: height,
		cells:  width * height,
		wrap:   wrap,
	}
	empty, err := g.emptySet(o.empty)
	if err != nil {
		return nil, err
	}
	g.empty = empty

	return g, nil
}

// MustNew is like New but panics on error. Meant for fixed, known-good
// configurations such as tests and package-level boards.
func MustNew(width, height int, wrap bool, opts ...Option) *OctaGrid {
	g, err := New(width, height, wrap, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// ReplaceEmptyCells returns a copy of g whose overlay is exactly indices.
// g itself is left untouched, so readers holding it keep a consistent view.
func (g *OctaGrid) ReplaceEmptyCells(indices ...int) (*OctaGrid, error) {
	empty, err := g.emptySet(indices)
	if err != nil {
		return nil, err
	}
	return &OctaGrid{
		width:  g.width,
		height: g.height,
		cells:  g.cells,
		wrap:   g.wrap,
		empty:  empty,
	}, nil
}

// emptySet validates indices and collects them into a set.
func (g *OctaGrid) emptySet(indices []int) (map[int]struct{}, error) {
	set := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= g.Size() {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrEmptyCellOutOfRange, idx, g.Size())
		}
		set[idx] = struct{}{}
	}
	return set, nil
}

// Width returns the number of octagon columns.
func (g *OctaGrid) Width() int { return g.width }

// Height returns the number of octagon rows.
func (g *OctaGrid) Height() int { return g.height }

// Wrap reports whether the grid is toroidal.
func (g *OctaGrid) Wrap() bool { return g.wrap }

// Size returns 2·W·H: one octagon and one square per lattice cell.
func (g *OctaGrid) Size() int { return 2 * g.cells }

// IsEmpty reports whether index is a hole. Out-of-range indices are not.
func (g *OctaGrid) IsEmpty(index int) bool {
	_, ok := g.empty[index]
	return ok
}

// EmptyCells returns the overlay as an ascending slice.
func (g *OctaGrid) EmptyCells() []int {
	out := make([]int, 0, len(g.empty))
	for idx := range g.empty {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Kind reports which tile family index belongs to. Panics if out of range.
func (g *OctaGrid) Kind(index int) grid.Kind {
	g.mustIndex(index)
	if index < g.cells {
		return grid.Octagon
	}
	return grid.Square
}

// Directions returns the eight directions in iteration order.
func (g *OctaGrid) Directions() []grid.Direction {
	return grid.Directions()
}

// String describes the grid, e.g. "octagrid 4×3 wrap (2 empty)".
func (g *OctaGrid) String() string {
	topology := "bounded"
	if g.wrap {
		topology = "wrap"
	}
	return fmt.Sprintf("octagrid %d×%d %s (%d empty)", g.width, g.height, topology, len(g.empty))
}

// mustIndex panics unless index is in [0, Size()).
func (g *OctaGrid) mustIndex(index int) {
	if index < 0 || index >= g.Size() {
		panic(fmt.Errorf("%w: %d not in [0, %d)", grid.ErrIndexOutOfRange, index, g.Size()))
	}
}
