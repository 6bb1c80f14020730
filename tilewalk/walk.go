package tilewalk

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/tilegrid/grid"
)

// queueItem pairs a tile with its BFS depth.
type queueItem struct {
	index int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  grid.Grid
	dirs  []grid.Direction
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS walks g breadth-first from start through non-empty neighbours.
// Returns ErrGridNil, ErrStartOutOfRange or ErrStartEmpty for invalid
// input, ErrOptionViolation for bad options, the context error on
// cancellation, or the wrapped OnVisit error.
func BFS(g grid.Grid, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= g.Size() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrStartOutOfRange, start, g.Size())
	}
	if g.IsEmpty(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartEmpty, start)
	}

	w := &walker{
		grid:  g,
		dirs:  g.Directions(),
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, 64),
		res: &Result{
			Order:  make([]int, 0, 64),
			Depth:  make(map[int]int),
			Parent: make(map[int]int),
		},
	}
	w.enqueue(start, 0, grid.NotFound)

	return w.res, w.loop()
}

// ShortestPath returns the fewest-steps path from → to, both inclusive.
func ShortestPath(g grid.Grid, from, to int, opts ...Option) ([]int, error) {
	res, err := BFS(g, from, opts...)
	if err != nil {
		return nil, err
	}
	return res.PathTo(to)
}

// Regions returns the connected components of non-empty tiles. Each region
// is sorted ascending and regions are ordered by their smallest tile.
func Regions(g grid.Grid) ([][]int, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	total := g.Size()
	seen := make([]bool, total)
	dirs := g.Directions()
	var regions [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || g.IsEmpty(i0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range dirs {
				v, empty := g.FindNeighbour(u, d)
				if empty || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		sort.Ints(queue)
		regions = append(regions, queue)
	}
	return regions, nil
}

// enqueue records index at depth d with its parent and queues it.
func (w *walker) enqueue(index, d, parent int) {
	w.res.Depth[index] = d
	if parent != grid.NotFound {
		w.res.Parent[index] = parent
	}
	w.queue = append(w.queue, queueItem{index: index, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.index)
		if err := w.opts.OnVisit(item.index, item.depth); err != nil {
			return fmt.Errorf("tilewalk: OnVisit error at %d: %w", item.index, err)
		}
		w.enqueueNeighbours(item)
	}
	return nil
}

// enqueueNeighbours queues every unseen, non-empty, permitted neighbour.
func (w *walker) enqueueNeighbours(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, d := range w.dirs {
		n, empty := w.grid.FindNeighbour(item.index, d)
		if empty {
			continue
		}
		if _, seen := w.res.Depth[n]; seen {
			continue
		}
		if !w.opts.Filter(item.index, n) {
			continue
		}
		w.enqueue(n, next, item.index)
	}
}
