package tilewalk

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for tile walks.
var (
	// ErrGridNil is returned if a nil grid is passed.
	ErrGridNil = errors.New("tilewalk: grid is nil")

	// ErrStartOutOfRange is returned when the start index is not a tile.
	ErrStartOutOfRange = errors.New("tilewalk: start tile out of range")

	// ErrStartEmpty is returned when the start tile is an empty cell.
	ErrStartEmpty = errors.New("tilewalk: start tile is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tilewalk: invalid option supplied")

	// ErrUnreachable is returned by PathTo for tiles the walk never reached.
	ErrUnreachable = errors.New("tilewalk: tile not reachable")
)

// Option configures a walk via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when BFS starts.
type Option func(*Options)

// Options holds parameters and callbacks for a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for each tile in visit order. A non-nil error
	// aborts the walk and is returned wrapped.
	OnVisit func(index, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many steps.
	MaxDepth int

	// Filter can veto individual steps from → to by returning false.
	Filter func(from, to int) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filter
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
		Filter:   func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visited tile.
func WithOnVisit(fn func(index, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d steps from the start.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: invalid → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilter skips steps for which fn returns false.
func WithFilter(fn func(from, to int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: tiles in visit sequence, start first.
//   - Depth: tile → number of steps from the start.
//   - Parent: tile → predecessor in the BFS tree (start has none).
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the tile path from the start to dest, inclusive.
// Returns ErrUnreachable if dest was not visited.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
