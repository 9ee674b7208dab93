package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned for invalid options.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for nodes that were not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures a walk.
type Option func(*Options)

// Options holds walk configuration. Use DefaultOptions and Option helpers.
type Options struct {
	// OnVisit runs as each node is visited; a non-nil error aborts the walk.
	OnVisit func(id string, hops int) error

	// MaxHops stops expansion beyond this many edges; 0 means unlimited.
	MaxHops int

	// FilterNeighbor skips edges for which it returns false, e.g. to route
	// around a closed corridor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns no-op hooks, unlimited hops and no filtering.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithOnVisit sets the visit hook. Nil is ignored.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxHops limits exploration depth. Negative values are rejected.
func WithMaxHops(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxHops = d
	}
}

// WithFilterNeighbor sets the neighbor filter. Nil is ignored.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the outcome of a walk.
type Result struct {
	// Order is the visit sequence.
	Order []string
	// Hops maps each reached node to its edge count from the start.
	Hops map[string]int
	// Parent maps each reached node except the start to its predecessor.
	Parent map[string]string
}

// PathTo reconstructs the fewest-hops path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Hops[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}
	var path []string
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
