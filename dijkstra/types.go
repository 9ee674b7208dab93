// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on facility graphs.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors. A missing start or end node is not an error: it yields
// an empty Route.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a zero, negative or NaN InfEdgeThreshold,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the distance reported for nodes that cannot be reached.
var Unreachable = math.Inf(1)

// Options configures a run.
//
// MaxDistance      – nodes farther than this are not explored. Default +Inf.
// InfEdgeThreshold – edges with weight >= this are impassable. Default +Inf.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance caps exploration. Panics on a negative or NaN value,
// like every option constructor in this package.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(fmt.Sprintf("%s: %v", ErrBadMaxDistance, max))
	}

	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold marks edges with weight >= threshold as impassable,
// e.g. a corridor closed for cleaning. Panics on a non-positive threshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(fmt.Sprintf("%s: %v", ErrBadInfThreshold, threshold))
	}

	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions returns no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Route is the result of a single-target search.
//
// Found is false when start or end is missing or end is unreachable; Path is
// then empty and Distance is Unreachable.
type Route struct {
	Start    string
	End      string
	Path     []string
	Distance float64
	Found    bool
}

// Stops returns the number of nodes on the path, endpoints included.
func (r Route) Stops() int { return len(r.Path) }

func (r Route) String() string {
	if !r.Found {
		return fmt.Sprintf("no route %s → %s", r.Start, r.End)
	}

	return fmt.Sprintf("%s (%.2f)", strings.Join(r.Path, " → "), r.Distance)
}

func noRoute(start, end string) Route {
	return Route{Start: start, End: end, Path: []string{}, Distance: Unreachable}
}
