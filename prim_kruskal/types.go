// Package prim_kruskal defines configuration options, results and sentinel
// errors for minimum spanning tree computation.
package prim_kruskal

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/heros/core"
)

// Sentinel errors. A disconnected graph is not an error: it yields a forest
// with Complete == false.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("prim_kruskal: graph is nil")

	// ErrDirectedGraph indicates a directed graph; spanning trees need undirected edges.
	ErrDirectedGraph = errors.New("prim_kruskal: MST requires an undirected graph")

	// ErrEmptyRoot indicates that no start node was given to Prim.
	ErrEmptyRoot = errors.New("prim_kruskal: empty root node")

	// ErrRootNotFound indicates that Prim's root is not in the graph.
	ErrRootNotFound = errors.New("prim_kruskal: root node not found")

	// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which algorithm Compute runs.
//
//	Method string — MethodPrim or MethodKruskal.
//	Root   string — start node for Prim; ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) { opts.Method = m }
}

// WithRoot sets Prim's start node.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) { opts.Root = root }
}

// DefaultOptions selects Kruskal.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is a spanning tree, or a spanning forest when the graph is
// disconnected.
type Result struct {
	// Method that produced the result.
	Method string
	// Nodes spanned, sorted. For Kruskal every node; for Prim the root's component.
	Nodes []string
	// Edges in the order they were accepted.
	Edges []core.Edge
	// TotalWeight is the sum of Edges weights.
	TotalWeight float64
	// OriginalWeight is the total weight of the input graph.
	OriginalWeight float64
	// Complete is true when the result spans every node of the input graph.
	Complete bool
	// Components is the number of connected components of the input graph.
	Components int
	// EdgesConsidered counts candidate edges examined.
	EdgesConsidered int
	// Elapsed is the computation time.
	Elapsed time.Duration
}

// CostReduction returns (OriginalWeight - TotalWeight) / OriginalWeight.
// ok is false when OriginalWeight is zero and the ratio is undefined.
func (r *Result) CostReduction() (value float64, ok bool) {
	if r.OriginalWeight == 0 {
		return 0, false
	}

	return (r.OriginalWeight - r.TotalWeight) / r.OriginalWeight, true
}

// Graph materialises the tree (or forest) as a new undirected core.Graph.
// Edge IDs are reassigned by the new graph.
func (r *Result) Graph() *core.Graph {
	g := core.NewGraph()
	for _, id := range r.Nodes {
		_ = g.AddNode(id)
	}
	for _, e := range r.Edges {
		_, _ = g.AddEdge(e.From, e.To, e.Weight)
	}

	return g
}

func (r *Result) String() string {
	state := "complete"
	if !r.Complete {
		state = fmt.Sprintf("forest of %d components", r.Components)
	}
	s := fmt.Sprintf("%s: %d edges, weight %.2f (%s)", r.Method, len(r.Edges), r.TotalWeight, state)
	if red, ok := r.CostReduction(); ok {
		s += fmt.Sprintf(", %.1f%% below original %.2f", red*100, r.OriginalWeight)
	}

	return s
}

// Compute runs the algorithm selected by opts.
func Compute(g *core.Graph, opts MSTOptions) (*Result, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, opts.Root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

func validate(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Directed() {
		return ErrDirectedGraph
	}

	return nil
}
