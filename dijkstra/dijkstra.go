// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph with non-negative weights.
//
// Notes on implementation choices:
//
//   - The frontier is a minheap.MinHeap with lazy deletion: a shorter
//     distance pushes a duplicate entry and stale ones are skipped when popped.
//   - Single-target runs stop as soon as the target is finalized.
//   - Edges with weight >= InfEdgeThreshold are walls; nodes beyond
//     MaxDistance are never finalized.
package dijkstra

import (
	"math"

	"github.com/katalvlaran/heros/core"
	"github.com/katalvlaran/heros/minheap"
)

// ShortestPath returns the cheapest route from start to end.
// A missing start or end, or an unreachable end, yields a Route with
// Found == false and an empty path; only contract violations return errors.
//
// Complexity: O((V + E) log V).
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (Route, error) {
	if g == nil {
		return Route{}, ErrNilGraph
	}
	if !g.HasNode(start) || !g.HasNode(end) {
		return noRoute(start, end), nil
	}
	r := newRunner(g, buildOptions(opts))
	r.run(start, end)

	return r.route(start, end), nil
}

// AllShortestPaths returns the distance from start to every node of g.
// Unreachable nodes, and every node when start is missing, map to
// Unreachable; start itself maps to 0.
func AllShortestPaths(g *core.Graph, start string, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	r := newRunner(g, buildOptions(opts))
	if g.HasNode(start) {
		r.run(start, "")
	}

	return r.distances(), nil
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// frontierItem is a (node, tentative distance) pair on the frontier.
type frontierItem struct {
	id   string
	dist float64
}

// runner holds the mutable state for a single execution.
type runner struct {
	g        *core.Graph
	options  Options
	dist     map[string]float64
	prev     map[string]string
	visited  map[string]bool
	frontier *minheap.MinHeap[frontierItem]
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.NodeCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		frontier: minheap.New[frontierItem](func(a, b frontierItem) bool {
			return a.dist < b.dist
		}),
	}
}

// run explores from source; a non-empty target enables the early stop.
func (r *runner) run(source, target string) {
	r.dist[source] = 0
	r.frontier.Insert(frontierItem{id: source, dist: 0})

	for !r.frontier.IsEmpty() {
		item, _ := r.frontier.ExtractMin()
		u := item.id
		if r.visited[u] {
			continue // stale duplicate
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == target {
			return
		}
		r.relax(u)
	}
}

// relax tries to improve every neighbor of the finalized node u.
func (r *runner) relax(u string) {
	du := r.dist[u]
	for _, e := range r.g.EdgesFrom(u) {
		if e.Weight >= r.options.InfEdgeThreshold || r.visited[e.To] {
			continue
		}
		nd := du + e.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		if cur, ok := r.dist[e.To]; ok && nd >= cur {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		r.frontier.Insert(frontierItem{id: e.To, dist: nd})
	}
}

// route rebuilds start → end from predecessor links.
func (r *runner) route(start, end string) Route {
	if !r.visited[end] {
		return noRoute(start, end)
	}
	var path []string
	for cur := end; ; cur = r.prev[cur] {
		path = append(path, cur)
		if cur == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Route{Start: start, End: end, Path: path, Distance: r.dist[end], Found: true}
}

// distances reports finalized distances for every node; the rest are +Inf.
func (r *runner) distances() map[string]float64 {
	nodes := r.g.Nodes()
	out := make(map[string]float64, len(nodes))
	for _, id := range nodes {
		if r.visited[id] {
			out[id] = r.dist[id]
		} else {
			out[id] = math.Inf(1)
		}
	}

	return out
}
