package dijkstra

import (
	"github.com/katalvlaran/heros/core"
)

// Router binds a graph and options for repeated queries.
type Router struct {
	g    *core.Graph
	opts []Option
}

// NewRouter returns a Router over g. Options apply to every query.
func NewRouter(g *core.Graph, opts ...Option) (*Router, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Router{g: g, opts: opts}, nil
}

// Graph returns the routed graph.
func (rt *Router) Graph() *core.Graph { return rt.g }

// ShortestPath is the package-level ShortestPath on the bound graph.
func (rt *Router) ShortestPath(start, end string) Route {
	route, _ := ShortestPath(rt.g, start, end, rt.opts...)

	return route
}

// AllShortestPaths is the package-level AllShortestPaths on the bound graph.
func (rt *Router) AllShortestPaths(start string) map[string]float64 {
	dist, _ := AllShortestPaths(rt.g, start, rt.opts...)

	return dist
}

// MultiDestination returns one Route per destination, in the given order,
// from a single exploration rooted at start.
func (rt *Router) MultiDestination(start string, destinations []string) []Route {
	out := make([]Route, len(destinations))
	if !rt.g.HasNode(start) {
		for i, d := range destinations {
			out[i] = noRoute(start, d)
		}
		return out
	}
	r := newRunner(rt.g, buildOptions(rt.opts))
	r.run(start, "")
	for i, d := range destinations {
		out[i] = r.route(start, d)
	}

	return out
}

// Nearest returns the closest reachable candidate from start. Ties go to
// the candidate listed first. Found is false when none is reachable.
func (rt *Router) Nearest(start string, candidates []string) Route {
	best := noRoute(start, "")
	for _, route := range rt.MultiDestination(start, candidates) {
		if route.Found && (!best.Found || route.Distance < best.Distance) {
			best = route
		}
	}

	return best
}
