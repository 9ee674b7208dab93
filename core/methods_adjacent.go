// File: methods_adjacent.go
// Role: Neighborhood queries (NeighborIDs, Degree).
// Determinism:
//   - NeighborIDs returns IDs sorted lex asc.
// Concurrency:
//   - Read locks only, taken in muVert → muEdgeAdj order.

package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the IDs reachable from id over one edge, sorted.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edges leaving id. In an undirected graph this
// is the number of incident edges.
func (g *Graph) Degree(id string) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}

	return len(g.adjacency[id]), nil
}
