// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: configuration flags, Stats and Distance.
// Policy:
//   - No algorithms or hidden state here.

package core

import (
	"fmt"
	"math"
)

// FloorPenalty scales floor differences in Distance.
const FloorPenalty = 10.0

// Directed reports whether new edges are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Stats produces a read-only snapshot of node/edge counts and total weight.
//
// Implementation:
//   - Stage 1: muVert.RLock, snapshot node count and distinct floors, release.
//   - Stage 2: muEdgeAdj.RLock, snapshot edge count and total weight, release.
//
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{Directed: g.directed, NodeCount: len(g.nodes)}
	floors := make(map[int]struct{})
	for _, n := range g.nodes {
		floors[n.Position.Floor] = struct{}{}
	}
	stats.Floors = len(floors)
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		stats.TotalWeight += e.Weight
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}

// Distance returns the Euclidean distance between two node positions, with
// the floor difference scaled by FloorPenalty as a third axis. It is
// informational and never used as a routing weight.
func (g *Graph) Distance(a, b string) (float64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	na, ok := g.nodes[a]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNodeNotFound, a)
	}
	nb, ok := g.nodes[b]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNodeNotFound, b)
	}

	return na.Position.Distance(nb.Position), nil
}

// Distance between two positions, floors weighted by FloorPenalty.
func (p Position) Distance(q Position) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	df := float64(p.Floor-q.Floor) * FloorPenalty

	return math.Sqrt(dx*dx + dy*dy + df*df)
}
