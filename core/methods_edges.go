// File: methods_edges.go
// Role: Edge lifecycle and weight queries.
// Determinism:
//   - Edges and EdgesFrom return edges in insertion order.
// Concurrency:
//   - AddEdge creates missing endpoints under muVert, then mutates under muEdgeAdj.

package core

import (
	"fmt"
	"math"
	"sort"
)

const edgeIDPrefix = "e"

// AddEdge connects from → to with the given weight and returns the new edge ID.
// Missing endpoints are created. In an undirected graph the edge is mirrored,
// so a second AddEdge(to, from) is a duplicate.
//
// Errors: ErrEmptyNodeID, ErrBadWeight, ErrLoopNotAllowed, ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if err := checkWeight(weight); err != nil {
		return "", err
	}
	if from == to {
		return "", fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.adjacency[from][to]; ok {
		return "", fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
	}
	for _, id := range [2]string{from, to} {
		if _, ok := g.nodes[id]; !ok {
			g.nodes[id] = &Node{ID: id, Metadata: make(map[string]any)}
		}
	}

	g.nextEdgeID++
	e := &Edge{
		ID:       fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		seq:      g.nextEdgeID,
	}
	g.edges[e.ID] = e
	g.link(from, to, e.ID)
	if !e.Directed {
		g.link(to, from, e.ID)
	}

	return e.ID, nil
}

// RemoveEdge deletes the edge from → to (either orientation when undirected).
func (g *Graph) RemoveEdge(from, to string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	g.unlinkEdge(g.edges[eid])
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether from → to can be traversed.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeWeight returns the weight of from → to.
func (g *Graph) EdgeWeight(from, to string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return g.edges[eid].Weight, nil
}

// UpdateEdgeWeight changes the weight of an existing edge from → to.
func (g *Graph) UpdateEdgeWeight(from, to string, weight float64) error {
	if err := checkWeight(weight); err != nil {
		return err
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	g.edges[eid].Weight = weight

	return nil
}

// EdgesFrom returns the edges leaving id, each oriented so that From == id
// (undirected edges are flipped when id is their stored To end).
// A missing node or a node without edges yields an empty, non-nil slice.
// Complexity: O(d log d).
func (g *Graph) EdgesFrom(id string) []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, len(g.adjacency[id]))
	for to, eid := range g.adjacency[id] {
		e := *g.edges[eid]
		if e.From != id {
			e.From, e.To = id, to
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// Edges returns copies of every edge, once each, in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of stored edges; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// TotalWeight sums every stored edge weight; undirected edges count once.
func (g *Graph) TotalWeight() float64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var sum float64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}

func checkWeight(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}

	return nil
}

// link records adjacency[from][to]; caller holds muEdgeAdj.
func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adjacency[from]
	if !ok {
		inner = make(map[string]string)
		g.adjacency[from] = inner
	}
	inner[to] = eid
}

// unlinkEdge drops both adjacency entries of e; caller holds muEdgeAdj.
func (g *Graph) unlinkEdge(e *Edge) {
	delete(g.adjacency[e.From], e.To)
	if !e.Directed {
		delete(g.adjacency[e.To], e.From)
	}
}
