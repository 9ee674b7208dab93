// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clones carry nextEdgeID so edge IDs stay unique and insertion order is kept.
// Concurrency:
//   - Read locks on the source; the clone is a fresh instance.

package core

// CloneEmpty returns a Graph with the same directedness and nodes but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	clone.nextEdgeID = g.nextEdgeID
	for id, n := range g.nodes {
		c := copyNode(n)
		clone.nodes[id] = &c
	}

	return clone
}

// Clone returns a deep copy of the Graph. Edge IDs are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
	}
	for from, inner := range g.adjacency {
		for to, eid := range inner {
			clone.link(from, to, eid)
		}
	}

	return clone
}

// Clear removes every node and edge; directedness is kept.
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string)
	g.nextEdgeID = 0
}
