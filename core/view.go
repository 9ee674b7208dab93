// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read locks on the source; the result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph holding only the nodes in keep that
// exist in g, plus every edge whose endpoints are both kept. Edge IDs,
// weights and insertion order are preserved. Unknown IDs are ignored.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep []string) *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := NewGraph(WithDirected(g.directed))
	out.nextEdgeID = g.nextEdgeID
	for _, id := range keep {
		if n, ok := g.nodes[id]; ok {
			c := copyNode(n)
			out.nodes[id] = &c
		}
	}
	for eid, e := range g.edges {
		_, okFrom := out.nodes[e.From]
		_, okTo := out.nodes[e.To]
		if !okFrom || !okTo {
			continue
		}
		ne := *e
		out.edges[eid] = &ne
		out.link(e.From, e.To, eid)
		if !e.Directed {
			out.link(e.To, e.From, eid)
		}
	}

	return out
}
