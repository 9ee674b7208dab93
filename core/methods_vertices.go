// File: methods_vertices.go
// Role: Node lifecycle and queries.
// Concurrency:
//   - Node-only operations lock muVert; RemoveNode also takes muEdgeAdj.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node with the given ID. Adding an existing ID is a no-op
// except that the supplied options are applied to the stored node, so a
// later AddNode can attach a position to a node created implicitly by AddEdge.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	n, exists := g.nodes[id]
	if !exists {
		n = &Node{ID: id, Metadata: make(map[string]any)}
		g.nodes[id] = n
	}
	for _, opt := range opts {
		opt(n)
	}

	return nil
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes the node and every edge touching it.
// Complexity: O(E) for the edge scan.
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			g.unlinkEdge(e)
			delete(g.edges, eid)
		}
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)

	return nil
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}

	return copyNode(n), nil
}

// SetPosition updates the position of an existing node.
func (g *Graph) SetPosition(id string, pos Position) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	n.Position = pos

	return nil
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.nodes)
}

func copyNode(n *Node) Node {
	c := Node{ID: n.ID, Position: n.Position, Metadata: make(map[string]any, len(n.Metadata))}
	for k, v := range n.Metadata {
		c.Metadata[k] = v
	}

	return c
}
