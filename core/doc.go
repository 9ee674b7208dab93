// Package core provides the thread-safe in-memory facility Graph used by the
// routing and network-optimization packages.
//
// A Graph G = (V,E) holds locations (Node) and weighted connections (Edge):
//
//   - Directed or undirected edges (WithDirected); undirected by default.
//     Undirected edges are stored once and mirrored in adjacency.
//   - Non-negative float64 weights (traversal time or distance); negative,
//     NaN and infinite weights are rejected with ErrBadWeight.
//   - At most one edge per ordered endpoint pair (ErrDuplicateEdge) and no
//     self-loops (ErrLoopNotAllowed).
//   - Optional node positions (x, y, floor) and free-form metadata.
//     Positions are informational: Distance uses them, routing never does.
//   - Deterministic iteration: Nodes and NeighborIDs are sorted by ID,
//     Edges and EdgesFrom follow insertion order.
//   - Separate sync.RWMutex for nodes (muVert) and edges+adjacency
//     (muEdgeAdj); mutators take them in that order.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string, opts ...NodeOption) error  // O(1)
//	HasNode(id string) bool                       // O(1)
//	RemoveNode(id string) error                   // O(E), cascades to edges
//	Node(id string) (Node, error)                 // copy
//	SetPosition(id string, pos Position) error
//	Nodes() []string                              // O(V log V), sorted
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) (edgeID string, err error) // O(1)
//	RemoveEdge(from, to string) error
//	HasEdge(from, to string) bool
//	EdgeWeight(from, to string) (float64, error)
//	UpdateEdgeWeight(from, to string, w float64) error
//
//	// Query
//	EdgesFrom(id string) []Edge     // oriented From == id, empty when none
//	Edges() []Edge                  // each edge once, insertion order
//	NeighborIDs(id string) ([]string, error)
//	TotalWeight() float64           // undirected edges counted once
//	Distance(a, b string) (float64, error)
//	Stats() *GraphStats
//
//	// Cloning and views
//	Clone() *Graph
//	CloneEmpty() *Graph
//	InducedSubgraph(g *Graph, keep []string) *Graph
//
// Errors:
//
//	ErrEmptyNodeID    – zero-length node ID
//	ErrNodeNotFound   – missing node
//	ErrEdgeNotFound   – missing edge
//	ErrBadWeight      – negative, NaN or infinite weight
//	ErrLoopNotAllowed – from == to
//	ErrDuplicateEdge  – an edge between the endpoints already exists
package core
