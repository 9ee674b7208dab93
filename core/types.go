// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Node, Edge, Position, options, sentinel errors, NewGraph.
// Concurrency:
//   - muVert guards nodes; muEdgeAdj guards edges and adjacency.
//   - Lock order is always muVert before muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop (from == to).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge between the same endpoints already exists.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// Position places a node inside the facility. It is informational only:
// edge weights are never derived from it.
type Position struct {
	X     float64 `yaml:"x" toml:"x"`
	Y     float64 `yaml:"y" toml:"y"`
	Floor int     `yaml:"floor" toml:"floor"`
}

// Node is a location in the facility graph.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID string

	// Position is where the node sits; zero value means unknown.
	Position Position

	// Metadata stores arbitrary user data (room kind, capacity, ...).
	// Clone copies the map itself but not the values it holds.
	Metadata map[string]any
}

// Edge is a weighted connection between two nodes.
//
// Undirected edges are stored once and mirrored in adjacency, so EdgesFrom
// reports them from either endpoint with the same ID.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the traversal cost (time or distance). Always >= 0.
	Weight float64

	// Directed is true for one-way edges.
	Directed bool

	// seq records insertion order.
	seq uint64
}

// GraphOption configures a Graph at creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way. Default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// NodeOption configures a node on AddNode.
type NodeOption func(n *Node)

// WithPosition sets the node position.
func WithPosition(x, y float64, floor int) NodeOption {
	return func(n *Node) { n.Position = Position{X: x, Y: y, Floor: floor} }
}

// WithMetadata stores key=value in the node metadata.
func WithMetadata(key string, value any) NodeOption {
	return func(n *Node) { n.Metadata[key] = value }
}

// Graph is an in-memory weighted adjacency-list graph.
//
// All methods are safe for concurrent use; mutations take the write locks.
type Graph struct {
	muVert    sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	directed bool

	nextEdgeID uint64           // edge ID and insertion-order counter
	nodes      map[string]*Node // node ID → Node
	edges      map[string]*Edge // edge ID → Edge

	// adjacency[from][to] = edge ID; undirected edges appear under both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph. By default edges are undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only summary produced by Stats.
type GraphStats struct {
	Directed    bool
	NodeCount   int
	EdgeCount   int
	TotalWeight float64
	Floors      int // distinct floors among node positions
}
