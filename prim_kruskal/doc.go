// Package prim_kruskal computes minimum spanning trees (MST) on an undirected
// *core.Graph, used to plan the cheapest network of cabling, piping or
// courier routes that still joins every room.
//
// Algorithms Provided
//
//   - Kruskal(g) (*Result, error)
//     Sort all edges by weight (stable: equal weights keep insertion order),
//     then accept each edge whose endpoints unionfind reports as disjoint.
//     Stops at |V|-1 edges. Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim(g, root) (*Result, error)
//     Grow a single tree from root with a minheap of candidate edges.
//     Spans root's component only. Time O(E log E), space O(V + E).
//
//   - Compute(g, MSTOptions) dispatches by Method; Subnetwork(g, keep, opts)
//     runs on the subgraph induced by a set of rooms.
//
// Disconnected graphs
//
//	A disconnected input is an ordinary outcome, not an error: Kruskal
//	returns a minimum spanning forest and Prim the tree of root's component,
//	both with Complete == false and Components > 1.
//
// Result
//
//	Edges, TotalWeight, OriginalWeight (every input edge once), Complete,
//	Components, EdgesConsidered and Elapsed. CostReduction reports
//	(original - tree) / original and ok == false when the original weight is
//	zero. Graph() rebuilds the tree as a core.Graph.
//
// Errors
//
//	ErrNilGraph, ErrDirectedGraph, ErrEmptyRoot, ErrRootNotFound, ErrUnknownMethod.
package prim_kruskal
