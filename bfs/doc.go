// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Result holds the visit Order, Hops per node and Parent links;
//     PathTo rebuilds the fewest-hops path.
//   - Reachable, Connected and Components answer facility-level questions
//     such as "can every room be reached from the entrance?".
//
// Edge weights are ignored; use package dijkstra for weighted routes.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues in that order, so
//	the visit sequence is reproducible.
//
// Options
//
//   - WithMaxHops(d):         stop expanding beyond d edges (0 = unlimited).
//   - WithFilterNeighbor(fn): skip edges for which fn(curr, nbr) is false.
//   - WithOnVisit(fn):        hook per visited node; an error aborts.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors
//
//   - ErrGraphNil, ErrStartNotFound, ErrOptionViolation.
//   - ErrNoPath from Result.PathTo.
//   - Wrapped OnVisit errors.
package bfs
