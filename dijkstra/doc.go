// Package dijkstra finds the cheapest routes through a facility graph
// (core.Graph) with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath(g, start, end) returns a Route: the node path, its total
//     weight and a Found flag. It stops as soon as end is finalized.
//   - AllShortestPaths(g, start) maps every node to its distance from start;
//     unreachable nodes map to +Inf (Unreachable).
//   - Router binds a graph and options, adding MultiDestination (one
//     exploration, many targets) and Nearest (closest of several candidates).
//
// Missing routes are ordinary outcomes, not errors: an unknown start or end
// node, or a disconnected pair, yields Found == false with an empty path.
// Errors are reserved for contract violations (ErrNilGraph); invalid option
// arguments panic in the option constructor.
//
// Options:
//
//   - WithMaxDistance(d):      nodes farther than d are not explored.
//   - WithInfEdgeThreshold(t): edges with weight >= t are impassable.
//
// Complexity:
//
//   - Time:  O((V + E) log V); lazy deletion may leave up to E frontier entries.
//   - Space: O(V + E).
//
// Distance to the start node is 0. When several paths share the minimum
// weight, which one is returned is unspecified.
package dijkstra
