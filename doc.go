// Package heros schedules and routes patients through a facility modeled as a
// weighted graph.
//
// The module brings together:
//
//	• Scheduling: a generic binary min-heap and a triage queue ordered by urgency
//	• Facility model: a thread-safe weighted graph with floor-aware positions
//	• Routing: Dijkstra shortest paths, multi-destination and nearest-of queries
//	• Networks: Kruskal and Prim spanning trees, also over a subset of rooms
//	• History: a bounded undo log of patient snapshots
//
// Packages:
//
//	minheap/      — generic MinHeap with injected ordering
//	triage/       — Patient, vital-sign scoring, urgency policies, Queue
//	core/         — Graph, Node, Edge, Position
//	bfs/          — reachability and connected components
//	dijkstra/     — ShortestPath, AllShortestPaths, Router
//	unionfind/    — disjoint sets for Kruskal
//	prim_kruskal/ — Kruskal, Prim, Subnetwork
//	history/      — bounded undo Log and Snapshot
//	dispatch/     — System: the coordinator the CLI drives
//	config/       — YAML/TOML facility layouts and triage scenarios
//
// Quick ASCII example:
//
//	    ER───OR
//	    │     │
//	   Lab───ICU
//
//	represents four locations joined by four corridors.
//
//	go install github.com/katalvlaran/heros/cmd/heros@latest
package heros
