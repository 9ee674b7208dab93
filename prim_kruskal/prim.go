package prim_kruskal

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/heros/bfs"
	"github.com/katalvlaran/heros/core"
	"github.com/katalvlaran/heros/minheap"
)

// Prim grows a minimum spanning tree from root. Only root's component is
// spanned; Complete is false when other components exist.
//
// Errors: ErrNilGraph, ErrDirectedGraph, ErrEmptyRoot, ErrRootNotFound.
//
// Steps:
//  1. Mark root visited and push its edges onto a min-heap keyed by weight.
//  2. Pop the lightest edge; skip it if its far end is visited, otherwise
//     accept it and push the new node's edges to unvisited neighbors.
//  3. Stop when the heap is empty.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root string) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if !g.HasNode(root) {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	began := time.Now()

	res := &Result{
		Method:         MethodPrim,
		OriginalWeight: g.TotalWeight(),
	}
	visited := map[string]bool{root: true}
	pq := minheap.New[core.Edge](func(a, b core.Edge) bool { return a.Weight < b.Weight })
	push := func(id string) {
		for _, e := range g.EdgesFrom(id) {
			if !visited[e.To] {
				pq.Insert(e)
			}
		}
	}

	push(root)
	for !pq.IsEmpty() {
		e, _ := pq.ExtractMin()
		res.EdgesConsidered++
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
		push(e.To)
	}

	res.Nodes = make([]string, 0, len(visited))
	for id := range visited {
		res.Nodes = append(res.Nodes, id)
	}
	sort.Strings(res.Nodes)
	res.Components = len(bfs.Components(g))
	res.Complete = len(res.Nodes) == g.NodeCount()
	res.Elapsed = time.Since(began)

	return res, nil
}
