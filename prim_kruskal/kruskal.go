// Package prim_kruskal computes minimum spanning trees of undirected
// core.Graph facilities with Kruskal's and Prim's algorithms.
package prim_kruskal

import (
	"sort"
	"time"

	"github.com/katalvlaran/heros/core"
	"github.com/katalvlaran/heros/unionfind"
)

// Kruskal computes a minimum spanning tree, or a minimum spanning forest
// when g is disconnected (Complete == false, Components > 1).
//
// Steps:
//  1. Validate: g != nil, undirected.
//  2. Collect edges once each (core.Graph.Edges is insertion-ordered) and
//     stable-sort them by weight, so equal weights keep insertion order.
//  3. MakeSet every node; accept an edge when Union merges two sets.
//  4. Stop at |V|-1 accepted edges or when edges run out.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(g *core.Graph) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	began := time.Now()

	nodes := g.Nodes()
	edges := g.Edges()
	res := &Result{
		Method:         MethodKruskal,
		Nodes:          nodes,
		Edges:          make([]core.Edge, 0, max(len(nodes)-1, 0)),
		OriginalWeight: g.TotalWeight(),
	}

	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	uf := unionfind.New(nodes...)
	for _, e := range edges {
		if len(res.Edges) == len(nodes)-1 {
			break
		}
		res.EdgesConsidered++
		if uf.Union(e.From, e.To) {
			res.Edges = append(res.Edges, e)
			res.TotalWeight += e.Weight
		}
	}

	res.Components = uf.Sets()
	res.Complete = res.Components <= 1
	res.Elapsed = time.Since(began)

	return res, nil
}
