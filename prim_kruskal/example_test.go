package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/heros/core"
	"github.com/katalvlaran/heros/prim_kruskal"
)

// ExampleKruskal plans the cheapest cabling joining four wards.
func ExampleKruskal() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("A", "C", 2)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("B", "D", 5)
	_, _ = g.AddEdge("C", "D", 8)

	res, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range res.Edges {
		fmt.Printf("%s-%s %.0f\n", e.From, e.To, e.Weight)
	}
	red, _ := res.CostReduction()
	fmt.Printf("total %.0f, saves %.0f%%\n", res.TotalWeight, red*100)

	// Output:
	// B-C 1
	// A-C 2
	// B-D 5
	// total 8, saves 60%
}

// ExampleKruskal_forest shows a disconnected facility.
func ExampleKruskal_forest() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 2)

	res, _ := prim_kruskal.Kruskal(g)
	fmt.Println(res.Complete, res.Components, len(res.Edges))

	// Output:
	// false 2 2
}

// ExamplePrim grows a tree from the emergency room.
func ExamplePrim() {
	g := core.NewGraph()
	_, _ = g.AddEdge("ER", "Lab", 3)
	_, _ = g.AddEdge("ER", "OR", 1)
	_, _ = g.AddEdge("OR", "Lab", 1)

	res, _ := prim_kruskal.Prim(g, "ER")
	fmt.Println(res.TotalWeight, len(res.Edges))

	// Output:
	// 2 2
}
