package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/heros/core"
	"github.com/katalvlaran/heros/dijkstra"
)

// ExampleShortestPath routes a patient from the entrance to the ward.
func ExampleShortestPath() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("A", "C", 2)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("B", "D", 5)
	_, _ = g.AddEdge("C", "D", 8)

	route, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(route)

	// Output:
	// A → C → B → D (8.00)
}

// ExampleRouter_Nearest picks the closest of several imaging rooms.
func ExampleRouter_Nearest() {
	g := core.NewGraph()
	_, _ = g.AddEdge("ER", "Hall", 2)
	_, _ = g.AddEdge("Hall", "CT", 6)
	_, _ = g.AddEdge("Hall", "MRI", 3)
	_, _ = g.AddEdge("ER", "Xray", 9)

	rt, _ := dijkstra.NewRouter(g)
	fmt.Println(rt.Nearest("ER", []string{"CT", "MRI", "Xray"}))

	// Output:
	// ER → Hall → MRI (5.00)
}
