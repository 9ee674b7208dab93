// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/heros/core"
	"github.com/katalvlaran/heros/dijkstra"
)

type edge = struct {
	u, v string
	w    float64
}

// build returns a graph holding the given weighted edges.
func build(t *testing.T, directed bool, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		if _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", e.u, e.v, err)
		}
	}

	return g
}

// diamond is the A–B(4), A–C(2), B–C(1), B–D(5), C–D(8) facility.
func diamond(t *testing.T) *core.Graph {
	return build(t, false,
		edge{"A", "B", 4}, edge{"A", "C", 2}, edge{"B", "C", 1}, edge{"B", "D", 5}, edge{"C", "D", 8})
}

// ------------------------------------------------------------------------
// 1. Validation and missing-route outcomes.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	if _, err := dijkstra.ShortestPath(nil, "A", "B"); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
	if _, err := dijkstra.AllShortestPaths(nil, "A"); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
	if _, err := dijkstra.NewRouter(nil); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPath_MissingEndpoints(t *testing.T) {
	g := diamond(t)
	for _, pair := range [][2]string{{"X", "D"}, {"A", "X"}} {
		r, err := dijkstra.ShortestPath(g, pair[0], pair[1])
		if err != nil {
			t.Fatalf("missing endpoint must not fail: %v", err)
		}
		if r.Found || len(r.Path) != 0 || !math.IsInf(r.Distance, 1) {
			t.Errorf("%v: want empty route, got %+v", pair, r)
		}
	}
}

func TestShortestPath_Disconnected(t *testing.T) {
	g := build(t, false, edge{"A", "B", 1}, edge{"C", "D", 1})
	r, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatalf("no path must not fail: %v", err)
	}
	if r.Found || len(r.Path) != 0 {
		t.Fatalf("want empty path, got %+v", r)
	}
	if r.Path == nil {
		t.Error("empty path should be a non-nil slice")
	}
}

// ------------------------------------------------------------------------
// 2. Correctness.
// ------------------------------------------------------------------------

func TestShortestPath_Diamond(t *testing.T) {
	r, err := dijkstra.ShortestPath(diamond(t), "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "C", "B", "D"}; !reflect.DeepEqual(r.Path, want) {
		t.Errorf("Path = %v; want %v", r.Path, want)
	}
	if r.Distance != 8 {
		t.Errorf("Distance = %v; want 8", r.Distance)
	}
	if r.Stops() != 4 {
		t.Errorf("Stops = %d; want 4", r.Stops())
	}
	if got := r.String(); got != "A → C → B → D (8.00)" {
		t.Errorf("String = %q", got)
	}
}

func TestShortestPath_StartEqualsEnd(t *testing.T) {
	r, _ := dijkstra.ShortestPath(diamond(t), "B", "B")
	if !r.Found || r.Distance != 0 || !reflect.DeepEqual(r.Path, []string{"B"}) {
		t.Fatalf("self route = %+v", r)
	}
}

func TestShortestPath_DirectedRespectsOrientation(t *testing.T) {
	g := build(t, true, edge{"A", "B", 1}, edge{"B", "C", 1}, edge{"C", "A", 1})
	r, _ := dijkstra.ShortestPath(g, "A", "C")
	if r.Distance != 2 {
		t.Errorf("A→C = %v; want 2", r.Distance)
	}
	r, _ = dijkstra.ShortestPath(g, "C", "B")
	if !reflect.DeepEqual(r.Path, []string{"C", "A", "B"}) {
		t.Errorf("C→B path = %v", r.Path)
	}
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := build(t, false, edge{"A", "B", 0}, edge{"B", "C", 0}, edge{"A", "C", 1})
	r, _ := dijkstra.ShortestPath(g, "A", "C")
	if r.Distance != 0 {
		t.Errorf("distance = %v; want 0", r.Distance)
	}
}

func TestAllShortestPaths(t *testing.T) {
	g := diamond(t)
	_ = g.AddNode("island")
	dist, err := dijkstra.AllShortestPaths(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"A": 0, "B": 3, "C": 2, "D": 8, "island": math.Inf(1)}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("dist = %v; want %v", dist, want)
	}

	dist, _ = dijkstra.AllShortestPaths(g, "ghost")
	for id, d := range dist {
		if !math.IsInf(d, 1) {
			t.Errorf("missing start: dist[%s] = %v; want +Inf", id, d)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

func TestMaxDistance(t *testing.T) {
	g := build(t, false, edge{"A", "B", 1}, edge{"B", "C", 1}, edge{"C", "D", 1})
	dist, _ := dijkstra.AllShortestPaths(g, "A", dijkstra.WithMaxDistance(1))
	if dist["B"] != 1 || !math.IsInf(dist["C"], 1) || !math.IsInf(dist["D"], 1) {
		t.Errorf("dist = %v", dist)
	}
	dist, _ = dijkstra.AllShortestPaths(g, "A", dijkstra.WithMaxDistance(0))
	if dist["A"] != 0 || !math.IsInf(dist["B"], 1) {
		t.Errorf("MaxDistance(0) dist = %v", dist)
	}
}

func TestInfEdgeThreshold(t *testing.T) {
	g := build(t, false, edge{"A", "B", 50}, edge{"A", "C", 10}, edge{"C", "B", 45})
	r, _ := dijkstra.ShortestPath(g, "A", "B")
	if r.Distance != 50 {
		t.Fatalf("default threshold: %v; want 50", r.Distance)
	}
	r, _ = dijkstra.ShortestPath(g, "A", "B", dijkstra.WithInfEdgeThreshold(50))
	if r.Distance != 55 || !reflect.DeepEqual(r.Path, []string{"A", "C", "B"}) {
		t.Fatalf("walled route = %+v", r)
	}
	r, _ = dijkstra.ShortestPath(g, "A", "B", dijkstra.WithInfEdgeThreshold(40))
	if r.Found {
		t.Fatalf("all paths walled, got %+v", r)
	}
}

func TestOptionPanics(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}
	mustPanic("negative max", func() { dijkstra.WithMaxDistance(-1) })
	mustPanic("NaN max", func() { dijkstra.WithMaxDistance(math.NaN()) })
	mustPanic("zero threshold", func() { dijkstra.WithInfEdgeThreshold(0) })
}

// ------------------------------------------------------------------------
// 4. Router.
// ------------------------------------------------------------------------

func TestRouter_MultiDestinationAndNearest(t *testing.T) {
	g := diamond(t)
	_ = g.AddNode("island")
	rt, err := dijkstra.NewRouter(g)
	if err != nil {
		t.Fatal(err)
	}

	routes := rt.MultiDestination("A", []string{"D", "island", "B"})
	if len(routes) != 3 {
		t.Fatalf("got %d routes", len(routes))
	}
	if routes[0].Distance != 8 || routes[1].Found || routes[2].Distance != 3 {
		t.Errorf("routes = %+v", routes)
	}

	near := rt.Nearest("A", []string{"D", "B", "island"})
	if near.End != "B" || near.Distance != 3 {
		t.Errorf("Nearest = %+v", near)
	}
	if rt.Nearest("A", []string{"island"}).Found {
		t.Error("unreachable candidate reported as nearest")
	}
	for _, r := range rt.MultiDestination("ghost", []string{"A"}) {
		if r.Found {
			t.Error("missing start should yield empty routes")
		}
	}
	if got := rt.AllShortestPaths("C")["D"]; got != 6 {
		t.Errorf("C→D = %v; want 6", got)
	}
}
