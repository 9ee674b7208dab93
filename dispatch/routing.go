package dispatch

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/heros/bfs"
	"github.com/katalvlaran/heros/dijkstra"
	"github.com/katalvlaran/heros/prim_kruskal"
	"github.com/katalvlaran/heros/triage"
)

// Route returns the shortest route between two locations. Unknown or
// disconnected locations yield Found == false.
func (s *System) Route(from, to string) dijkstra.Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	route := s.router.ShortestPath(from, to)
	s.metrics.observeRoute(route.Found)
	s.log.WithFields(logrus.Fields{"from": from, "to": to, "found": route.Found}).Debug("route computed")

	return route
}

// RouteAll returns the distance from one location to every other;
// unreachable locations map to dijkstra.Unreachable.
func (s *System) RouteAll(from string) map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.router.AllShortestPaths(from)
}

// RouteMany returns one route per destination, in order.
func (s *System) RouteMany(from string, destinations []string) []dijkstra.Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	routes := s.router.MultiDestination(from, destinations)
	for _, r := range routes {
		s.metrics.observeRoute(r.Found)
	}

	return routes
}

// Nearest returns the route to the closest reachable candidate location.
func (s *System) Nearest(from string, candidates []string) dijkstra.Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	route := s.router.Nearest(from, candidates)
	s.metrics.observeRoute(route.Found)

	return route
}

// OptimizeNetwork computes the cheapest network connecting rooms, or every
// location when rooms is empty. method is prim_kruskal.MethodKruskal (the
// default when empty) or prim_kruskal.MethodPrim.
func (s *System) OptimizeNetwork(rooms []string, method string) (*prim_kruskal.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts := prim_kruskal.DefaultOptions()
	if method != "" {
		opts.Method = method
	}
	var (
		res *prim_kruskal.Result
		err error
	)
	if len(rooms) > 0 {
		res, err = prim_kruskal.Subnetwork(s.graph, rooms, opts)
	} else {
		if opts.Method == prim_kruskal.MethodPrim && opts.Root == "" {
			if nodes := s.graph.Nodes(); len(nodes) > 0 {
				opts.Root = nodes[0]
			}
		}
		res, err = prim_kruskal.Compute(s.graph, opts)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.networks.WithLabelValues(res.Method).Inc()
	entry := s.log.WithFields(logrus.Fields{
		"method": res.Method,
		"rooms":  len(res.Nodes),
		"weight": res.TotalWeight,
	})
	if !res.Complete {
		entry.Warnf("network is disconnected (%d components)", res.Components)
	} else {
		entry.Info("network optimized")
	}

	return res, nil
}

// Report summarizes the system state.
type Report struct {
	Waiting      int
	Counts       triage.TierCounts
	Processed    int
	InCare       int
	UndoDepth    int
	UndoCapacity int
	Locations    int
	Connections  int
	Components   int
}

// Report returns the current summary.
func (s *System) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Report{
		Waiting:      s.queue.Len(),
		Counts:       s.queue.Counts(),
		Processed:    s.queue.Processed(),
		InCare:       len(s.inCare),
		UndoDepth:    s.undo.Len(),
		UndoCapacity: s.undo.Cap(),
		Locations:    s.graph.NodeCount(),
		Connections:  s.graph.EdgeCount(),
		Components:   len(bfs.Components(s.graph)),
	}
}

func (r Report) String() string {
	return fmt.Sprintf(
		"waiting %d (red %d, yellow %d, green %d), processed %d, in care %d, undo %d/%d, facility %d locations / %d connections in %d component(s)",
		r.Waiting, r.Counts.Red, r.Counts.Yellow, r.Counts.Green,
		r.Processed, r.InCare, r.UndoDepth, r.UndoCapacity,
		r.Locations, r.Connections, r.Components,
	)
}
