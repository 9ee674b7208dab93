// Package bfs provides breadth-first search over a core.Graph: hop counts,
// parent links, reachability and connectivity. Edge weights are ignored.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/heros/core"
)

type queueItem struct {
	id   string
	hops int
}

// walker encapsulates mutable walk state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS walks g from startID in non-decreasing hop order. Neighbors are
// expanded in ID order, so the visit sequence is reproducible.
//
// Errors: ErrGraphNil, ErrStartNotFound, ErrOptionViolation, or a wrapped
// OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startID)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, hops int, parent string) {
	w.res.Hops[id] = hops
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, hops: hops})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.hops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.MaxHops > 0 && item.hops >= w.opts.MaxHops {
			continue
		}
		// The node existed when enqueued; a concurrent removal just ends this branch.
		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			continue
		}
		for _, nbr := range neighbors {
			if !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			if _, seen := w.res.Hops[nbr]; !seen {
				w.enqueue(nbr, item.hops+1, item.id)
			}
		}
	}

	return nil
}
