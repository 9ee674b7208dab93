package prim_kruskal

import (
	"github.com/katalvlaran/heros/core"
)

// Subnetwork computes a spanning tree over only the nodes in keep, using the
// edges of g that run between them, e.g. an oxygen-line network joining a
// set of ICU rooms. Unknown IDs are ignored. For Prim without a root the
// smallest kept node ID is used.
func Subnetwork(g *core.Graph, keep []string, opts MSTOptions) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	sub := core.InducedSubgraph(g, keep)
	if opts.Method == MethodPrim && opts.Root == "" {
		if nodes := sub.Nodes(); len(nodes) > 0 {
			opts.Root = nodes[0]
		}
	}

	return Compute(sub, opts)
}
