package bfs

import (
	"sort"

	"github.com/katalvlaran/heros/core"
)

// Reachable returns the IDs reachable from start (start included), sorted.
// A missing start yields nil.
func Reachable(g *core.Graph, start string) []string {
	res, err := BFS(g, start)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(res.Order))
	out = append(out, res.Order...)
	sort.Strings(out)

	return out
}

// Connected reports whether every node is reachable from the first node.
// For directed graphs this is reachability from that node, not strong
// connectivity. Empty graphs are connected.
func Connected(g *core.Graph) bool {
	if g == nil {
		return false
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return true
	}

	return len(Reachable(g, nodes[0])) == len(nodes)
}

// Components partitions an undirected graph into connected components.
// Each component is sorted; components are ordered by their smallest ID.
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out [][]string
	for _, id := range g.Nodes() {
		if seen[id] {
			continue
		}
		comp := Reachable(g, id)
		for _, c := range comp {
			seen[c] = true
		}
		out = append(out, comp)
	}

	return out
}
