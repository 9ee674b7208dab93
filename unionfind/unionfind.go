// Package unionfind implements a disjoint-set forest keyed by node identifier.
//
// It backs Kruskal's spanning-tree builder: every node starts in its own set,
// and Union reports whether two sets were merged or the pair was already
// connected (the edge would close a cycle).
//
// Complexity:
//
//	– MakeSet: O(1)
//	– Find:    O(α(n)) amortized (path compression)
//	– Union:   O(α(n)) amortized (union by rank)
//
// A UnionFind is not safe for concurrent use; callers that share one across
// goroutines must serialize access externally.
package unionfind

import (
	"errors"
	"sort"
)

// ErrUnknownElement is returned by FindErr when the element was never added.
var ErrUnknownElement = errors.New("unionfind: element not found")

// UnionFind partitions string identifiers into disjoint sets.
// The zero value is not usable; construct with New.
type UnionFind struct {
	parent map[string]string // element → parent; roots point to themselves
	rank   map[string]int    // upper bound on subtree height, valid for roots only
	sets   int               // number of disjoint sets
}

// New returns an empty UnionFind, optionally seeded with singleton sets.
func New(elements ...string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(elements)),
		rank:   make(map[string]int, len(elements)),
	}
	for _, e := range elements {
		uf.MakeSet(e)
	}

	return uf
}

// MakeSet adds x as a singleton set. Adding an existing element is a no-op,
// so an element's current set is never reset.
func (uf *UnionFind) MakeSet(x string) {
	if _, ok := uf.parent[x]; ok {
		return
	}
	uf.parent[x] = x
	uf.rank[x] = 0
	uf.sets++
}

// Has reports whether x has been added.
func (uf *UnionFind) Has(x string) bool {
	_, ok := uf.parent[x]

	return ok
}

// Find returns the representative of the set containing x.
// An unknown x is added as a singleton first, mirroring MakeSet semantics.
//
// Find is iterative: a first pass locates the root, a second pass points every
// node on the walked path directly at it.
func (uf *UnionFind) Find(x string) string {
	if _, ok := uf.parent[x]; !ok {
		uf.MakeSet(x)
		return x
	}

	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// path compression
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

// FindErr is Find without the implicit MakeSet: unknown elements yield
// ErrUnknownElement and leave the structure untouched.
func (uf *UnionFind) FindErr(x string) (string, error) {
	if !uf.Has(x) {
		return "", ErrUnknownElement
	}

	return uf.Find(x), nil
}

// Union merges the sets containing a and b and reports whether a merge
// happened. It returns false, changing nothing, when a and b are already
// connected.
func (uf *UnionFind) Union(a, b string) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	// attach the shallower tree under the deeper one
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	uf.sets--

	return true
}

// Connected reports whether a and b belong to the same set.
// Unknown elements are never connected to anything but themselves.
func (uf *UnionFind) Connected(a, b string) bool {
	if !uf.Has(a) || !uf.Has(b) {
		return a == b
	}

	return uf.Find(a) == uf.Find(b)
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Sets returns the number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// Components returns every set as a sorted member list; the outer slice is
// ordered by each set's smallest member so output is deterministic.
func (uf *UnionFind) Components() [][]string {
	byRoot := make(map[string][]string, uf.sets)
	for x := range uf.parent {
		r := uf.Find(x)
		byRoot[r] = append(byRoot[r], x)
	}
	out := make([][]string, 0, len(byRoot))
	for _, members := range byRoot {
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// Reset drops every element.
func (uf *UnionFind) Reset() {
	uf.parent = make(map[string]string)
	uf.rank = make(map[string]int)
	uf.sets = 0
}
