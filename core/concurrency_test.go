// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heros/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and all land.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentAddRemoveEdge mixes AddEdge and RemoveEdge calls.
func TestConcurrentAddRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge("Base", fmt.Sprintf("V%d", id), float64(id))
		}(i)

		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				_ = g.RemoveEdge(e.From, e.To)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, len(g.Edges()), g.EdgeCount())
}

// TestConcurrentReadsAndClone runs EdgesFrom readers next to cloners.
func TestConcurrentReadsAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		_, _ = g.AddEdge("A", fmt.Sprintf("B%d", i), float64(i))
	}

	const readers = 50
	const cloners = 20
	var wg sync.WaitGroup
	wg.Add(readers + cloners)

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			require.Len(t, g.EdgesFrom("A"), 50)
		}()
	}
	for i := 0; i < cloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	wg.Wait()
}
