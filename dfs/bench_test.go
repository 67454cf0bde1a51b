package dfs_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/dfs"
)

// BenchmarkDFS_Chain walks a 10k-vertex path, the worst case for
// recursion depth and the reason the walker is iterative.
func BenchmarkDFS_Chain(b *testing.B) {
	const n = 10_000
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1), 0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.DFS(g, "v0"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDFS_Random walks a sparse random digraph.
func BenchmarkDFS_Random(b *testing.B) {
	const (
		n = 2_000
		m = 8_000
	)
	rng := rand.New(rand.NewSource(42))
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	for i := 0; i < n; i++ {
		_ = g.AddVertex("v" + strconv.Itoa(i))
	}
	for i := 0; i < m; i++ {
		from := "v" + strconv.Itoa(rng.Intn(n))
		to := "v" + strconv.Itoa(rng.Intn(n))
		_, _ = g.AddEdge(from, to, 0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.DFS(g, "v0", dfs.WithFullTraversal()); err != nil {
			b.Fatal(err)
		}
	}
}
