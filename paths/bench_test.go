package paths_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/paths"
)

func randomWeighted(b *testing.B, n, m int) *core.Graph {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	for i := 0; i < n; i++ {
		_ = g.AddVertex("v" + strconv.Itoa(i))
	}
	for i := 0; i < m; i++ {
		from := "v" + strconv.Itoa(rng.Intn(n))
		to := "v" + strconv.Itoa(rng.Intn(n))
		if from == to {
			continue
		}
		_, _ = g.AddEdge(from, to, int64(1+rng.Intn(100)))
	}

	return g
}

func BenchmarkDijkstra_Sparse(b *testing.B) {
	g := randomWeighted(b, 2_000, 8_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := paths.Dijkstra(g, "v0"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBellmanFord_Sparse(b *testing.B) {
	g := randomWeighted(b, 400, 1_600)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := paths.BellmanFord(g, "v0"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAStar_Grid(b *testing.B) {
	const n = 64
	g := core.NewGraph(core.WithWeighted())
	name := func(r, c int) string { return strconv.Itoa(r) + "," + strconv.Itoa(c) }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if r+1 < n {
				_, _ = g.AddEdge(name(r, c), name(r+1, c), 1)
			}
			if c+1 < n {
				_, _ = g.AddEdge(name(r, c), name(r, c+1), 1)
			}
		}
	}
	h := func(id string) int64 { return 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := paths.AStar(g, "0,0", name(n-1, n-1), paths.WithHeuristic(h)); err != nil {
			b.Fatal(err)
		}
	}
}
