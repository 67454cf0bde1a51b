package mst_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/dsu"
	"github.com/plexus-graph/plexus/mst"
)

// --- construction helpers ---

// weighted builds an undirected weighted graph from (from, to, w)
// triples.
func weighted(t *testing.T, edges []struct {
	from, to string
	w        int64
}) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

// classic is the four-vertex textbook graph: the spanning tree keeps
// A-B (1), B-C (2), C-D (4) and drops A-C (3), weight 7.
func classic(t *testing.T) *core.Graph {
	t.Helper()

	return weighted(t, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 1},
		{"B", "C", 2},
		{"A", "C", 3},
		{"C", "D", 4},
	})
}

// ringWithChords builds a connected ring of n vertices with chord
// edges every five steps; weights vary deterministically.
func ringWithChords(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	name := func(i int) string { return fmt.Sprintf("v%02d", i) }
	for i := 0; i < n; i++ {
		_, err := g.AddEdge(name(i), name((i+1)%n), int64(i%7+1))
		require.NoError(t, err)
	}
	for i := 0; i < n/2; i += 5 {
		_, err := g.AddEdge(name(i), name(i+n/2), int64(i%11+3))
		require.NoError(t, err)
	}

	return g
}

// assertSpanning checks the structural tree properties: exactly V-1
// edges, no cycle, every vertex covered.
func assertSpanning(t *testing.T, g *core.Graph, tree *mst.Tree) {
	t.Helper()
	require.Len(t, tree.Edges, g.VertexCount()-1)

	sets := dsu.New()
	for _, id := range g.Vertices() {
		require.NoError(t, sets.MakeSet(id))
	}
	for _, e := range tree.Edges {
		merged, err := sets.Union(e.From, e.To)
		require.NoError(t, err)
		require.True(t, merged, "edge %s-%s closes a cycle", e.From, e.To)
	}
	require.Equal(t, 1, sets.Count())
}

// --- Kruskal ---

func TestKruskal_Classic(t *testing.T) {
	g := classic(t)

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, int64(7), tree.TotalWeight)
	assertSpanning(t, g, tree)

	// acceptance order follows ascending weight
	weights := make([]int64, 0, len(tree.Edges))
	for _, e := range tree.Edges {
		weights = append(weights, e.Weight)
	}
	require.Equal(t, []int64{1, 2, 4}, weights)
}

func TestKruskal_TieBreakDeterministic(t *testing.T) {
	g := weighted(t, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 1},
		{"C", "D", 1},
		{"B", "C", 1},
		{"A", "D", 1},
	})

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, int64(3), tree.TotalWeight)

	// equal weights resolve in insertion order: the fourth edge is the
	// one that would close the ring
	ids := []string{tree.Edges[0].ID, tree.Edges[1].ID, tree.Edges[2].ID}
	require.Equal(t, []string{"e1", "e2", "e3"}, ids)
}

func TestKruskal_ParallelEdgesPickCheapest(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	g.AddEdge("A", "B", 5)
	cheap, _ := g.AddEdge("A", "B", 2)

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, int64(2), tree.TotalWeight)
	require.Equal(t, cheap, tree.Edges[0].ID)
}

func TestKruskal_SelfLoopsIgnored(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	g.AddEdge("A", "A", 1)
	g.AddEdge("A", "B", 3)

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, int64(3), tree.TotalWeight)
	require.Len(t, tree.Edges, 1)
}

func TestKruskal_NegativeWeights(t *testing.T) {
	g := weighted(t, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", -5},
		{"B", "C", 2},
		{"A", "C", 3},
	})

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, int64(-3), tree.TotalWeight)
}

func TestKruskal_Disconnected(t *testing.T) {
	g := weighted(t, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 1},
		{"C", "D", 1},
	})

	_, err := mst.Kruskal(g)
	require.ErrorIs(t, err, mst.ErrDisconnectedGraph)
}

func TestKruskal_SingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	g.AddVertex("solo")

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Empty(t, tree.Edges)
	require.Zero(t, tree.TotalWeight)
}

func TestKruskal_EmptyGraph(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	_, err := mst.Kruskal(g)
	require.ErrorIs(t, err, mst.ErrDisconnectedGraph)
}

func TestKruskal_Validation(t *testing.T) {
	_, err := mst.Kruskal(nil)
	require.ErrorIs(t, err, mst.ErrGraphNil)

	d := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	d.AddEdge("A", "B", 1)
	_, err = mst.Kruskal(d)
	require.ErrorIs(t, err, mst.ErrDirectedGraph)
}

// --- Prim ---

func TestPrim_Classic(t *testing.T) {
	g := classic(t)

	tree, err := mst.Prim(g, "A")
	require.NoError(t, err)
	require.Equal(t, int64(7), tree.TotalWeight)
	assertSpanning(t, g, tree)
}

func TestPrim_RootChoiceKeepsWeight(t *testing.T) {
	g := classic(t)

	for _, root := range g.Vertices() {
		tree, err := mst.Prim(g, root)
		require.NoError(t, err)
		require.Equal(t, int64(7), tree.TotalWeight, "root %q", root)
	}
}

func TestPrim_SingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	g.AddVertex("solo")

	tree, err := mst.Prim(g, "solo")
	require.NoError(t, err)
	require.Empty(t, tree.Edges)
}

func TestPrim_Disconnected(t *testing.T) {
	g := weighted(t, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 1},
		{"C", "D", 1},
	})

	_, err := mst.Prim(g, "A")
	require.ErrorIs(t, err, mst.ErrDisconnectedGraph)
}

func TestPrim_Validation(t *testing.T) {
	_, err := mst.Prim(nil, "A")
	require.ErrorIs(t, err, mst.ErrGraphNil)

	d := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	d.AddEdge("A", "B", 1)
	_, err = mst.Prim(d, "A")
	require.ErrorIs(t, err, mst.ErrDirectedGraph)

	g := classic(t)
	_, err = mst.Prim(g, "missing")
	require.ErrorIs(t, err, mst.ErrRootNotFound)
}

// --- cross-algorithm properties ---

// TestPrimMatchesKruskal pins the classic result: every minimum
// spanning tree of a graph has the same total weight, whichever
// construction found it.
func TestPrimMatchesKruskal(t *testing.T) {
	g := ringWithChords(t, 30)

	kruskal, err := mst.Kruskal(g)
	require.NoError(t, err)
	prim, err := mst.Prim(g, "v00")
	require.NoError(t, err)

	require.Equal(t, kruskal.TotalWeight, prim.TotalWeight)
	assertSpanning(t, g, kruskal)
	assertSpanning(t, g, prim)
}
