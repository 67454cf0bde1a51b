package paths_test

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/paths"
)

// weightedGraph wires weighted edges into a fresh graph.
func weightedGraph(t *testing.T, directed bool, edges []struct {
	from, to string
	w        int64
}) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed), core.WithWeighted())
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

// requireRoundTrip checks the recorded distance of every reached vertex
// against the summed weights of its reconstructed path.
func requireRoundTrip(t *testing.T, g *core.Graph, res *paths.Result) {
	t.Helper()
	for _, v := range g.Vertices() {
		if !res.Reached(v) {
			require.Nil(t, res.PathTo(v))
			continue
		}
		var sum int64
		for at := v; ; {
			eid, ok := res.ParentEdge[at]
			if !ok {
				break
			}
			e, err := g.EdgeByID(eid)
			require.NoError(t, err)
			sum += e.Weight
			at = res.Parent[at]
		}
		require.Equal(t, res.Dist[v], sum, "distance mismatch for %s", v)
	}
}

// --- validation -----------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := paths.Dijkstra(nil, "A")
	require.ErrorIs(t, err, paths.ErrGraphNil)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := paths.Dijkstra(g, "X")
	require.ErrorIs(t, err, paths.ErrSourceNotFound)
}

func TestDijkstra_NegativeMaxDistance(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))

	_, err := paths.Dijkstra(g, "A", paths.WithMaxDistance(-1))
	require.ErrorIs(t, err, paths.ErrOptionViolation)
}

// --- shortest paths -------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	g := weightedGraph(t, false, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5},
	})

	res, err := paths.Dijkstra(g, "A")
	require.NoError(t, err)
	require.Equal(t, core.StatusCompleted, res.Status)
	require.Equal(t, "A", res.Source)
	require.Equal(t, int64(0), res.Dist["A"])
	require.Equal(t, int64(1), res.Dist["B"])
	require.Equal(t, int64(3), res.Dist["C"])
	require.Equal(t, []string{"A", "B", "C"}, res.PathTo("C"))
	requireRoundTrip(t, g, res)
}

func TestDijkstra_DirectedOrientation(t *testing.T) {
	g := weightedGraph(t, true, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 2},
	})

	res, err := paths.Dijkstra(g, "B")
	require.NoError(t, err)
	require.False(t, res.Reached("A"))
	require.Equal(t, paths.Unreachable, res.Dist["A"])
}

func TestDijkstra_ParallelEdgesPickCheapest(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	cheap, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)

	res, err := paths.Dijkstra(g, "A")
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Dist["B"])
	require.Equal(t, cheap, res.ParentEdge["B"])
}

func TestDijkstra_SelfLoopIgnoredByRelaxation(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithDirected(true))
	_, err := g.AddEdge("A", "A", 7)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 3)
	require.NoError(t, err)

	res, err := paths.Dijkstra(g, "A")
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Dist["A"])
	require.Equal(t, int64(3), res.Dist["B"])
}

func TestDijkstra_DeterministicTieBreak(t *testing.T) {
	g := weightedGraph(t, false, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 1}, {"A", "C", 1}, {"B", "D", 1}, {"C", "D", 1},
	})

	res, err := paths.Dijkstra(g, "A")
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Dist["D"])
	require.Equal(t, "B", res.Parent["D"], "equal-distance frontier must settle in ID order")
}

func TestDijkstra_RoundTripProperty(t *testing.T) {
	g := weightedGraph(t, true, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"C", "B", 1}, {"B", "D", 5},
		{"C", "D", 8}, {"D", "E", 3}, {"B", "E", 10}, {"A", "F", 1},
	})
	require.NoError(t, g.AddVertex("island"))

	res, err := paths.Dijkstra(g, "A")
	require.NoError(t, err)
	requireRoundTrip(t, g, res)
	require.Equal(t, int64(3), res.Dist["B"], "A→C→B beats A→B")
	require.False(t, res.Reached("island"))
}

// --- options --------------------------------------------------------------

func TestDijkstra_MaxDistancePrunes(t *testing.T) {
	g := weightedGraph(t, true, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1},
	})

	res, err := paths.Dijkstra(g, "A", paths.WithMaxDistance(2))
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Dist["C"])
	require.False(t, res.Reached("D"))
}

func TestDijkstra_FilterEdge(t *testing.T) {
	g := weightedGraph(t, true, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 1}, {"A", "C", 1},
	})
	blocked := g.Edges()[1].ID

	res, err := paths.Dijkstra(g, "A", paths.WithFilterEdge(func(e core.Edge) bool {
		return e.ID != blocked
	}))
	require.NoError(t, err)
	require.True(t, res.Reached("B"))
	require.False(t, res.Reached("C"))
}

func TestDijkstra_WeightFuncOverride(t *testing.T) {
	g := weightedGraph(t, true, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 100}, {"B", "C", 100},
	})

	res, err := paths.Dijkstra(g, "A", paths.WithWeightFunc(func(core.Edge) int64 {
		return 1
	}))
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Dist["C"], "hop count when every edge weighs 1")
}

func TestDijkstra_EdgeOnlyRelaxerGrowsSpanningTree(t *testing.T) {
	// With EdgeOnly the key of a vertex is the weight of the single edge
	// attaching it, not the accumulated distance: Prim's growth.
	g := weightedGraph(t, false, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 5}, {"B", "C", 1}, {"A", "C", 4},
	})

	res, err := paths.Dijkstra(g, "A", paths.WithRelaxer(paths.EdgeOnly{}))
	require.NoError(t, err)
	require.Equal(t, int64(4), res.Dist["C"], "C attaches via A-C (4)")
	require.Equal(t, int64(1), res.Dist["B"], "B re-attaches via C-B (1)")
	require.Equal(t, "C", res.Parent["B"])
}

// --- cancellation ---------------------------------------------------------

func TestDijkstra_CancelledBeforeRun(t *testing.T) {
	g := weightedGraph(t, true, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 1},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := paths.Dijkstra(g, "A", paths.WithContext(ctx))
	require.NoError(t, err)
	require.Equal(t, core.StatusCancelled, res.Status)
	require.Equal(t, int64(0), res.Dist["A"], "source stays seeded in the partial result")
}

// --- scale ----------------------------------------------------------------

func TestDijkstra_LongChain(t *testing.T) {
	const n = 500
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1), 2)
		require.NoError(t, err)
	}

	res, err := paths.Dijkstra(g, "v0")
	require.NoError(t, err)
	require.Equal(t, int64(2*(n-1)), res.Dist["v"+strconv.Itoa(n-1)])
	require.Len(t, res.PathTo("v"+strconv.Itoa(n-1)), n)
}

// --- instrumentation --------------------------------------------------------

func TestDijkstra_LoggerReceivesProgress(t *testing.T) {
	g := weightedGraph(t, true, []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 1},
	})

	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	_, err := paths.Dijkstra(g, "A", paths.WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "dijkstra finished")
}
