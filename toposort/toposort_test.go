package toposort_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/toposort"
)

func buildDAG(t *testing.T, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}

// requireTopological fails unless every edge of g points forward in order.
func requireTopological(t *testing.T, g *core.Graph, order []string) {
	t.Helper()
	require.Len(t, order, g.VertexCount())
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		require.Less(t, pos[e.From], pos[e.To], "edge %s→%s out of order", e.From, e.To)
	}
}

func TestSort_NilGraph(t *testing.T) {
	_, err := toposort.Sort(nil)
	require.ErrorIs(t, err, toposort.ErrGraphNil)
}

func TestSort_UndirectedGraph(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	_, err = toposort.Sort(g)
	require.ErrorIs(t, err, toposort.ErrUndirectedGraph)
}

func TestSort_InvalidDirection(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("A"))

	_, err := toposort.Sort(g, toposort.WithDirection(toposort.Direction(7)))
	require.ErrorIs(t, err, toposort.ErrOptionViolation)
}

func TestSort_EmptyGraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	res, err := toposort.Sort(g)
	require.NoError(t, err)
	require.Empty(t, res.Order)
	require.Equal(t, core.StatusCompleted, res.Status)
}

func TestSort_Diamond(t *testing.T) {
	g := buildDAG(t, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}})

	res, err := toposort.Sort(g)
	require.NoError(t, err)
	requireTopological(t, g, res.Order)
	require.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
}

func TestSort_IsolatedVerticesLexicographic(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, g.AddVertex(id))
	}

	res, err := toposort.Sort(g)
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "mid", "zeta"}, res.Order)
}

func TestSort_SelfLoopDoesNotBlock(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	res, err := toposort.Sort(g)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
}

func TestSort_ParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	res, err := toposort.Sort(g)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
}

func TestSort_CyclePartialPrefix(t *testing.T) {
	// S feeds a 3-cycle: S settles, then the sort must fail with the
	// prefix marked invalid.
	g := buildDAG(t, [][2]string{{"S", "A"}, {"A", "B"}, {"B", "C"}, {"C", "A"}})

	res, err := toposort.Sort(g)
	require.ErrorIs(t, err, toposort.ErrCyclicGraph)
	require.Equal(t, core.StatusFailed, res.Status)
	require.Equal(t, []string{"S"}, res.Order)
}

func TestSort_CycleNeverFullOrder(t *testing.T) {
	g := buildDAG(t, [][2]string{{"A", "B"}, {"B", "A"}})

	res, err := toposort.Sort(g)
	require.ErrorIs(t, err, toposort.ErrCyclicGraph)
	require.Less(t, len(res.Order), g.VertexCount())
}

func TestSort_BackwardChain(t *testing.T) {
	g := buildDAG(t, [][2]string{{"A", "B"}, {"B", "C"}})

	res, err := toposort.Sort(g, toposort.WithDirection(toposort.Backward))
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B", "A"}, res.Order)
}

func TestSort_BackwardProperty(t *testing.T) {
	g := buildDAG(t, [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"},
	})

	res, err := toposort.Sort(g, toposort.WithDirection(toposort.Backward))
	require.NoError(t, err)
	require.Len(t, res.Order, g.VertexCount())

	pos := make(map[string]int)
	for i, id := range res.Order {
		pos[id] = i
	}
	for _, e := range g.Edges() {
		require.Greater(t, pos[e.From], pos[e.To], "edge %s→%s must point backward", e.From, e.To)
	}
}

func TestSort_BackwardCycle(t *testing.T) {
	g := buildDAG(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})

	_, err := toposort.Sort(g, toposort.WithDirection(toposort.Backward))
	require.ErrorIs(t, err, toposort.ErrCyclicGraph)
}

func TestSort_CancelledBeforeRun(t *testing.T) {
	g := buildDAG(t, [][2]string{{"A", "B"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := toposort.Sort(g, toposort.WithContext(ctx))
	require.NoError(t, err)
	require.Equal(t, core.StatusCancelled, res.Status)
	require.Empty(t, res.Order)
}

// cancelAfterN yields a closed Done channel once it has been polled n
// times, forcing cancellation at an exact loop iteration.
type cancelAfterN struct {
	context.Context
	polls  int
	closed chan struct{}
}

func newCancelAfterN(n int) *cancelAfterN {
	c := &cancelAfterN{Context: context.Background(), polls: n, closed: make(chan struct{})}
	close(c.closed)

	return c
}

func (c *cancelAfterN) Done() <-chan struct{} {
	c.polls--
	if c.polls < 0 {
		return c.closed
	}

	return c.Context.Done()
}

func TestSort_CancelledMidRun(t *testing.T) {
	g := buildDAG(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})

	res, err := toposort.Sort(g, toposort.WithContext(newCancelAfterN(2)))
	require.NoError(t, err)
	require.Equal(t, core.StatusCancelled, res.Status)
	require.Equal(t, []string{"A", "B"}, res.Order)
}

func TestSort_Deterministic(t *testing.T) {
	g := buildDAG(t, [][2]string{
		{"t1", "t3"}, {"t1", "t2"}, {"t2", "t5"}, {"t3", "t5"}, {"t4", "t5"},
	})

	first, err := toposort.Sort(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, rerr := toposort.Sort(g)
		require.NoError(t, rerr)
		require.Equal(t, first.Order, again.Order)
	}
}

func TestDirection_String(t *testing.T) {
	require.Equal(t, "Forward", toposort.Forward.String())
	require.Equal(t, "Backward", toposort.Backward.String())
	require.Equal(t, "Direction(9)", toposort.Direction(9).String())
}
