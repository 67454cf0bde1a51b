package flow_test

import (
	"fmt"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/flow"
)

// ExampleEdmondsKarp computes the maximum flow of a diamond network
// whose cross edge tempts the engine into a reroute.
func ExampleEdmondsKarp() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("s", "a", 10)
	g.AddEdge("s", "b", 10)
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "t", 10)
	g.AddEdge("b", "t", 10)

	aug, _ := flow.AugmentReverseEdges(g)
	res, _ := flow.EdmondsKarp(g, "s", "t", flow.WithReversedEdges(aug.Reversed))

	fmt.Println("max flow:", res.MaxFlow)
	// Output: max flow: 20
}

// ExampleDinic saturates a two-layer network phase by phase.
func ExampleDinic() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("s", "a1", 3)
	g.AddEdge("s", "a2", 4)
	g.AddEdge("a1", "b1", 2)
	g.AddEdge("a1", "b2", 2)
	g.AddEdge("a2", "b1", 3)
	g.AddEdge("a2", "b2", 1)
	g.AddEdge("b1", "t", 4)
	g.AddEdge("b2", "t", 3)

	aug, _ := flow.AugmentReverseEdges(g)
	res, _ := flow.Dinic(g, "s", "t", flow.WithReversedEdges(aug.Reversed))

	fmt.Println("max flow:", res.MaxFlow)
	// Output: max flow: 7
}

// ExampleAugmentReverseEdges pairs every edge with a reverse, runs the
// engine, and restores the original edge set afterwards.
func ExampleAugmentReverseEdges() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("a", "b", 4)
	g.AddEdge("b", "c", 2)

	aug, _ := flow.AugmentReverseEdges(g)
	fmt.Println("synthetic edges:", len(aug.Added))

	res, _ := flow.EdmondsKarp(g, "a", "c", flow.WithReversedEdges(aug.Reversed))
	fmt.Println("max flow:", res.MaxFlow)

	aug.Remove()
	fmt.Println("edges after removal:", g.EdgeCount())
	// Output:
	// synthetic edges: 2
	// max flow: 2
	// edges after removal: 2
}

// ExampleMinCut recovers the weakest link of a chain from the final
// search coloring.
func ExampleMinCut() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("s", "a", 3)
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "t", 5)

	res, _ := flow.EdmondsKarp(g, "s", "t")
	cut, _ := flow.MinCut(g, res)

	fmt.Println("max flow:", res.MaxFlow)
	for _, e := range cut {
		fmt.Printf("%s -> %s\n", e.From, e.To)
	}
	// Output:
	// max flow: 1
	// a -> b
}
