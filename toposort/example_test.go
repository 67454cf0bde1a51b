package toposort_test

import (
	"errors"
	"fmt"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/toposort"
)

// ExampleSort orders the stages of a small build pipeline.
func ExampleSort() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("fetch", "compile", 0)
	_, _ = g.AddEdge("compile", "test", 0)
	_, _ = g.AddEdge("fetch", "lint", 0)
	_, _ = g.AddEdge("lint", "test", 0)

	res, err := toposort.Sort(g)
	if err != nil {
		fmt.Println("sort failed:", err)
		return
	}

	fmt.Println(res.Order)
	// Output:
	// [fetch compile lint test]
}

// ExampleSort_cycle shows the failure contract on cyclic input.
func ExampleSort_cycle() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "a", 0)

	res, err := toposort.Sort(g)
	fmt.Println("cyclic:", errors.Is(err, toposort.ErrCyclicGraph))
	fmt.Println("status:", res.Status)
	// Output:
	// cyclic: true
	// status: failed
}

// ExampleSort_backward lists dependents before their dependencies.
func ExampleSort_backward() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("base", "app", 0)

	res, _ := toposort.Sort(g, toposort.WithDirection(toposort.Backward))
	fmt.Println(res.Order)
	// Output:
	// [app base]
}
