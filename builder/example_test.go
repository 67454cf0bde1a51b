package builder_test

import (
	"fmt"

	"github.com/plexus-graph/plexus/bfs"
	"github.com/plexus-graph/plexus/builder"
)

// ExamplePath shows the generated naming scheme.
func ExamplePath() {
	g, _ := builder.Path(4)
	fmt.Println(g.Vertices())
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// [v0 v1 v2 v3]
	// edges: 3
}

// ExampleGrid walks a directed grid from its corner; every cell is
// reachable rightward and downward.
func ExampleGrid() {
	g, _ := builder.Grid(3, 3, builder.WithDirected())

	res, _ := bfs.BFS(g, "0_0")
	fmt.Println("visited:", len(res.Order))
	fmt.Println("depth of 2_2:", res.Depth["2_2"])

	// Output:
	// visited: 9
	// depth of 2_2: 4
}
