package components

import (
	"fmt"

	"github.com/plexus-graph/plexus/core"
)

// Condense contracts every strongly connected component of a directed
// graph to a single vertex and returns the resulting component graph.
//
// The condensed vertex for a component is named after its
// representative (smallest member ID). Edges inside a component
// vanish; between two components at most one edge survives per
// ordered pair, regardless of how many original edges cross. The
// condensed graph of any directed graph is acyclic, so toposort.Sort
// always succeeds on it.
//
// Returns ErrGraphNil or ErrUndirectedGraph.
//
// Complexity: O(V + E) time, O(V + E) memory.
func Condense(g Graph) (*Condensation, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	// 2) Find the components to contract.
	f, err := Strong(g)
	if err != nil {
		return nil, err
	}

	// 3) One condensed vertex per component, named by representative.
	condensed := core.NewGraph(core.WithDirected(true))
	reps := make([]string, f.Count)
	for i, members := range f.Members {
		reps[i] = members[0]
		if err = condensed.AddVertex(members[0]); err != nil {
			return nil, fmt.Errorf("components: condense vertex %q: %w", members[0], err)
		}
	}

	// 4) Project edges across components, one per distinct pair.
	seen := make(map[[2]int]struct{})
	for _, e := range g.Edges() {
		cu, cv := f.ComponentOf[e.From], f.ComponentOf[e.To]
		if cu == cv {
			continue
		}
		pair := [2]int{cu, cv}
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}
		if _, err = condensed.AddEdge(reps[cu], reps[cv], 0); err != nil {
			return nil, fmt.Errorf("components: condense edge %q->%q: %w", reps[cu], reps[cv], err)
		}
	}

	return &Condensation{Graph: condensed, ComponentOf: f.ComponentOf, Members: f.Members}, nil
}
