package mst

import (
	"fmt"
	"sort"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/dsu"
)

// Kruskal computes a minimum spanning tree of an undirected graph by
// scanning edges in ascending weight order and accepting every edge
// whose endpoints still lie in different components.
//
// Self-loops are skipped: they can never join components. Parallel
// edges are handled naturally, the cheapest one wins. Ties between
// equal weights keep the edge snapshot's insertion order, so the
// accepted set is deterministic. Negative weights are fine.
//
// Unweighted graphs degenerate gracefully: every edge weighs zero and
// the result is an arbitrary deterministic spanning tree.
//
// Returns ErrGraphNil, ErrDirectedGraph, or ErrDisconnectedGraph when
// fewer than V-1 edges can be accepted (the empty graph counts as
// disconnected).
//
// Complexity: O(E log E) time for the sort, near-linear union-find
// after; memory O(V + E).
func Kruskal(g Graph) (*Tree, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	// 2) Snapshot edges, dropping self-loops.
	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3) Ascending weight; the stable sort preserves snapshot order on
	//    ties.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4) One set per vertex.
	vertices := g.Vertices()
	sets := dsu.New()
	for _, id := range vertices {
		_ = sets.MakeSet(id)
	}

	// 5) Accept edges that merge two components.
	tree := &Tree{Edges: make([]core.Edge, 0, len(vertices))}
	for _, e := range edges {
		merged, err := sets.Union(e.From, e.To)
		if err != nil {
			return nil, fmt.Errorf("mst: union %q-%q: %w", e.From, e.To, err)
		}
		if !merged {
			continue
		}
		tree.Edges = append(tree.Edges, e)
		tree.TotalWeight += e.Weight
		if len(tree.Edges) == len(vertices)-1 {
			break
		}
	}

	// 6) A spanning tree needs exactly V-1 edges.
	if len(tree.Edges) != len(vertices)-1 {
		return nil, ErrDisconnectedGraph
	}

	return tree, nil
}
