package mst

import (
	"fmt"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/paths"
)

// Prim computes a minimum spanning tree of an undirected graph by
// growing outward from root, always attaching the fringe vertex with
// the cheapest connecting edge.
//
// The growth is Dijkstra's loop under the paths.EdgeOnly relaxer: the
// priority of a fringe vertex is the weight of its best attachment
// edge alone, so settling vertices best-first reproduces Prim's
// selection exactly. Each settled vertex's ParentEdge is its
// attachment; the tree is read off the relaxation result.
//
// Returns ErrGraphNil, ErrDirectedGraph, ErrRootNotFound, or
// ErrDisconnectedGraph when some vertex stays unreachable from root.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Prim(g Graph, root string) (*Tree, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %q", ErrRootNotFound, root)
	}

	// 2) Grow the tree: cheapest attachment edge first.
	res, err := paths.Dijkstra(g, root, paths.WithRelaxer(paths.EdgeOnly{}))
	if err != nil {
		return nil, fmt.Errorf("mst: prim: %w", err)
	}

	// 3) Read the attachment edges back out of the snapshot.
	byID := make(map[string]core.Edge, g.EdgeCount())
	for _, e := range g.Edges() {
		byID[e.ID] = e
	}

	tree := &Tree{Edges: make([]core.Edge, 0, g.VertexCount()-1)}
	for _, v := range g.Vertices() {
		if v == root {
			continue
		}
		if res.Dist[v] == paths.Unreachable {
			return nil, ErrDisconnectedGraph
		}
		e := byID[res.ParentEdge[v]]
		tree.Edges = append(tree.Edges, e)
		tree.TotalWeight += e.Weight
	}

	return tree, nil
}
