package mst

import (
	"errors"

	"github.com/plexus-graph/plexus/core"
)

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrDirectedGraph is returned when the input graph is directed.
	// Spanning trees are defined over undirected graphs.
	ErrDirectedGraph = errors.New("mst: graph must be undirected")

	// ErrRootNotFound is returned by Prim when the root vertex is absent.
	ErrRootNotFound = errors.New("mst: root vertex not found")

	// ErrDisconnectedGraph is returned when no spanning tree exists
	// because the graph has more than one connected component.
	ErrDisconnectedGraph = errors.New("mst: graph is disconnected")
)

// Graph is the capability surface the spanning-tree builders need.
// Kruskal reads the edge snapshot; Prim walks incidence.
type Graph interface {
	core.VertexSet
	core.EdgeSet
	core.Incidence
	Directed() bool
}

// Tree is a minimum spanning tree: V-1 edges and their summed weight.
//
// Kruskal lists edges in acceptance order (ascending weight, insertion
// order on ties); Prim lists them by the vertex they attach, in
// ascending vertex ID order. Both orders are deterministic.
type Tree struct {
	Edges       []core.Edge
	TotalWeight int64
}
