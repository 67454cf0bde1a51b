package components

import (
	"errors"

	"github.com/plexus-graph/plexus/core"
)

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("components: graph is nil")

	// ErrUndirectedGraph is returned by Condense: contracting strongly
	// connected components only makes sense on a directed graph.
	ErrUndirectedGraph = errors.New("components: graph must be directed")

	// ErrIncidence is returned when the graph's incidence lookup fails
	// mid-traversal.
	ErrIncidence = errors.New("components: incidence lookup failed")
)

// Graph is the capability surface the component analyses need.
type Graph interface {
	core.VertexSet
	core.EdgeSet
	core.Incidence
	Directed() bool
}

// Forest is a partition of the vertex set into components.
//
// Components are numbered by first appearance in ascending vertex ID
// order: the component containing the smallest vertex ID is 0. Members
// lists each component's vertices in ascending order, so the whole
// structure is deterministic for a given graph.
type Forest struct {
	// ComponentOf maps every vertex to its component index.
	ComponentOf map[string]int

	// Members lists the vertices of each component, indexed by
	// component number.
	Members [][]string

	// Count is the number of components, len(Members).
	Count int
}

// SameComponent reports whether a and b belong to the same component.
// Unknown vertices are in no component.
func (f *Forest) SameComponent(a, b string) bool {
	ca, ok := f.ComponentOf[a]
	if !ok {
		return false
	}
	cb, ok := f.ComponentOf[b]

	return ok && ca == cb
}

// Condensation is the result of contracting every strongly connected
// component of a directed graph to a single vertex.
//
// Each condensed vertex is named after its component's representative,
// the smallest vertex ID in the component. The condensed graph is
// always acyclic.
type Condensation struct {
	// Graph is the condensed directed graph: one vertex per component,
	// one edge per distinct cross-component pair.
	Graph *core.Graph

	// ComponentOf and Members partition the original vertex set,
	// numbered exactly as in the Forest returned by Strong.
	ComponentOf map[string]int
	Members     [][]string
}
