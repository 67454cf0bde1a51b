package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrCapabilityMissing indicates a wrapped source graph does not expose
	// the capability the caller asked for (e.g. InEdges on a view over a
	// forward-only source).
	ErrCapabilityMissing = errors.New("core: source graph lacks required capability")
)

// Edge is a connection between two vertices.
//
// ID uniquely identifies the edge within its Graph; parallel edges are
// distinct edges with distinct IDs. Edge values handed out by query methods
// are copies: mutating them never touches graph state.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID. Incidence queries reorient copies so
	// that From is always the vertex the query was asked about.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge. Zero for unweighted graphs.
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the adjacency-list in-memory graph.
//
// Directedness, weights, parallel edges and self-loops are graph-level
// configuration fixed at construction. A vertex is a bare string ID; all
// per-vertex algorithm state lives outside the graph.
//
// muVert guards the vertex set; muEdgeAdj guards the edge catalog and both
// adjacency indexes. Two locks keep vertex-only readers off the edge lock.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacency, reverse

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	nextEdgeID uint64 // atomic edge ID generator

	vertices map[string]struct{}
	edges    map[string]*Edge

	// adjacency[from][to][edgeID]; undirected edges are mirrored both ways.
	adjacency map[string]map[string]map[string]struct{}

	// reverse[to][from][edgeID]; maintained for directed graphs only, so
	// InEdges does not scan the whole catalog.
	reverse map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// The zero configuration is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
		reverse:   make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph accepts non-zero edge weights.
func (g *Graph) Weighted() bool { return g.weighted }

// AllowsLoops reports whether self-loops may be added.
func (g *Graph) AllowsLoops() bool { return g.allowLoops }

// AllowsMultiEdges reports whether parallel edges may be added.
func (g *Graph) AllowsMultiEdges() bool { return g.allowMulti }
