package core

// Capability interfaces.
//
// Algorithms never depend on *Graph directly: each algorithm package
// declares a local Graph interface embedding exactly the capabilities it
// consumes, and *Graph (or FilteredView, or any user type) satisfies it
// structurally. Requiring a capability an input lacks is then a compile
// error at the call site, not a runtime surprise.

// VertexSet enumerates vertices.
type VertexSet interface {
	// Vertices returns all vertex IDs in ascending order.
	Vertices() []string

	// VertexCount returns the number of vertices.
	VertexCount() int

	// HasVertex reports whether id is present. Empty IDs are absent.
	HasVertex(id string) bool
}

// EdgeSet enumerates edges.
type EdgeSet interface {
	// Edges returns copies of all edges, sorted by Edge.ID.
	Edges() []Edge

	// EdgeCount returns the number of edges.
	EdgeCount() int
}

// Incidence answers forward incidence queries.
type Incidence interface {
	// OutEdges returns copies of the edges leaving id, sorted by Edge.ID,
	// each reoriented so that From == id. For undirected graphs this is
	// every incident edge.
	OutEdges(id string) ([]Edge, error)

	// OutDegree returns len(OutEdges(id)) without building the slice.
	OutDegree(id string) (int, error)
}

// Bidirectional extends Incidence with reverse incidence queries.
type Bidirectional interface {
	Incidence

	// InEdges returns copies of the edges entering id, sorted by Edge.ID,
	// each reoriented so that To == id. For undirected graphs this is
	// every incident edge.
	InEdges(id string) ([]Edge, error)

	// InDegree returns len(InEdges(id)) without building the slice.
	InDegree(id string) (int, error)
}

// Mutable is the write surface of a graph.
type Mutable interface {
	// AddVertex inserts a vertex; adding an existing vertex is a no-op.
	AddVertex(id string) error

	// RemoveVertex deletes a vertex and every incident edge.
	RemoveVertex(id string) error

	// AddEdge connects from → to with the given weight, creating missing
	// endpoints, and returns the new edge's ID.
	AddEdge(from, to string, weight int64) (string, error)

	// RemoveEdge deletes the edge with the given ID.
	RemoveEdge(edgeID string) error
}
