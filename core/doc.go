// Package core provides a thread-safe in-memory Graph and the capability
// contract the algorithm packages are written against.
//
// The Graph G = (V,E) is configured once at construction:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// Vertices are bare string IDs; a graph carries no per-vertex payload and
// algorithms keep their working state in their own maps. Edges are
// identified by collision-free atomic IDs ("e1", "e2", ...) so parallel
// edges stay distinct. Storage is a nested map
// adjacency[from][to][edgeID] = struct{}{} for constant-time edge
// existence, insertion and deletion, mirrored for undirected graphs and
// paired with a reverse index for directed ones so InEdges never scans the
// catalog. Two sync.RWMutex instances (vertices vs. edges+adjacency) keep
// read contention low.
//
// Capability contract
//
// Algorithms consume interfaces, not *Graph: VertexSet, EdgeSet, Incidence,
// Bidirectional and Mutable each cover one concern, and every algorithm
// package declares a local Graph interface embedding exactly what it needs.
// Any type satisfying the embedded set plugs in, including FilteredView,
// the zero-copy live view used as a residual graph by the flow package.
//
// Determinism
//
// Vertices(), Edges(), OutEdges(), InEdges() and NeighborIDs() return
// sorted fresh snapshots. Incidence queries hand out edge copies reoriented
// so the queried vertex is always From (OutEdges) or To (InEdges), which
// lets traversal code stay direction-agnostic.
//
// Shared enums
//
// Color (White/Gray/Black) is the visit-mark vocabulary of the traversal
// engines, and ComputeStatus (Completed/Cancelled/Failed) is how every
// algorithm result reports the way its run ended; context cancellation is a
// status, never an error.
package core
