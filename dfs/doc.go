// Package dfs implements depth-first search over any graph exposing the
// core.VertexSet and core.Incidence capabilities.
//
// What DFS computes
//
//   - PreOrder: vertices in discovery order (gray transitions).
//   - PostOrder: vertices in finish order (black transitions).
//   - Parent / ParentEdge: the DFS tree, one entry per non-root vertex.
//   - BackEdges: every edge into a gray vertex, each one a cycle witness.
//   - Colors: final White/Gray/Black mark per touched vertex.
//
// Traversal mechanics
//
// The walker is iterative. A discovered vertex is pushed onto the
// frontier stack exactly once; while it sits on top, its out-edges are
// examined one per step in ascending edge-ID order, and it is popped and
// finished when they are exhausted. This reproduces the recursive visit
// order without unbounded call depth, and the frontier is injectable via
// WithStack for callers that want to observe or reorder it.
//
// Events
//
// Four void callbacks observe the run: OnDiscover (pre-order, with tree
// depth), OnExamine (every out-edge, before filtering), OnBackEdge (edge
// into a gray vertex), and OnFinish (post-order). Callbacks must not
// mutate the graph; to stop early, cancel the context passed through
// WithContext.
//
// Cancellation
//
// Cancellation is a status, not an error. The context is polled once per
// frontier step; a cancelled run returns the partial Result with
// Status == core.StatusCancelled and a nil error.
//
// Determinism
//
// With the default stack, two runs over the same graph produce identical
// orders: out-edges arrive sorted by edge ID and forest roots are taken
// in ascending vertex-ID order.
//
// Usage:
//
//	g := core.NewGraph(core.WithDirected(true))
//	// ... add vertices and edges ...
//	res, err := dfs.DFS(g, "A",
//	    dfs.WithOnFinish(func(id string) { fmt.Println("done:", id) }),
//	)
//
// Complexity: O(V + E) time, O(V) auxiliary space.
//
// See also: TopologicalOrder for reverse post-order sorting of DAGs, and
// HasCycle for a back-edge existence check.
package dfs
