// Package toposort orders the vertices of a directed acyclic graph so
// that every edge points forward in the result.
//
// What Sort computes
//
// A Kahn-style elimination driven by a priority queue keyed by live
// degree: all vertices are enqueued at once, the minimum-degree vertex is
// dequeued each round, and its successors' keys are decremented in place.
// In an acyclic graph the dequeued vertex always has degree zero; the
// first dequeue that violates this proves a cycle and aborts the sort.
//
// Directions
//
//   - Forward (default): key = in-degree, sources first.
//   - Backward: key = out-degree, sinks first (reverse topological order).
//
// Failure and cancellation
//
// ErrCyclicGraph carries the offending vertex and leaves the partial
// prefix in Result.Order with Status == core.StatusFailed; the prefix is
// not a valid order. Cancellation is a status, not an error: the context
// is polled once per dequeue, and a cancelled run returns the partial
// order with core.StatusCancelled and a nil error.
//
// Determinism
//
// Vertices with equal degree dequeue in ascending ID order, so two runs
// over the same graph produce identical output.
//
// Usage:
//
//	g := core.NewGraph(core.WithDirected(true))
//	// ... add dependency edges ...
//	res, err := toposort.Sort(g)
//	if errors.Is(err, toposort.ErrCyclicGraph) {
//	    // dependency cycle; res.Order holds the settled prefix
//	}
//
// Complexity: O((V + E) log V) time, O(V + E) space.
//
// See also: dfs.TopologicalOrder for the depth-first variant.
package toposort
