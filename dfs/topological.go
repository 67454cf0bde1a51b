package dfs

import "fmt"

// TopologicalOrder returns a topological ordering of a directed acyclic
// graph as the reverse of DFS post-order. Components are entered in
// ascending vertex-ID order, so the result is deterministic for a given
// graph.
//
// A back edge means the graph is cyclic: TopologicalOrder reports
// ErrCycleDetected wrapping the witness edge ID and returns the order
// accumulated so far, which is not a valid topological order. If the
// context supplied via WithContext is cancelled, the returned order is
// truncated and the error is nil; callers that need to distinguish that
// case should inspect their context.
//
// For the queue-based variant with explicit status reporting, see the
// toposort package.
//
// Complexity: O(V + E) time, O(V) space.
func TopologicalOrder(g DirectedGraph, opts ...Option) ([]string, error) {
	// 1) Validate the graph handle and its directedness.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	// 2) Walk the whole forest.
	res, err := DFS(g, "", append(opts, WithFullTraversal())...)
	if err != nil {
		return nil, err
	}

	// 3) Reverse the post-order.
	order := make([]string, len(res.PostOrder))
	for i, id := range res.PostOrder {
		order[len(order)-1-i] = id
	}

	// 4) Any back edge disqualifies the order.
	if len(res.BackEdges) > 0 {
		return order, fmt.Errorf("%w: via edge %q", ErrCycleDetected, res.BackEdges[0].ID)
	}

	return order, nil
}
