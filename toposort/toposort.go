package toposort

import (
	"fmt"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/pqueue"
)

// Sort produces a topological ordering of a directed acyclic graph using
// a priority queue keyed by live in-degree.
//
// Every vertex is enqueued up front; the queue always surfaces the vertex
// with the lowest remaining degree, so zero-degree sources sort first
// without a separate seeding pass. Dequeuing a vertex whose degree is not
// zero proves the remaining vertices all lie on cycles: Sort stops there
// and reports ErrCyclicGraph with the partial prefix and StatusFailed.
// Equal degrees break ties by ascending vertex ID, making the order
// deterministic.
//
// In Backward direction the roles swap: the key is the out-degree and
// sinks sort first, yielding a reverse topological order.
//
// Self-loops neither block nor enable their own vertex and are ignored.
// Cancellation is not an error: a cancelled run returns the partial
// order with StatusCancelled and a nil error.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Sort(g Graph, opts ...Option) (*Result, error) {
	// 1) Validate the graph handle and its directedness.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	// 2) Assemble options and surface option errors.
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		return nil, options.err
	}

	res := &Result{}

	// 3) One incidence sweep builds the degree keys and successor lists
	//    for the chosen direction. Self-loops are skipped outright.
	vertices := g.Vertices()
	degree := make(map[string]int, len(vertices))
	succ := make(map[string][]string, len(vertices))
	for _, id := range vertices {
		edges, err := g.OutEdges(id)
		if err != nil {
			res.Status = core.StatusFailed

			return res, fmt.Errorf("%w: vertex %q: %v", ErrIncidence, id, err)
		}
		for _, e := range edges {
			if e.From == e.To {
				continue
			}
			switch options.Dir {
			case Forward:
				degree[e.To]++
				succ[e.From] = append(succ[e.From], e.To)
			case Backward:
				degree[e.From]++
				succ[e.To] = append(succ[e.To], e.From)
			}
		}
	}

	// 4) Enqueue every vertex, keyed by live degree with ID tie-break.
	q := pqueue.New(func(a, b string) bool {
		if degree[a] != degree[b] {
			return degree[a] < degree[b]
		}

		return a < b
	})
	for _, id := range vertices {
		_ = q.Enqueue(id)
	}

	// 5) Drain the queue, decrementing successors as vertices settle.
	for q.Len() > 0 {
		// Poll cancellation once per dequeue.
		select {
		case <-options.Ctx.Done():
			res.Status = core.StatusCancelled

			return res, nil
		default:
		}

		id, _ := q.Dequeue()
		if degree[id] != 0 {
			res.Status = core.StatusFailed

			return res, fmt.Errorf("%w: vertex %q retains degree %d", ErrCyclicGraph, id, degree[id])
		}

		res.Order = append(res.Order, id)
		for _, s := range succ[id] {
			degree[s]--
			q.Update(s)
		}
	}

	return res, nil
}
