package paths

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/toposort"
)

// DAG computes best distances from source over a directed acyclic graph
// in a single relaxation sweep along a topological order. Negative
// weights are fine here: with no cycles, one ordered pass settles every
// vertex.
//
// The topological order comes from toposort.Sort; if that sort uncovers a
// cycle, DAG stops with ErrCyclicInput and StatusFailed before relaxing
// anything. Cancellation is not an error: the context is polled once per
// vertex of the sweep (and inside the sort), and a cancelled run returns
// the distances committed so far with StatusCancelled and a nil error.
//
// Complexity: O((V + E) log V) time (dominated by the sort), O(V + E)
// space.
func DAG(g DirectedGraph, source string, opts ...Option) (*Result, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		return nil, options.err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	// 2) Start every vertex at InitialDistance, the source at zero.
	rx := options.Relaxer
	vertices := g.Vertices()
	res := newResult(rx, source, len(vertices))
	for _, id := range vertices {
		res.Dist[id] = rx.InitialDistance()
	}
	res.Dist[source] = 0

	// 3) Order the vertices; surface cycles and cancellation.
	sorted, err := toposort.Sort(g, toposort.WithContext(options.Ctx))
	if err != nil {
		res.Status = core.StatusFailed
		if errors.Is(err, toposort.ErrCyclicGraph) {
			return res, fmt.Errorf("%w: %v", ErrCyclicInput, err)
		}

		return res, fmt.Errorf("%w: %v", ErrIncidence, err)
	}
	if sorted.Status == core.StatusCancelled {
		res.Status = core.StatusCancelled

		return res, nil
	}

	// 4) One relaxation sweep in topological order.
	for _, u := range sorted.Order {
		// Poll cancellation once per vertex.
		select {
		case <-options.Ctx.Done():
			res.Status = core.StatusCancelled

			return res, nil
		default:
		}

		du := res.Dist[u]
		if du == rx.InitialDistance() {
			continue
		}
		edges, oerr := g.OutEdges(u)
		if oerr != nil {
			res.Status = core.StatusFailed

			return res, fmt.Errorf("%w: vertex %q: %v", ErrIncidence, u, oerr)
		}
		for _, e := range edges {
			if !options.Filter(e) {
				continue
			}
			cand := rx.Combine(du, options.Weight(e))
			if rx.Compare(options.MaxDistance, cand) {
				continue
			}
			if !rx.Compare(cand, res.Dist[e.To]) {
				continue
			}
			res.Dist[e.To] = cand
			res.Parent[e.To] = u
			res.ParentEdge[e.To] = e.ID
		}
	}

	options.Logger.WithFields(logrus.Fields{
		"source":   source,
		"vertices": len(sorted.Order),
	}).Debug("dag relaxation finished")

	return res, nil
}
