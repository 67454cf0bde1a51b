package flow

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/plexus-graph/plexus/bfs"
	"github.com/plexus-graph/plexus/core"
)

// EdmondsKarp computes the maximum flow from source to sink on a
// directed graph.
//
// The engine owns a residual-capacity map keyed by edge ID, seeded
// from the nominal capacities, and never mutates the graph itself. It
// repeatedly runs a breadth-first search from source over the residual
// view, a zero-copy core.FilteredView exposing only edges whose
// residual capacity exceeds Epsilon. Each search that reaches the sink
// yields a shortest augmenting path; the bottleneck residual along it
// is subtracted from every path edge and credited to each edge's
// paired reverse (see WithReversedEdges). When the sink stays white,
// no augmenting path remains and the flow is maximal.
//
// Edges without a reverse pairing are still debited, but the credit is
// skipped, so flow pushed through them cannot be rerouted later. For
// the true maximum on arbitrary graphs, run AugmentReverseEdges first
// and pass its pairing.
//
// Cancellation is polled once before each search phase. A cancelled
// run returns the flow accumulated so far with core.StatusCancelled
// and a nil error; augmentations are applied atomically between polls,
// so the partial result never contains a half-applied path.
//
// Returns ErrGraphNil, ErrUndirectedGraph, ErrSourceNotFound,
// ErrSinkNotFound, ErrIdenticalEndpoints, ErrNegativeCapacity,
// ErrOptionViolation before any computation, and ErrIncidence if the
// graph fails mid-run.
//
// Complexity: O(V * E^2) in the worst case; memory O(V + E).
func EdmondsKarp(g Graph, source, sink string, opts ...Option) (*Result, error) {
	// 1) Fail-fast validation and residual seeding.
	options, res, err := prepare(g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	// 2) The residual view: the base graph restricted to edges with
	//    spare residual capacity. The closure reads the live map, so
	//    every search sees the latest augmentations without copying.
	view := core.NewFilteredView(g, func(e core.Edge) bool {
		return res.Residual[e.ID] > options.Epsilon
	})

	for {
		// 3) Poll for cancellation between phases.
		select {
		case <-options.Ctx.Done():
			res.Status = core.StatusCancelled
			if err = settle(g, res); err != nil {
				return res, err
			}
			options.Logger.WithFields(logrus.Fields{
				"source":        source,
				"sink":          sink,
				"flow":          res.MaxFlow,
				"augmentations": res.Augmentations,
			}).Debug("flow: edmonds-karp cancelled")

			return res, nil
		default:
		}

		// 4) Shortest augmenting path via BFS over the residual view.
		search, err := bfs.BFS(view, source)
		if err != nil {
			res.Status = core.StatusFailed

			return res, fmt.Errorf("%w: %v", ErrIncidence, err)
		}
		res.Colors, res.Predecessors = search.Colors, search.ParentEdge

		// 5) Sink left white: the residual view admits no further path.
		if search.Colors[sink] == core.White {
			break
		}

		// 6) Bottleneck along the predecessor chain.
		delta, hops := math.Inf(1), 0
		for v := sink; v != source; v = search.Parent[v] {
			if r := res.Residual[search.ParentEdge[v]]; r < delta {
				delta = r
			}
			hops++
		}
		if delta <= options.Epsilon {
			break
		}

		// 7) Commit: debit every path edge, credit its paired reverse.
		for v := sink; v != source; v = search.Parent[v] {
			eid := search.ParentEdge[v]
			res.Residual[eid] -= delta
			if rev, ok := options.Reversed[eid]; ok {
				res.Residual[rev] += delta
			} else {
				options.Logger.WithFields(logrus.Fields{"edge": eid}).
					Debug("flow: no reverse pairing, credit skipped")
			}
		}
		res.Augmentations++
		options.Logger.WithFields(logrus.Fields{
			"delta":         delta,
			"hops":          hops,
			"augmentations": res.Augmentations,
		}).Debug("flow: path augmented")
	}

	// 8) Settle MaxFlow from the source's out-edges.
	if err = settle(g, res); err != nil {
		return res, err
	}
	options.Logger.WithFields(logrus.Fields{
		"source":        source,
		"sink":          sink,
		"flow":          res.MaxFlow,
		"augmentations": res.Augmentations,
	}).Debug("flow: edmonds-karp completed")

	return res, nil
}
