package paths

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/pqueue"
)

// Dijkstra computes best distances from source to every reachable vertex
// under the configured Relaxer, processing vertices in priority order with
// a keyed-update queue.
//
// All vertices are enqueued up front at InitialDistance; each relaxation
// that improves a vertex re-keys it in place, and dequeuing a vertex
// settles it permanently. With the default MinPlus relaxer this is the
// classic shortest-path algorithm; the non-negative weight precondition is
// the caller's responsibility and is not checked. Equal priorities break
// ties by ascending vertex ID, so the settle order is deterministic.
//
// Cancellation is not an error: the context is polled once per dequeue,
// and a cancelled run returns the distances settled so far with
// StatusCancelled and a nil error.
//
// Complexity: O((V + E) log V) time, O(V) space.
func Dijkstra(g Graph, source string, opts ...Option) (*Result, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
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

	// 3) Enqueue everything, keyed by live distance with ID tie-break.
	q := pqueue.New(func(a, b string) bool {
		da, db := res.Dist[a], res.Dist[b]
		if da != db {
			return rx.Compare(da, db)
		}

		return a < b
	})
	for _, id := range vertices {
		_ = q.Enqueue(id)
	}

	// 4) Settle vertices best-first, relaxing out-edges as they commit.
	settled := make(map[string]struct{}, len(vertices))
	for q.Len() > 0 {
		// Poll cancellation once per dequeue.
		select {
		case <-options.Ctx.Done():
			res.Status = core.StatusCancelled
			options.Logger.WithFields(logrus.Fields{
				"source":  source,
				"settled": len(settled),
			}).Debug("dijkstra cancelled")

			return res, nil
		default:
		}

		u, _ := q.Dequeue()
		du := res.Dist[u]
		if du == rx.InitialDistance() {
			break // only unreachable vertices remain
		}
		if rx.Compare(options.MaxDistance, du) {
			break // everything left lies beyond the cap
		}
		settled[u] = struct{}{}

		edges, err := g.OutEdges(u)
		if err != nil {
			res.Status = core.StatusFailed

			return res, fmt.Errorf("%w: vertex %q: %v", ErrIncidence, u, err)
		}
		for _, e := range edges {
			if !options.Filter(e) {
				continue
			}
			if _, done := settled[e.To]; done {
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
			q.Update(e.To)
		}
	}

	options.Logger.WithFields(logrus.Fields{
		"source":  source,
		"settled": len(settled),
	}).Debug("dijkstra finished")

	return res, nil
}
