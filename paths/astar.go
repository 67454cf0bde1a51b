package paths

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/plexus-graph/plexus/core"
	"github.com/plexus-graph/plexus/pqueue"
)

// AStar computes a best path from source to target, ordering the frontier
// by tentative distance plus the heuristic estimate supplied through
// WithHeuristic. With the default zero estimate it behaves exactly like
// Dijkstra with early termination at the target.
//
// The run stops the moment target settles; distances of vertices not yet
// settled at that point are tentative. Optimality requires an admissible,
// non-negative heuristic and non-negative weights; neither is checked.
// An unreachable target ends the run with StatusCompleted and
// Reached(target) == false.
//
// Cancellation is not an error: the context is polled once per dequeue,
// and a cancelled run returns its partial result with StatusCancelled and
// a nil error.
//
// Complexity: O((V + E) log V) time, O(V) space.
func AStar(g Graph, source, target string, opts ...Option) (*Result, error) {
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
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}

	// 2) Start every vertex at InitialDistance, the source at zero.
	rx := options.Relaxer
	vertices := g.Vertices()
	res := newResult(rx, source, len(vertices))
	for _, id := range vertices {
		res.Dist[id] = rx.InitialDistance()
	}
	res.Dist[source] = 0

	// 3) The frontier orders by distance folded with the cached estimate.
	estimates := make(map[string]int64, len(vertices))
	estimate := func(id string) int64 {
		if v, ok := estimates[id]; ok {
			return v
		}
		v := options.Estimate(id)
		estimates[id] = v

		return v
	}
	fscore := func(id string) int64 { return rx.Combine(res.Dist[id], estimate(id)) }
	q := pqueue.New(func(a, b string) bool {
		fa, fb := fscore(a), fscore(b)
		if fa != fb {
			return rx.Compare(fa, fb)
		}

		return a < b
	})
	for _, id := range vertices {
		_ = q.Enqueue(id)
	}

	// 4) Settle vertices best-first until the target commits.
	settled := make(map[string]struct{}, len(vertices))
	for q.Len() > 0 {
		// Poll cancellation once per dequeue.
		select {
		case <-options.Ctx.Done():
			res.Status = core.StatusCancelled
			options.Logger.WithFields(logrus.Fields{
				"source":  source,
				"target":  target,
				"settled": len(settled),
			}).Debug("a-star cancelled")

			return res, nil
		default:
		}

		u, _ := q.Dequeue()
		if res.Dist[u] == rx.InitialDistance() {
			break // only unreachable vertices remain
		}
		if u == target {
			options.Logger.WithFields(logrus.Fields{
				"source":   source,
				"target":   target,
				"distance": res.Dist[u],
				"settled":  len(settled),
			}).Debug("a-star reached target")

			return res, nil
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
			cand := rx.Combine(res.Dist[u], options.Weight(e))
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
		"source": source,
		"target": target,
	}).Debug("a-star exhausted frontier without reaching target")

	return res, nil
}
