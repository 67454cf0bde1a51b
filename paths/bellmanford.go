package paths

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/plexus-graph/plexus/core"
)

// BellmanFord computes best distances from source to every reachable
// vertex, tolerating negative edge weights.
//
// The engine sweeps every vertex's out-edges up to V-1 times, stopping
// early once a full pass improves nothing. A final verification pass that
// still finds an improvement proves a negative-weight cycle reachable from
// the source: BellmanFord then reports ErrNegativeCycle with StatusFailed,
// and the accompanying distances are not meaningful.
//
// Cancellation is not an error: the context is polled once per pass, and
// a cancelled run returns the distances committed so far with
// StatusCancelled and a nil error.
//
// Complexity: O(V * E) time, O(V) space.
func BellmanFord(g Graph, source string, opts ...Option) (*Result, error) {
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

	// 3) Relax every out-edge once per pass, V-1 passes or until a pass
	//    changes nothing.
	passes := 0
	for i := 1; i < len(vertices); i++ {
		// Poll cancellation once per pass.
		select {
		case <-options.Ctx.Done():
			res.Status = core.StatusCancelled
			options.Logger.WithFields(logrus.Fields{
				"source": source,
				"passes": passes,
			}).Debug("bellman-ford cancelled")

			return res, nil
		default:
		}

		passes++
		changed, err := relaxPass(g, vertices, res, &options, true)
		if err != nil {
			return res, err
		}
		if !changed {
			break
		}
	}

	// 4) One verification pass: any remaining improvement is a negative
	//    cycle.
	changed, err := relaxPass(g, vertices, res, &options, false)
	if err != nil {
		return res, err
	}
	if changed {
		res.Status = core.StatusFailed
		options.Logger.WithField("source", source).Warn("bellman-ford found a negative cycle")

		return res, ErrNegativeCycle
	}

	options.Logger.WithFields(logrus.Fields{
		"source": source,
		"passes": passes,
	}).Debug("bellman-ford finished")

	return res, nil
}

// relaxPass sweeps every vertex's out-edges once. With commit it applies
// improvements; without it only reports whether any improvement exists,
// leaving res untouched.
func relaxPass(g Graph, vertices []string, res *Result, options *Options, commit bool) (bool, error) {
	rx := options.Relaxer
	changed := false
	for _, u := range vertices {
		du := res.Dist[u]
		if du == rx.InitialDistance() {
			continue
		}
		edges, err := g.OutEdges(u)
		if err != nil {
			res.Status = core.StatusFailed

			return false, fmt.Errorf("%w: vertex %q: %v", ErrIncidence, u, err)
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
			changed = true
			if !commit {
				return true, nil
			}
			res.Dist[e.To] = cand
			res.Parent[e.To] = u
			res.ParentEdge[e.To] = e.ID
		}
	}

	return changed, nil
}
