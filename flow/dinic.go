package flow

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/plexus-graph/plexus/bfs"
	"github.com/plexus-graph/plexus/core"
)

// Dinic computes the maximum flow from source to sink on a directed
// graph.
//
// It shares the residual model of EdmondsKarp (edge-ID keyed residual
// map, zero-copy residual view, reverse pairing via WithReversedEdges)
// but augments phase by phase: each breadth-first search stratifies
// the residual view into levels, and a cursor-guided depth-first pass
// then saturates the level graph with a blocking flow before the
// levels are rebuilt. WithLevelRebuildInterval caps the augmentations
// spent on one level graph.
//
// Cancellation is polled once before each level rebuild, with the same
// partial-result contract as EdmondsKarp.
//
// Complexity: O(V^2 * E) in the worst case; memory O(V + E).
func Dinic(g Graph, source, sink string, opts ...Option) (*Result, error) {
	// 1) Fail-fast validation and residual seeding.
	options, res, err := prepare(g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	view := core.NewFilteredView(g, func(e core.Edge) bool {
		return res.Residual[e.ID] > options.Epsilon
	})

	for {
		// 2) Poll for cancellation between phases.
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
			}).Debug("flow: dinic cancelled")

			return res, nil
		default:
		}

		// 3) Stratify the residual view; BFS depth is the level.
		levels, err := bfs.BFS(view, source)
		if err != nil {
			res.Status = core.StatusFailed

			return res, fmt.Errorf("%w: %v", ErrIncidence, err)
		}
		res.Colors, res.Predecessors = levels.Colors, levels.ParentEdge
		if levels.Colors[sink] == core.White {
			break
		}

		// 4) Level adjacency: only edges descending exactly one level
		//    participate in this phase's blocking flow.
		run := &blockingFlow{
			res:      res,
			reversed: options.Reversed,
			logger:   options.Logger,
			eps:      options.Epsilon,
			sink:     sink,
			next:     make(map[string][]core.Edge, len(levels.Order)),
			cursor:   make(map[string]int, len(levels.Order)),
		}
		for _, u := range levels.Order {
			out, err := view.OutEdges(u)
			if err != nil {
				res.Status = core.StatusFailed

				return res, fmt.Errorf("%w: %v", ErrIncidence, err)
			}
			du := levels.Depth[u]
			for _, e := range out {
				if dv, ok := levels.Depth[e.To]; ok && dv == du+1 {
					run.next[u] = append(run.next[u], e)
				}
			}
		}

		// 5) Saturate the level graph.
		applied := 0
		for {
			pushed := run.push(source, math.Inf(1))
			if pushed <= options.Epsilon {
				break
			}
			res.Augmentations++
			applied++
			options.Logger.WithFields(logrus.Fields{
				"delta":         pushed,
				"augmentations": res.Augmentations,
			}).Debug("flow: path augmented")
			if options.LevelRebuildInterval > 0 && applied >= options.LevelRebuildInterval {
				break
			}
		}
	}

	// 6) Settle MaxFlow from the source's out-edges.
	if err = settle(g, res); err != nil {
		return res, err
	}
	options.Logger.WithFields(logrus.Fields{
		"source":        source,
		"sink":          sink,
		"flow":          res.MaxFlow,
		"augmentations": res.Augmentations,
	}).Debug("flow: dinic completed")

	return res, nil
}

// blockingFlow carries one phase's level graph and per-vertex edge
// cursors. A cursor advances past an edge only when the edge is
// exhausted or its subtree is blocked, so each phase touches every
// level edge a bounded number of times.
type blockingFlow struct {
	res      *Result
	reversed map[string]string
	logger   logrus.FieldLogger
	eps      float64
	sink     string
	next     map[string][]core.Edge
	cursor   map[string]int
}

// push routes up to available units from u toward the sink and returns
// the amount that arrived.
func (b *blockingFlow) push(u string, available float64) float64 {
	if u == b.sink {
		return available
	}
	for b.cursor[u] < len(b.next[u]) {
		e := b.next[u][b.cursor[u]]
		if r := b.res.Residual[e.ID]; r > b.eps {
			send := available
			if r < send {
				send = r
			}
			if pushed := b.push(e.To, send); pushed > b.eps {
				b.res.Residual[e.ID] -= pushed
				if rev, ok := b.reversed[e.ID]; ok {
					b.res.Residual[rev] += pushed
				} else {
					b.logger.WithFields(logrus.Fields{"edge": e.ID}).
						Debug("flow: no reverse pairing, credit skipped")
				}

				return pushed
			}
		}
		b.cursor[u]++
	}

	return 0
}
