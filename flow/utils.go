package flow

import (
	"fmt"

	"github.com/plexus-graph/plexus/core"
)

// prepare runs the shared fail-fast phase of both engines: input and
// option validation, then residual initialization. It returns the
// resolved options and a Result whose Residual and nominal maps are
// seeded from the capacity function. Config errors surface here,
// before any engine state exists.
func prepare(g Graph, source, sink string, opts []Option) (Options, *Result, error) {
	// 1) Validate the graph and endpoints.
	if g == nil {
		return Options{}, nil, ErrGraphNil
	}
	if !g.Directed() {
		return Options{}, nil, ErrUndirectedGraph
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		return Options{}, nil, options.err
	}

	if !g.HasVertex(source) {
		return Options{}, nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if !g.HasVertex(sink) {
		return Options{}, nil, fmt.Errorf("%w: %q", ErrSinkNotFound, sink)
	}
	if source == sink {
		return Options{}, nil, fmt.Errorf("%w: %q", ErrIdenticalEndpoints, source)
	}

	// 2) Seed residual capacities from the nominal ones. Self-loops
	//    carry no source-to-sink flow and are excluded from the books,
	//    but a negative capacity is rejected wherever it appears.
	edges := g.Edges()
	res := &Result{
		Source:   source,
		Sink:     sink,
		Residual: make(map[string]float64, len(edges)),
		Status:   core.StatusCompleted,
		nominal:  make(map[string]float64, len(edges)),
		epsilon:  options.Epsilon,
	}
	for _, e := range edges {
		c := options.Capacity(e)
		if c < -options.Epsilon {
			return Options{}, nil, fmt.Errorf("%w: edge %q has capacity %v", ErrNegativeCapacity, e.ID, c)
		}
		if e.From == e.To {
			continue
		}
		res.nominal[e.ID] = c
		res.Residual[e.ID] = c
	}

	return options, res, nil
}

// settle finalizes a run: MaxFlow is derived from the source's
// out-edges as nominal minus residual capacity, so it is correct both
// on completion and after a mid-run cancellation.
func settle(g Graph, res *Result) error {
	out, err := g.OutEdges(res.Source)
	if err != nil {
		res.Status = core.StatusFailed

		return fmt.Errorf("%w: %v", ErrIncidence, err)
	}

	var total float64
	for _, e := range out {
		n, ok := res.nominal[e.ID]
		if !ok {
			continue
		}
		total += n - res.Residual[e.ID]
	}
	res.MaxFlow = total

	return nil
}

// MinCut extracts a minimum source/sink cut from a completed max-flow
// Result: the edges whose tail was reached by the final augmenting
// search and whose head was not, restricted to edges with positive
// nominal capacity. By max-flow/min-cut duality their capacities sum
// to Result.MaxFlow.
//
// The cut is only meaningful when res.Status is core.StatusCompleted;
// a cancelled run's final coloring reflects an unfinished search.
//
// Complexity: O(E log E) over the edge snapshot.
func MinCut(g Graph, res *Result) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if res == nil || res.Colors == nil {
		return nil, ErrMissingResult
	}

	var cut []core.Edge
	for _, e := range g.Edges() {
		if res.Colors[e.From] == core.White || res.Colors[e.To] != core.White {
			continue
		}
		if res.nominal[e.ID] > res.epsilon {
			cut = append(cut, e)
		}
	}

	return cut, nil
}
