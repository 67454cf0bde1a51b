// Package paths: options, errors and result types shared by the
// shortest-path engines.
package paths

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/plexus-graph/plexus/core"
)

// Sentinel errors for the shortest-path family.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrSourceNotFound indicates the source vertex ID does not exist.
	ErrSourceNotFound = errors.New("paths: source vertex not found")

	// ErrTargetNotFound indicates the target vertex ID does not exist.
	ErrTargetNotFound = errors.New("paths: target vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")

	// ErrIncidence wraps a failed out-edge lookup mid-computation.
	ErrIncidence = errors.New("paths: out-edge lookup failed")

	// ErrNegativeCycle indicates BellmanFord found a negative-weight
	// cycle reachable from the source. Distances in the accompanying
	// Result are not meaningful.
	ErrNegativeCycle = errors.New("paths: negative-weight cycle reachable from source")

	// ErrCyclicInput indicates DAG was given a graph that is not acyclic.
	ErrCyclicInput = errors.New("paths: cyclic input to topological pass")

	// ErrUndirectedGraph indicates DAG was given an undirected graph.
	ErrUndirectedGraph = errors.New("paths: directed graph required")
)

// Graph is the capability set Dijkstra, BellmanFord and AStar consume.
type Graph interface {
	core.VertexSet
	core.Incidence
}

// DirectedGraph adds the directedness flag the DAG engine needs for its
// topological pass.
type DirectedGraph interface {
	Graph
	Directed() bool
}

// WeightFunc maps an edge to the weight the relaxer folds in. The default
// reads Edge.Weight.
type WeightFunc func(e core.Edge) int64

// Heuristic estimates the remaining distance from a vertex to the A*
// target. It must never overestimate (admissibility) and must be
// non-negative for the optimality guarantee to hold; neither property is
// checked.
type Heuristic func(id string) int64

// discard swallows instrumentation unless a caller opts in via WithLogger.
var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// Option configures a shortest-path run via functional arguments.
type Option func(*Options)

// Options holds the parameters shared by the engines. Zero values come
// from DefaultOptions; engines ignore fields they have no use for.
type Options struct {
	// Ctx allows cancellation. Polled once per outer iteration; a
	// cancelled run returns its partial result with StatusCancelled and
	// a nil error.
	Ctx context.Context

	// Relaxer selects the distance semiring. Default MinPlus.
	Relaxer Relaxer

	// Weight extracts the weight folded per edge. Default Edge.Weight.
	Weight WeightFunc

	// Filter skips an edge when it returns false.
	Filter func(e core.Edge) bool

	// MaxDistance prunes any candidate distance it compares better
	// than. Default Unreachable, meaning no pruning.
	MaxDistance int64

	// Estimate is the A* heuristic. Other engines ignore it.
	Estimate Heuristic

	// Logger receives per-run debug instrumentation. Default discards.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, MinPlus
// relaxation, nominal edge weights, no filtering, no distance cap, a zero
// heuristic and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Relaxer:     MinPlus{},
		Weight:      func(e core.Edge) int64 { return e.Weight },
		Filter:      func(core.Edge) bool { return true },
		MaxDistance: Unreachable,
		Estimate:    func(string) int64 { return 0 },
		Logger:      discard,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRelaxer swaps the distance semiring.
func WithRelaxer(r Relaxer) Option {
	return func(o *Options) {
		if r != nil {
			o.Relaxer = r
		}
	}
}

// WithWeightFunc overrides how edge weights are read, letting callers
// derive weights from external tables instead of Edge.Weight.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithFilterEdge skips edges for which fn returns false.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithMaxDistance prunes exploration beyond d. Negative caps are
// rejected with ErrOptionViolation.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithHeuristic sets the A* estimate function.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Estimate = h
		}
	}
}

// WithLogger directs per-run debug instrumentation to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result captures the outcome of one shortest-path run.
type Result struct {
	// Source echoes the vertex the run started from.
	Source string

	// Dist holds the best distance found per vertex; Unreachable (or
	// the relaxer's InitialDistance) marks vertices no path reached.
	Dist map[string]int64

	// Parent and ParentEdge record the relaxation tree; the source and
	// unreached vertices appear in neither.
	Parent     map[string]string
	ParentEdge map[string]string

	// Status tells a completed run apart from a cancelled or failed one.
	Status core.ComputeStatus

	// unreached is the relaxer's InitialDistance, kept so PathTo can
	// recognize vertices no relaxation touched.
	unreached int64
}

func newResult(rx Relaxer, source string, hint int) *Result {
	return &Result{
		Source:     source,
		Dist:       make(map[string]int64, hint),
		Parent:     make(map[string]string, hint),
		ParentEdge: make(map[string]string, hint),
		unreached:  rx.InitialDistance(),
	}
}

// Reached reports whether a relaxation ever reached id.
func (r *Result) Reached(id string) bool {
	d, ok := r.Dist[id]

	return ok && d != r.unreached
}

// PathTo reconstructs the tree path from the source to id, inclusive.
// It returns nil when id was never reached, or when the parent chain is
// not a tree (possible after a negative-cycle failure).
func (r *Result) PathTo(id string) []string {
	if !r.Reached(id) {
		return nil
	}

	var rev []string
	for at, ok := id, true; ok; at, ok = r.Parent[at] {
		if len(rev) > len(r.Dist) {
			return nil
		}
		rev = append(rev, at)
	}

	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(path)-1-i] = v
	}

	return path
}
