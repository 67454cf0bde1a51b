package flow

import (
	"context"
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/plexus-graph/plexus/core"
)

// Sentinel errors returned by the flow engines and the reverse-edge
// augmentor. Wrap-aware: match with errors.Is.
var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrUndirectedGraph is returned when the input graph is undirected.
	// Residual bookkeeping is keyed by edge ID, which only names a
	// direction on a directed graph.
	ErrUndirectedGraph = errors.New("flow: graph must be directed")

	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink vertex is absent.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrIdenticalEndpoints is returned when source == sink.
	ErrIdenticalEndpoints = errors.New("flow: source and sink must differ")

	// ErrNegativeCapacity is returned when any edge reports a capacity
	// below -Epsilon.
	ErrNegativeCapacity = errors.New("flow: negative edge capacity")

	// ErrOptionViolation is returned when a functional option receives
	// an invalid value.
	ErrOptionViolation = errors.New("flow: invalid option")

	// ErrIncidence is returned when the graph's incidence lookup fails
	// mid-computation.
	ErrIncidence = errors.New("flow: incidence lookup failed")

	// ErrMissingResult is returned by MinCut when the Result is nil or
	// carries no final search coloring.
	ErrMissingResult = errors.New("flow: result has no final search state")
)

// Graph is the read-only capability surface a flow engine needs:
// vertex membership, the full edge set (to seed residual capacities),
// outgoing incidence (for the augmenting search), and orientation.
type Graph interface {
	core.VertexSet
	core.EdgeSet
	core.Incidence
	Directed() bool
}

// MutableGraph extends Graph with edge insertion and removal. Only the
// reverse-edge augmentor requires mutation; the engines themselves
// never touch the edge set.
type MutableGraph interface {
	Graph
	core.Mutable
}

// CapacityFunc maps an edge to its nominal capacity. The default reads
// the edge weight.
type CapacityFunc func(e core.Edge) float64

// Options configures a max-flow run. Construct with DefaultOptions and
// mutate via With* functional options.
type Options struct {
	// Ctx is polled once before each search phase. Cancellation stops
	// the engine between augmentations: the returned Result carries
	// the flow accumulated so far and core.StatusCancelled, with a nil
	// error. No partially applied augmentation is ever observable.
	Ctx context.Context

	// Epsilon is the tolerance for capacity comparisons. Residual
	// capacities at or below Epsilon are treated as exhausted.
	// Default: 1e-9.
	Epsilon float64

	// Capacity extracts the nominal capacity of an edge.
	// Default: float64(e.Weight).
	Capacity CapacityFunc

	// Reversed pairs each edge ID with its reverse counterpart, in
	// both directions. When an augmentation pushes delta through an
	// edge, delta is credited to its paired reverse so later searches
	// can undo the push. Edges missing from the map still have their
	// residual debited, but the credit is skipped, which can leave the
	// engine short of the true maximum. Build the map with
	// AugmentReverseEdges, or supply your own pairing.
	Reversed map[string]string

	// Logger receives debug-level progress (one entry per
	// augmentation) and a completion summary. Default: discard.
	Logger logrus.FieldLogger

	// LevelRebuildInterval bounds how many augmentations Dinic performs
	// on one level graph before rebuilding it. Zero means rebuild only
	// when the blocking flow is exhausted. Ignored by EdmondsKarp.
	LevelRebuildInterval int

	err error
}

// DefaultOptions returns the baseline configuration: background
// context, 1e-9 epsilon, weight-as-capacity, no reverse pairing, and a
// discarded logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Epsilon:  1e-9,
		Capacity: func(e core.Edge) float64 { return float64(e.Weight) },
		Logger:   discard,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithContext installs ctx for cancellation polling.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon overrides the capacity comparison tolerance.
// Non-positive values violate the option contract.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 || math.IsNaN(eps) {
			o.err = ErrOptionViolation

			return
		}
		o.Epsilon = eps
	}
}

// WithCapacity installs a custom capacity extractor.
func WithCapacity(fn CapacityFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Capacity = fn
		}
	}
}

// WithReversedEdges installs the edge pairing map produced by
// AugmentReverseEdges (or an equivalent hand-built pairing).
func WithReversedEdges(pairs map[string]string) Option {
	return func(o *Options) { o.Reversed = pairs }
}

// WithLogger installs a structured logger for progress reporting.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithLevelRebuildInterval caps the number of augmentations Dinic
// applies per level graph. Negative values violate the option
// contract.
func WithLevelRebuildInterval(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation

			return
		}
		o.LevelRebuildInterval = n
	}
}

// discard drops all log output unless the caller installs a logger.
var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// Result is the outcome of a max-flow run.
//
// After a completed run, Colors and Predecessors describe the final
// augmenting search: vertices left core.White are unreachable in the
// exhausted residual view, which is exactly the sink-side of a minimum
// cut (see MinCut).
type Result struct {
	// Source and Sink echo the endpoints of the run.
	Source, Sink string

	// MaxFlow is the total flow shipped from Source to Sink, computed
	// as the sum over Source's out-edges of nominal minus residual
	// capacity.
	MaxFlow float64

	// Residual maps each non-loop edge ID to its remaining capacity.
	Residual map[string]float64

	// Predecessors maps each vertex discovered by the final search to
	// the edge ID it was discovered through.
	Predecessors map[string]string

	// Colors is the vertex coloring left by the final search.
	Colors map[string]core.Color

	// Augmentations counts the augmenting paths applied.
	Augmentations int

	// Status reports how the run ended.
	Status core.ComputeStatus

	nominal map[string]float64
	epsilon float64
}

// FlowOn reports the net flow shipped through the edge with the given
// ID: nominal capacity minus residual capacity. Synthetic reverse
// edges report the negation of their pair's flow. Unknown IDs and
// self-loops report zero.
func (r *Result) FlowOn(edgeID string) float64 {
	n, ok := r.nominal[edgeID]
	if !ok {
		return 0
	}

	return n - r.Residual[edgeID]
}
