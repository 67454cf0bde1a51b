// Package toposort: options, errors and result types for the queue-based
// topological sorter.
package toposort

import (
	"context"
	"errors"
	"fmt"

	"github.com/plexus-graph/plexus/core"
)

// Sentinel errors for topological sorting.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrUndirectedGraph indicates the graph is not directed.
	ErrUndirectedGraph = errors.New("toposort: directed graph required")

	// ErrCyclicGraph indicates a cycle was found mid-sort. The partial
	// order accumulated before the failure is returned alongside it and
	// is not a valid topological order.
	ErrCyclicGraph = errors.New("toposort: graph contains a cycle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("toposort: invalid option supplied")

	// ErrIncidence wraps a failed out-edge lookup during degree counting.
	ErrIncidence = errors.New("toposort: out-edge lookup failed")
)

// Graph is the capability set the sorter consumes.
type Graph interface {
	core.VertexSet
	core.Incidence
	Directed() bool
}

// Direction selects which way edges are walked.
type Direction int

const (
	// Forward sorts sources first: every edge points from an earlier to
	// a later position in the order.
	Forward Direction = iota

	// Backward sorts sinks first: every edge points from a later to an
	// earlier position, yielding a reverse topological order.
	Backward
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Option configures the sorter via functional arguments.
type Option func(*Options)

// Options holds the parameters of one sort run.
type Options struct {
	// Ctx allows cancellation. Polled once per dequeue; a cancelled run
	// returns its partial order with StatusCancelled and a nil error.
	Ctx context.Context

	// Dir selects Forward (default) or Backward sorting.
	Dir Direction

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context and Forward
// direction.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Dir: Forward}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects the sort direction.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if d != Forward && d != Backward {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, int(d))
			return
		}
		o.Dir = d
	}
}

// Result captures the outcome of one sort run.
type Result struct {
	// Order lists vertices in topological sequence. After a cycle
	// failure or cancellation it holds the partial prefix emitted so
	// far.
	Order []string

	// Status tells a completed run apart from a cancelled or failed one.
	Status core.ComputeStatus
}
