// Package bfs: options, errors and result types for breadth-first search.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/plexus-graph/plexus/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrIncidence wraps a failed out-edge lookup mid-traversal.
	ErrIncidence = errors.New("bfs: out-edge lookup failed")
)

// Graph is the capability set BFS consumes.
type Graph interface {
	core.VertexSet
	core.Incidence
}

// Queue is the injectable frontier container. BFS pushes each discovered
// vertex exactly once; Pop decides the expansion order (FIFO gives classic
// breadth-first layers, a priority queue gives best-first behavior).
// An injected queue must start empty.
type Queue interface {
	Push(id string)
	Pop() (id string, ok bool)
	Len() int
}

// fifoQueue is the default frontier: a plain FIFO slice queue.
type fifoQueue struct{ items []string }

func (q *fifoQueue) Push(id string) { q.items = append(q.items, id) }

func (q *fifoQueue) Pop() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	id := q.items[0]
	q.items = q.items[1:]

	return id, true
}

func (q *fifoQueue) Len() int { return len(q.items) }

// Option configures BFS behavior via functional arguments.
// An invalid Option (negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and event callbacks for one BFS run.
// Callbacks observe the traversal; they receive copies and cannot mutate
// walker state. To stop a run early, cancel the supplied context.
type Options struct {
	// Ctx allows cancellation. Cancellation is polled once per frontier
	// pop; it yields a partial result with StatusCancelled, not an error.
	Ctx context.Context

	// Frontier overrides the default FIFO queue.
	Frontier Queue

	// OnDiscover fires when a vertex turns gray (first time seen),
	// with its depth in edges from the start.
	OnDiscover func(id string, depth int)

	// OnExamine fires for every out-edge the walker looks at, before
	// filtering.
	OnExamine func(e core.Edge)

	// OnFinish fires when a vertex turns black (all out-edges examined).
	OnFinish func(id string)

	// FilterEdge skips an edge when it returns false.
	FilterEdge func(e core.Edge) bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, FIFO frontier,
// no depth limit, no filtering and no-op callbacks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Frontier:   &fifoQueue{},
		OnDiscover: func(string, int) {},
		OnExamine:  func(core.Edge) {},
		OnFinish:   func(string) {},
		FilterEdge: func(core.Edge) bool { return true },
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

// WithQueue injects a custom frontier. The queue must be empty.
func WithQueue(q Queue) Option {
	return func(o *Options) {
		if q != nil {
			o.Frontier = q
		}
	}
}

// WithOnDiscover registers the vertex-discovered callback.
func WithOnDiscover(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnExamine registers the edge-examined callback.
func WithOnExamine(fn func(e core.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExamine = fn
		}
	}
}

// WithOnFinish registers the vertex-finished callback.
func WithOnFinish(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}

// WithFilterEdge skips edges for which fn returns false.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal.
//
// Order lists vertices in visit (pop) sequence. Depth, Parent and
// ParentEdge are keyed by vertex ID; the start vertex has no Parent entry.
// Colors holds the final mark of every touched vertex; vertices the run
// never reached are simply absent, and the zero value reads as White.
// Status tells a completed run apart from a cancelled one.
type Result struct {
	Order      []string
	Depth      map[string]int
	Parent     map[string]string
	ParentEdge map[string]string // vertex → ID of the edge that discovered it
	Colors     map[string]core.Color
	Status     core.ComputeStatus
}

// PathTo reconstructs the vertex path from the start to dest by walking
// Parent backward. Returns an error if dest was never discovered.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
