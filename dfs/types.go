// Package dfs: options, errors and result types for depth-first search.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/plexus-graph/plexus/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex ID does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrIncidence wraps a failed out-edge lookup mid-traversal.
	ErrIncidence = errors.New("dfs: out-edge lookup failed")

	// ErrCycleDetected indicates TopologicalOrder found a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph indicates TopologicalOrder was given an
	// undirected graph.
	ErrUndirectedGraph = errors.New("dfs: directed graph required")
)

// Graph is the capability set DFS consumes.
type Graph interface {
	core.VertexSet
	core.Incidence
}

// DirectedGraph adds the directedness flag TopologicalOrder requires.
type DirectedGraph interface {
	Graph
	Directed() bool
}

// Stack is the injectable frontier container. The walker pushes each
// discovered vertex exactly once, peeks the top while expanding its edges,
// and pops it when its out-edges are exhausted. An injected stack must
// start empty.
type Stack interface {
	Push(id string)
	Pop() (id string, ok bool)
	Peek() (id string, ok bool)
	Len() int
}

// lifoStack is the default frontier: a plain LIFO slice stack.
type lifoStack struct{ items []string }

func (s *lifoStack) Push(id string) { s.items = append(s.items, id) }

func (s *lifoStack) Pop() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	id := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return id, true
}

func (s *lifoStack) Peek() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}

	return s.items[len(s.items)-1], true
}

func (s *lifoStack) Len() int { return len(s.items) }

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and event callbacks for one DFS run.
// Callbacks observe the traversal and receive copies; to stop a run early,
// cancel the supplied context.
type Options struct {
	// Ctx allows cancellation. Polled once per frontier iteration;
	// a cancelled run returns its partial result with StatusCancelled.
	Ctx context.Context

	// Frontier overrides the default LIFO stack.
	Frontier Stack

	// OnDiscover fires when a vertex turns gray (pre-order), with its
	// depth in tree edges from its root.
	OnDiscover func(id string, depth int)

	// OnExamine fires for every out-edge the walker looks at, before
	// filtering.
	OnExamine func(e core.Edge)

	// OnBackEdge fires when an examined edge targets a gray vertex,
	// the witness of a cycle. The tree-edge mirror seen on undirected
	// graphs is excluded.
	OnBackEdge func(e core.Edge)

	// OnFinish fires when a vertex turns black (post-order).
	OnFinish func(id string)

	// FilterEdge skips an edge when it returns false.
	FilterEdge func(e core.Edge) bool

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 disables
	// the limit.
	MaxDepth int

	// FullTraversal restarts the walk from every still-white vertex in
	// ascending ID order, covering disconnected components. The start
	// argument is ignored in this mode.
	FullTraversal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, LIFO frontier,
// no depth limit, no filtering, single-source mode and no-op callbacks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Frontier:   &lifoStack{},
		OnDiscover: func(string, int) {},
		OnExamine:  func(core.Edge) {},
		OnBackEdge: func(core.Edge) {},
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

// WithStack injects a custom frontier. The stack must be empty.
func WithStack(s Stack) Option {
	return func(o *Options) {
		if s != nil {
			o.Frontier = s
		}
	}
}

// WithOnDiscover registers the vertex-discovered (pre-order) callback.
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

// WithOnBackEdge registers the back-edge-found callback.
func WithOnBackEdge(fn func(e core.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBackEdge = fn
		}
	}
}

// WithOnFinish registers the vertex-finished (post-order) callback.
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

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// PreOrder records vertices in discovery sequence.
	PreOrder []string

	// PostOrder records vertices in finish sequence.
	PostOrder []string

	// Depth maps each vertex to its tree depth from its root.
	Depth map[string]int

	// Parent and ParentEdge record the DFS tree; roots appear in neither.
	Parent     map[string]string
	ParentEdge map[string]string

	// Colors holds the final mark of every touched vertex; absent
	// entries read as White.
	Colors map[string]core.Color

	// BackEdges lists every edge that closed a cycle during the walk.
	BackEdges []core.Edge

	// Status tells a completed run apart from a cancelled one.
	Status core.ComputeStatus
}
