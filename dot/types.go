package dot

import (
	"errors"

	"github.com/plexus-graph/plexus/core"
)

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("dot: graph is nil")

	// ErrWriterNil is returned when Render receives a nil writer.
	ErrWriterNil = errors.New("dot: writer is nil")

	// ErrOptionViolation is returned when a functional option receives
	// an invalid value.
	ErrOptionViolation = errors.New("dot: invalid option")
)

// Graph is the capability surface the renderer reads: vertex and edge
// snapshots plus orientation. Rendering never mutates anything.
type Graph interface {
	core.VertexSet
	core.EdgeSet
	Directed() bool
}

// rankDirs enumerates the layout directions graphviz accepts.
var rankDirs = map[string]bool{"LR": true, "RL": true, "TB": true, "BT": true}

// Options configures rendering. Construct with DefaultOptions and
// mutate via With* functional options.
type Options struct {
	// Name is the graph identifier emitted after digraph/graph.
	// Empty renders an anonymous graph.
	Name string

	// RankDir emits a rankdir attribute when non-empty. One of
	// LR, RL, TB, BT.
	RankDir string

	// VertexAttrs supplies extra attributes per vertex. Attribute
	// keys must be plain DOT identifiers; values are quoted and
	// escaped by the renderer. Nil maps are fine.
	VertexAttrs func(id string) map[string]string

	// EdgeAttrs supplies extra attributes per edge, same rules as
	// VertexAttrs.
	EdgeAttrs func(e core.Edge) map[string]string

	// Highlight marks edge IDs to overlay in red with a thick pen,
	// on top of whatever EdgeAttrs produced. Handy for rendering an
	// algorithm result (spanning tree, augmenting path) over its
	// input graph.
	Highlight map[string]struct{}

	err error
}

// DefaultOptions returns an anonymous graph with no extra attributes.
func DefaultOptions() Options {
	return Options{
		VertexAttrs: func(string) map[string]string { return nil },
		EdgeAttrs:   func(core.Edge) map[string]string { return nil },
	}
}

// Option mutates Options.
type Option func(*Options)

// WithName sets the graph identifier.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithRankDir sets the layout direction: LR, RL, TB or BT.
func WithRankDir(dir string) Option {
	return func(o *Options) {
		if !rankDirs[dir] {
			o.err = ErrOptionViolation

			return
		}
		o.RankDir = dir
	}
}

// WithVertexAttrs installs a per-vertex attribute source.
func WithVertexAttrs(fn func(id string) map[string]string) Option {
	return func(o *Options) {
		if fn != nil {
			o.VertexAttrs = fn
		}
	}
}

// WithEdgeAttrs installs a per-edge attribute source.
func WithEdgeAttrs(fn func(e core.Edge) map[string]string) Option {
	return func(o *Options) {
		if fn != nil {
			o.EdgeAttrs = fn
		}
	}
}

// WithHighlightEdges marks the given edge IDs for the highlight
// overlay. Repeated options accumulate.
func WithHighlightEdges(ids ...string) Option {
	return func(o *Options) {
		if o.Highlight == nil {
			o.Highlight = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			o.Highlight[id] = struct{}{}
		}
	}
}
