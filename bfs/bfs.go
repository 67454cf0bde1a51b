// Package bfs provides breadth-first search over the core capability
// contract, producing visit order, hop depths, predecessor links and color
// marks, with observer callbacks and an injectable frontier.
package bfs

import (
	"fmt"

	"github.com/plexus-graph/plexus/core"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	graph Graph
	opts  Options
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input and
// ErrOptionViolation for bad options. Context cancellation is not an
// error: the partial result carries StatusCancelled.
// Complexity: O(V + E) plus frontier costs.
func BFS(g Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:      make([]string, 0, n),
			Depth:      make(map[string]int, n),
			Parent:     make(map[string]string, n),
			ParentEdge: make(map[string]string, n),
			Colors:     make(map[string]core.Color, n),
		},
	}
	w.discover(start, 0, core.Edge{})

	return w.res, w.loop()
}

// discover marks id gray, records depth and predecessor links, fires
// OnDiscover and pushes id onto the frontier. The zero via edge means
// "root, no predecessor".
func (w *walker) discover(id string, depth int, via core.Edge) {
	w.res.Colors[id] = core.Gray
	w.res.Depth[id] = depth
	if via.ID != "" {
		w.res.Parent[id] = via.From
		w.res.ParentEdge[id] = via.ID
	}
	w.opts.OnDiscover(id, depth)
	w.opts.Frontier.Push(id)
}

// loop drains the frontier. Cancellation is polled exactly once per
// iteration, before the pop, so an in-progress expansion always completes.
func (w *walker) loop() error {
	for w.opts.Frontier.Len() > 0 {
		select {
		case <-w.opts.Ctx.Done():
			w.res.Status = core.StatusCancelled
			return nil
		default:
		}

		id, ok := w.opts.Frontier.Pop()
		if !ok {
			break
		}
		w.res.Order = append(w.res.Order, id)
		if err := w.expand(id); err != nil {
			w.res.Status = core.StatusFailed
			return err
		}
		w.res.Colors[id] = core.Black
		w.opts.OnFinish(id)
	}
	w.res.Status = core.StatusCompleted

	return nil
}

// expand examines every out-edge of id and discovers white targets.
func (w *walker) expand(id string) error {
	edges, err := w.graph.OutEdges(id)
	if err != nil {
		return fmt.Errorf("%w: vertex %q: %v", ErrIncidence, id, err)
	}
	depth := w.res.Depth[id]
	for _, e := range edges {
		w.opts.OnExamine(e)
		if !w.opts.FilterEdge(e) {
			continue
		}
		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		if w.res.Colors[e.To] == core.White {
			w.discover(e.To, depth+1, e)
		}
	}

	return nil
}
