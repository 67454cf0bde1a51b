package dfs

import (
	"fmt"

	"github.com/plexus-graph/plexus/core"
)

// DFS performs a depth-first traversal of g starting at start.
//
// The walker discovers a vertex (gray, pre-order), explores its out-edges
// in ascending edge-ID order, and finishes it (black, post-order) once the
// edges are exhausted. An edge whose target is gray closes a cycle and is
// reported through OnBackEdge and Result.BackEdges; the mirror of the tree
// edge on undirected graphs is not reported. With WithFullTraversal the
// walk restarts from every undiscovered vertex in ascending ID order and
// the start argument is ignored.
//
// Cancellation is not an error: when the context supplied via WithContext
// is cancelled, DFS stops before the next frontier step and returns the
// partial Result with Status set to core.StatusCancelled and a nil error.
//
// Errors:
//   - ErrGraphNil if g is nil
//   - ErrOptionViolation if an option is invalid
//   - ErrStartVertexNotFound if start is absent (single-source mode)
//   - ErrIncidence (with StatusFailed) if an out-edge lookup fails mid-run
//
// Complexity: O(V + E) time, O(V) auxiliary space.
func DFS(g Graph, start string, opts ...Option) (*Result, error) {
	// 1) Validate the graph handle.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Assemble options and surface option errors.
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		return nil, options.err
	}

	// 3) Validate the start vertex unless traversing the whole forest.
	if !options.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph:   g,
		opts:    &options,
		cursors: make(map[string]*edgeCursor),
		res: &Result{
			Depth:      make(map[string]int),
			Parent:     make(map[string]string),
			ParentEdge: make(map[string]string),
			Colors:     make(map[string]core.Color),
		},
	}

	// 4) Run one tree, or one tree per component.
	if options.FullTraversal {
		for _, id := range g.Vertices() {
			if w.res.Colors[id] != core.White {
				continue
			}
			if done, err := w.run(id); done || err != nil {
				return w.res, err
			}
		}

		return w.res, nil
	}
	_, err := w.run(start)

	return w.res, err
}

// HasCycle reports whether g contains at least one cycle, using a full
// depth-first traversal and counting back edges. Self-loops and parallel
// edges count as cycles; a single undirected edge does not.
func HasCycle(g Graph, opts ...Option) (bool, error) {
	res, err := DFS(g, "", append(opts, WithFullTraversal())...)
	if err != nil {
		return false, err
	}

	return len(res.BackEdges) > 0, nil
}

// edgeCursor tracks how far a gray vertex has advanced through its
// out-edges.
type edgeCursor struct {
	edges []core.Edge
	next  int
}

// walker carries the shared state of one DFS run.
type walker struct {
	graph   Graph
	opts    *Options
	cursors map[string]*edgeCursor
	res     *Result
}

// run grows one DFS tree rooted at root. It returns done=true when the
// run must stop early (cancellation), so a forest traversal can bail out.
func (w *walker) run(root string) (done bool, err error) {
	if err = w.discover(root, 0, core.Edge{}); err != nil {
		return false, err
	}

	frontier := w.opts.Frontier
	for frontier.Len() > 0 {
		// Poll cancellation once per frontier step; the current step
		// always completes before the walker observes it.
		select {
		case <-w.opts.Ctx.Done():
			w.res.Status = core.StatusCancelled

			return true, nil
		default:
		}

		id, _ := frontier.Peek()
		e, ok := w.advance(id)
		if !ok {
			// Out-edges exhausted: finish the vertex.
			frontier.Pop()
			w.res.Colors[id] = core.Black
			w.res.PostOrder = append(w.res.PostOrder, id)
			w.opts.OnFinish(id)

			continue
		}

		w.opts.OnExamine(e)
		if !w.opts.FilterEdge(e) {
			continue
		}

		switch w.res.Colors[e.To] {
		case core.White:
			if w.opts.MaxDepth > 0 && w.res.Depth[id]+1 > w.opts.MaxDepth {
				continue
			}
			if err = w.discover(e.To, w.res.Depth[id]+1, e); err != nil {
				return false, err
			}
		case core.Gray:
			// Gray target closes a cycle, unless the edge is the
			// undirected mirror of the tree edge that discovered id.
			if e.ID == w.res.ParentEdge[id] && e.To == w.res.Parent[id] {
				continue
			}
			w.res.BackEdges = append(w.res.BackEdges, e)
			w.opts.OnBackEdge(e)
		}
	}

	return false, nil
}

// discover marks id gray, records its tree position, loads its out-edge
// cursor and pushes it onto the frontier. A zero via edge marks a root.
func (w *walker) discover(id string, depth int, via core.Edge) error {
	edges, err := w.graph.OutEdges(id)
	if err != nil {
		w.res.Status = core.StatusFailed

		return fmt.Errorf("%w: vertex %q: %v", ErrIncidence, id, err)
	}

	w.res.Colors[id] = core.Gray
	w.res.Depth[id] = depth
	if via.ID != "" {
		w.res.Parent[id] = via.From
		w.res.ParentEdge[id] = via.ID
	}
	w.res.PreOrder = append(w.res.PreOrder, id)
	w.cursors[id] = &edgeCursor{edges: edges}
	w.opts.OnDiscover(id, depth)
	w.opts.Frontier.Push(id)

	return nil
}

// advance returns the next unexamined out-edge of id, or ok=false when
// the cursor is exhausted.
func (w *walker) advance(id string) (core.Edge, bool) {
	c := w.cursors[id]
	if c == nil || c.next >= len(c.edges) {
		return core.Edge{}, false
	}
	e := c.edges[c.next]
	c.next++

	return e, true
}
