// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"

	"github.com/plexus-graph/plexus/core"
)

// Path generates the path graph P_n: vertices v0..v(n-1) connected in
// a line. Directed paths orient every edge toward the higher index, so
// v0 is the unique source and v(n-1) the unique sink.
//
// Requires n >= 2.
//
// Complexity: O(n).
func Path(n int, opts ...Option) (*core.Graph, error) {
	// 1) Validate input.
	if n < 2 {
		return nil, fmt.Errorf("%w: Path needs n >= 2, got %d", ErrTooFewVertices, n)
	}
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	// 2) Emit the line.
	g := newGraph(options)
	for i := 0; i+1 < n; i++ {
		if err = connect(g, options, vertexName(i), vertexName(i+1)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle generates the cycle graph C_n: vertices v0..v(n-1) in a ring.
// Directed cycles run v0 -> v1 -> ... -> v(n-1) -> v0.
//
// Requires n >= 3.
//
// Complexity: O(n).
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	// 1) Validate input.
	if n < 3 {
		return nil, fmt.Errorf("%w: Cycle needs n >= 3, got %d", ErrTooFewVertices, n)
	}
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	// 2) Emit the ring, closing edge last.
	g := newGraph(options)
	for i := 0; i < n; i++ {
		if err = connect(g, options, vertexName(i), vertexName((i+1)%n)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Complete generates the complete graph K_n over vertices v0..v(n-1).
// Edges are emitted in ascending (i, j) order for i < j; a directed
// Complete orients every edge from the lower index to the higher, which
// makes it the transitive tournament and therefore a dense DAG.
//
// Requires n >= 1. K_1 is a single isolated vertex.
//
// Complexity: O(n^2).
func Complete(n int, opts ...Option) (*core.Graph, error) {
	// 1) Validate input.
	if n < 1 {
		return nil, fmt.Errorf("%w: Complete needs n >= 1, got %d", ErrTooFewVertices, n)
	}
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	// 2) Ensure the lone vertex exists even when no edge will.
	g := newGraph(options)
	if err = g.AddVertex(vertexName(0)); err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	// 3) Emit all pairs, lower index first.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = connect(g, options, vertexName(i), vertexName(j)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Star generates the star S_n: center v0 joined to the n-1 leaves
// v1..v(n-1). Directed stars orient every edge outward from the center.
//
// Requires n >= 2.
//
// Complexity: O(n).
func Star(n int, opts ...Option) (*core.Graph, error) {
	// 1) Validate input.
	if n < 2 {
		return nil, fmt.Errorf("%w: Star needs n >= 2, got %d", ErrTooFewVertices, n)
	}
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	// 2) Emit the spokes in leaf order.
	g := newGraph(options)
	for i := 1; i < n; i++ {
		if err = connect(g, options, vertexName(0), vertexName(i)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Grid generates a w x h four-neighbourhood grid. Vertices are named
// "x_y" with x in 0..w-1 and y in 0..h-1; edges join each cell to its
// right and down neighbours, emitted row-major. Directed grids orient
// edges rightward and downward, so "0_0" reaches every cell.
//
// Requires w >= 1 and h >= 1. A 1x1 grid is a single isolated vertex.
//
// Complexity: O(w*h).
func Grid(w, h int, opts ...Option) (*core.Graph, error) {
	// 1) Validate input.
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: Grid needs w >= 1 and h >= 1, got %dx%d", ErrTooFewVertices, w, h)
	}
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	// 2) Materialize every cell first so corner cases like 1x1 and
	//    1xN hold without special handling.
	g := newGraph(options)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if err = g.AddVertex(cellName(x, y)); err != nil {
				return nil, fmt.Errorf("builder: %w", err)
			}
		}
	}

	// 3) Wire right and down neighbours, row-major.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				if err = connect(g, options, cellName(x, y), cellName(x+1, y)); err != nil {
					return nil, err
				}
			}
			if y+1 < h {
				if err = connect(g, options, cellName(x, y), cellName(x, y+1)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

//
// Helpers
// // // // // // // // // //

// newGraph maps resolved options onto core graph flags.
func newGraph(o Options) *core.Graph {
	gopts := make([]core.GraphOption, 0, 2)
	if o.Directed {
		gopts = append(gopts, core.WithDirected(true))
	}
	if o.Weight != nil {
		gopts = append(gopts, core.WithWeighted())
	}

	return core.NewGraph(gopts...)
}

// connect adds one edge, consulting the weight source when present.
func connect(g *core.Graph, o Options, from, to string) error {
	var w int64
	if o.Weight != nil {
		w = o.Weight(from, to)
	}
	if _, err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("builder: edge %s-%s: %w", from, to, err)
	}

	return nil
}

func vertexName(i int) string { return "v" + strconv.Itoa(i) }

func cellName(x, y int) string {
	return strconv.Itoa(x) + "_" + strconv.Itoa(y)
}
