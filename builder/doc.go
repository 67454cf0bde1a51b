// SPDX-License-Identifier: MIT

// Package builder generates classic graph shapes for tests, benchmarks
// and examples.
//
// Path, Cycle, Complete, Star and Grid produce fresh core graphs with
// deterministic vertex names (v0..vN, grid cells x_y) and a stable edge
// emission order, so two calls with the same arguments build identical
// graphs. WithDirected orients the edges (each generator documents its
// convention) and WithWeights switches the graph to weighted mode with
// a caller-supplied weight per edge:
//
//	g, err := builder.Grid(4, 3,
//		builder.WithDirected(),
//		builder.WithWeights(func(from, to string) int64 { return 1 }),
//	)
//
// Generators validate sizes up front and return ErrTooFewVertices for
// shapes that cannot exist.
package builder
