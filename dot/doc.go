// Package dot renders graphs to graphviz DOT text.
//
// Render walks the read-only snapshots of a graph and emits one
// statement per vertex and per edge, so the output covers isolated
// vertices, self-loops and parallel edges alike. Directed graphs
// become digraph blocks with -> connectors, undirected graphs become
// graph blocks with --.
//
// # Determinism
//
// Output order follows the graph snapshots (ascending vertex IDs,
// ascending edge IDs) and attribute lists are sorted by key, so the
// same graph always renders to the same bytes. That makes DOT output
// safe to commit as golden files and trivial to diff.
//
// # Overlays
//
// Attribute callbacks and WithHighlightEdges exist to paint algorithm
// results over their input graph without touching it:
//
//	tree, _ := mst.Kruskal(g)
//	ids := make([]string, len(tree.Edges))
//	for i, e := range tree.Edges {
//		ids[i] = e.ID
//	}
//	_ = dot.Render(os.Stdout, g, dot.WithHighlightEdges(ids...))
//
// Rendering reads the graph exactly once and never mutates it.
package dot
