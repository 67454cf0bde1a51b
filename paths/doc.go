// Package paths bundles the single-source shortest-path family behind one
// relaxation contract.
//
// The Relaxer interface fixes three things: the starting distance of
// every vertex, what "better" means, and how an edge weight folds into an
// accumulated distance. Each engine repeats the same mechanical loop and
// differs only in the order it relaxes edges:
//
//   - Dijkstra settles vertices best-first with a keyed-update priority
//     queue. Requires weights the relaxer never improves on revisit
//     (non-negative, for MinPlus); not checked.
//   - BellmanFord sweeps all edges up to V-1 times, tolerates negative
//     weights and reports ErrNegativeCycle when a verification sweep
//     still improves.
//   - DAG relaxes once along a topological order from the toposort
//     package, so negative weights cost nothing extra.
//   - AStar is Dijkstra with the frontier biased by a caller-supplied
//     estimate of the remaining distance, stopping once the target
//     settles.
//
// Swapping the relaxer changes the problem solved: MinPlus gives
// shortest paths, EdgeOnly turns Dijkstra's loop into Prim's spanning
// growth (the mst package does exactly that).
//
// All engines leave unreached vertices at the relaxer's InitialDistance
// (Unreachable for the built-ins), record the relaxation tree in
// Parent/ParentEdge, and treat context cancellation as a status rather
// than an error. Instrumentation goes to the logrus logger wired through
// WithLogger and is discarded by default.
//
// Usage:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	// ... add weighted edges ...
//	res, err := paths.Dijkstra(g, "A")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Dist["F"], res.PathTo("F"))
package paths
