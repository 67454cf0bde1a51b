// Package bfs provides breadth-first search over any graph exposing the
// core.VertexSet and core.Incidence capabilities, returning unweighted
// shortest-path depths, predecessor links, color marks and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     start vertex.
//   - Returns a Result containing:
//     Order (visit sequence), Depth (vertex → hops from start),
//     Parent / ParentEdge (predecessor tree, by vertex and by edge ID),
//     Colors (final White/Gray/Black marks), Status (completed/cancelled).
//   - Observer callbacks at three lifecycle points:
//     OnDiscover (vertex turns gray), OnExamine (each out-edge looked at),
//     OnFinish (vertex turns black).
//   - Edge filtering via WithFilterEdge, depth limiting via WithMaxDepth,
//     and a replaceable frontier via WithQueue (the default is FIFO; a
//     priority frontier turns the walker into best-first search).
//
// Color state machine
//
//	white → gray on discovery (pushed to the frontier exactly once),
//	gray → black once every out-edge has been examined. Absent map entries
//	read as White, so Result.Colors[v] is meaningful for unreached v too.
//
// Cancellation
//
//	The context is polled once per frontier pop. A cancelled run returns
//	its partial Result with Status == core.StatusCancelled and a nil
//	error; cancellation is a terminal state, not a failure.
//
// Determinism
//
//	core.Graph returns out-edges sorted by Edge.ID and BFS examines them
//	in that order, so the visit sequence over a core.Graph is fully
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) with the default FIFO frontier
//   - Memory: O(V) for frontier, depth, parent and color maps
//
// Usage
//
//	result, err := bfs.BFS(g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterEdge(func(e core.Edge) bool { return e.Weight > 0 }),
//	    bfs.WithOnDiscover(func(id string, depth int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGraphNil            if the graph is nil.
//   - ErrStartVertexNotFound if the start vertex does not exist.
//   - ErrOptionViolation     for invalid options (negative MaxDepth).
//   - ErrIncidence           if an out-edge lookup fails mid-run.
package bfs
