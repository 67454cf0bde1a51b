// Package flow computes maximum flow on directed graphs.
//
// Two engines share one residual model:
//
//   - EdmondsKarp
//
//   - Method: breadth-first search for shortest augmenting paths.
//
//   - Time:   O(V · E²) worst case.
//
//   - Memory: O(V + E) for the residual map and search state.
//
//   - Dinic
//
//   - Method: level stratification + cursor-guided blocking flow.
//
//   - Time:   O(V² · E) worst case, far better in practice.
//
//   - Memory: O(V + E) for levels, adjacency, and recursion state.
//
// # Residual model
//
// The engine owns a map from edge ID to remaining capacity, seeded
// from the nominal capacities (CapacityFunc, default: edge weight).
// The graph itself is never mutated. Augmenting searches run over a
// residual view built with core.NewFilteredView: a zero-copy wrapper
// whose predicate admits only edges with residual capacity above
// Epsilon, reading the live map so each search sees the latest state.
// Self-loops are excluded from the books; they cannot carry
// source-to-sink flow.
//
// # Reverse pairing
//
// Pushing flow through an edge must open capacity in the opposite
// direction so later searches can reroute it. The pairing between an
// edge and its reverse is data, not graph structure: a
// map[string]string of edge IDs, symmetric in both directions.
// AugmentReverseEdges builds it, reusing existing antiparallel edges
// and inserting synthetic zero-capacity edges only where needed; its
// Remove method undoes the insertions. Engines accept the pairing via
// WithReversedEdges. Without a pairing the debit still happens but the
// credit is skipped, so results on graphs that need rerouting fall
// short of the true maximum.
//
// # Cancellation
//
// Both engines poll Options.Ctx once before each search phase.
// Cancellation is not an error: the Result carries the flow
// accumulated so far and core.StatusCancelled, with a nil error.
// Augmentations apply atomically between polls, so a partial result
// never contains a half-applied path.
//
// # Errors
//
//	ErrGraphNil, ErrUndirectedGraph          - invalid input graph
//	ErrSourceNotFound, ErrSinkNotFound       - missing endpoint
//	ErrIdenticalEndpoints                    - source == sink
//	ErrNegativeCapacity                      - capacity below -Epsilon
//	ErrOptionViolation                       - invalid option value
//	ErrIncidence                             - incidence lookup failed mid-run
//
// All validation errors surface before any computation.
//
// # Usage
//
//	aug, err := flow.AugmentReverseEdges(g)
//	if err != nil { ... }
//	res, err := flow.EdmondsKarp(g, "s", "t",
//		flow.WithReversedEdges(aug.Reversed))
//	if err != nil { ... }
//	fmt.Println(res.MaxFlow)
//	cut, _ := flow.MinCut(g, res)
//
// MinCut derives a minimum cut from the final search coloring; FlowOn
// reports per-edge net flow.
package flow
