// Package plexus is an in-memory toolkit for building, traversing and
// analyzing graphs, from core primitives to max-flow.
//
// What is plexus?
//
//	A thread-safe graph library built from small, composable packages:
//		• Core primitives: vertices & edges, mutated safely under locks
//		• Capability interfaces: algorithms declare the slice of graph they read
//		• Traversals: BFS, DFS with observer hooks & injectable frontiers
//		• Shortest paths: Dijkstra, Bellman-Ford, DAG relaxation, A*
//		• Max flow: Edmonds-Karp, Dinic over zero-copy residual views
//		• Structure: topological sort, connected & strongly connected
//		  components, condensation, minimum spanning trees
//		• Tooling: disjoint sets, keyed priority queue, DOT rendering,
//		  deterministic graph generators
//
// Why plexus?
//
//   - Deterministic everywhere: sorted snapshots, stable tie-breaks,
//     reproducible renders
//   - Explicit contracts: sentinel errors for every failure class,
//     cancellation reported as a status instead of an error
//   - Composable: results feed the next algorithm (components into
//     condensation into toposort, Dijkstra under Prim)
//
// The packages:
//
//	core/       - Graph, Edge, capability interfaces, filtered views
//	dsu/        - disjoint set union with path compression
//	pqueue/     - priority queue with keyed decrease/update
//	bfs/, dfs/  - traversals with events, depths and parent trees
//	paths/      - the shortest-path family over a shared Relaxer
//	flow/       - max-flow engines and the reverse-edge augmentor
//	toposort/   - Kahn's algorithm, source-first and deterministic
//	mst/        - Kruskal and Prim spanning trees
//	components/ - connected / strongly connected components, condensation
//	dot/        - graphviz DOT rendering with stable output
//	builder/    - Path, Cycle, Complete, Star, Grid generators
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four vertices, four edges: one BFS from A reaches them all in two
//	levels, and its spanning tree is the minimum one when weights agree.
//
//	go get github.com/plexus-graph/plexus
package plexus
