// Package mst builds minimum spanning trees of undirected graphs.
//
// Two classic constructions are provided:
//
//   - Kruskal: global edge scan in ascending weight order, accepting
//     edges across components, components tracked by dsu. O(E log E).
//
//   - Prim: local growth from a root, cheapest attachment first. The
//     implementation is Dijkstra's settle loop under the
//     paths.EdgeOnly relaxer, which orders the fringe by single edge
//     weight instead of accumulated distance. O((V + E) log V).
//
// Both return a Tree of exactly V-1 edges with the summed weight, and
// both fail with ErrDisconnectedGraph when no spanning tree exists.
// For any connected graph the two trees carry the same total weight,
// even when tie-breaking picks different edge sets.
//
// Self-loops never participate. Parallel edges resolve to the cheapest
// one. Negative weights are valid; a spanning tree has no cycle to
// amplify them.
package mst
