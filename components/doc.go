// Package components partitions graphs into connected pieces.
//
// Connected ignores edge direction and unions endpoints with dsu,
// yielding weak components on directed graphs and plain components on
// undirected ones. Strong runs an iterative Tarjan pass for strongly
// connected components. Condense contracts each strong component of a
// directed graph into one vertex of a fresh directed graph, which is
// guaranteed acyclic and therefore always topologically sortable.
//
// All three number components by first appearance in ascending vertex
// ID order and list members sorted, so results are deterministic and
// directly comparable across runs.
package components
