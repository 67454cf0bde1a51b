package core

import "sort"

// OutEdges returns copies of the edges leaving id, sorted by Edge.ID.
// Each copy is reoriented so From == id: on an undirected graph a stored
// edge (b, a) incident to a comes back as (a, b). Callers therefore never
// branch on direction when walking forward.
// Complexity: O(d log d), d = out-degree.
func (g *Graph) OutEdges(id string) ([]Edge, error) {
	if err := g.requireVertex(id); err != nil {
		return nil, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			e := *g.edges[eid]
			if e.From != id {
				e.From, e.To = e.To, e.From // undirected mirror entry
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// OutDegree returns the number of edges leaving id.
// Complexity: O(k), k = distinct forward neighbors.
func (g *Graph) OutDegree(id string) (int, error) {
	if err := g.requireVertex(id); err != nil {
		return 0, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := 0
	for _, bucket := range g.adjacency[id] {
		n += len(bucket)
	}

	return n, nil
}

// InEdges returns copies of the edges entering id, sorted by Edge.ID,
// reoriented so To == id. On an undirected graph this is the incident edge
// set, same as OutEdges up to orientation.
// Complexity: O(d log d), d = in-degree.
func (g *Graph) InEdges(id string) ([]Edge, error) {
	if err := g.requireVertex(id); err != nil {
		return nil, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	idx := g.reverse
	if !g.directed {
		idx = g.adjacency
	}
	var in []Edge
	for _, bucket := range idx[id] {
		for eid := range bucket {
			e := *g.edges[eid]
			if e.To != id {
				e.From, e.To = e.To, e.From
			}
			in = append(in, e)
		}
	}
	sort.Slice(in, func(i, j int) bool { return in[i].ID < in[j].ID })

	return in, nil
}

// InDegree returns the number of edges entering id.
// Complexity: O(k), k = distinct reverse neighbors.
func (g *Graph) InDegree(id string) (int, error) {
	if err := g.requireVertex(id); err != nil {
		return 0, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	idx := g.reverse
	if !g.directed {
		idx = g.adjacency
	}
	n := 0
	for _, bucket := range idx[id] {
		n += len(bucket)
	}

	return n, nil
}

// NeighborIDs returns the IDs of all vertices reachable from id over a
// single forward edge, unique and sorted.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.OutEdges(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.To] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// requireVertex validates id and its presence.
func (g *Graph) requireVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	return nil
}
