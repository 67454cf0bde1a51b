package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertex
// set, but no edges. The edge ID counter is carried over so edges added to
// the clone never collide with IDs recorded from the source.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	clone.nextEdgeID = atomic.LoadUint64(&g.nextEdgeID)
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.ensureAdj(id)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges
// and both adjacency indexes.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		clone.ensureAdjPair(clone.adjacency, e.From, e.To)
		clone.adjacency[e.From][e.To][eid] = struct{}{}
		if clone.directed {
			clone.ensureAdjPair(clone.reverse, e.To, e.From)
			clone.reverse[e.To][e.From][eid] = struct{}{}
		} else if e.From != e.To {
			clone.ensureAdjPair(clone.adjacency, e.To, e.From)
			clone.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}

// Clear resets the graph to the empty state but preserves configuration.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]struct{})
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]map[string]struct{})
	g.reverse = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
