package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge creates a new edge from 'from' to 'to' with the given weight and
// returns its unique Edge.ID. Missing endpoints are created. On an
// undirected graph the adjacency entry is mirrored both ways; a directed
// graph additionally indexes the edge for reverse queries.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Weight constraint
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	// 3) Loop constraint
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// 4) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 5) Multi-edge constraint: any prior edge between the endpoints blocks
	//    a second one; for undirected graphs the mirror entry covers the
	//    reversed orientation too.
	if !g.allowMulti {
		if inner, ok := g.adjacency[from][to]; ok && len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 6) Allocate the edge under a fresh atomic ID
	eid := edgeIDPrefix + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edges[eid] = e

	// 7) Index: adjacency[from][to], plus mirror or reverse
	g.ensureAdjPair(g.adjacency, from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if g.directed {
		g.ensureAdjPair(g.reverse, to, from)
		g.reverse[to][from][eid] = struct{}{}
	} else if from != to {
		g.ensureAdjPair(g.adjacency, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID (and its mirror entry) from
// the graph. Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.unlink(eid, e)

	return nil
}

// HasEdge reports whether at least one edge runs from 'from' to 'to'.
// On an undirected graph orientation does not matter.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if inner, ok := g.adjacency[from][to]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// EdgeByID returns a copy of the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) EdgeByID(eid string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns copies of all edges sorted by Edge.ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Internal index helpers. Callers hold muEdgeAdj.

// ensureAdj makes adjacency[id] and reverse[id] non-nil.
func (g *Graph) ensureAdj(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
	if g.directed {
		if _, ok := g.reverse[id]; !ok {
			g.reverse[id] = make(map[string]map[string]struct{})
		}
	}
}

// ensureAdjPair ensures idx[a][b] is initialized.
func (g *Graph) ensureAdjPair(idx map[string]map[string]map[string]struct{}, a, b string) {
	if _, ok := idx[a]; !ok {
		idx[a] = make(map[string]map[string]struct{})
	}
	if idx[a][b] == nil {
		idx[a][b] = make(map[string]struct{})
	}
}

// unlink removes eid from every index bucket it occupies.
func (g *Graph) unlink(eid string, e *Edge) {
	dropFrom := func(idx map[string]map[string]map[string]struct{}, a, b string) {
		if m := idx[a][b]; m != nil {
			delete(m, eid)
			if len(m) == 0 {
				delete(idx[a], b)
			}
		}
	}
	dropFrom(g.adjacency, e.From, e.To)
	if g.directed {
		dropFrom(g.reverse, e.To, e.From)
	} else if e.From != e.To {
		dropFrom(g.adjacency, e.To, e.From)
	}
}
