package components

import (
	"fmt"

	"github.com/plexus-graph/plexus/dsu"
)

// Connected partitions the vertex set into connected components,
// ignoring edge direction: on a directed graph this is weak
// connectivity. Isolated vertices form singleton components.
//
// Complexity: O(V + E α(V)) time, O(V) memory.
func Connected(g Graph) (*Forest, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) One set per vertex, merged along every edge.
	vertices := g.Vertices()
	sets := dsu.New()
	for _, id := range vertices {
		_ = sets.MakeSet(id)
	}
	for _, e := range g.Edges() {
		if _, err := sets.Union(e.From, e.To); err != nil {
			return nil, fmt.Errorf("components: union %q-%q: %w", e.From, e.To, err)
		}
	}

	// 3) Group by root, numbering components in first-appearance order
	//    over the sorted vertex list.
	f := &Forest{ComponentOf: make(map[string]int, len(vertices))}
	index := make(map[string]int, sets.Count())
	for _, id := range vertices {
		root, err := sets.Find(id)
		if err != nil {
			return nil, fmt.Errorf("components: find %q: %w", id, err)
		}
		c, ok := index[root]
		if !ok {
			c = len(f.Members)
			index[root] = c
			f.Members = append(f.Members, nil)
		}
		f.ComponentOf[id] = c
		f.Members[c] = append(f.Members[c], id)
	}
	f.Count = len(f.Members)

	return f, nil
}
