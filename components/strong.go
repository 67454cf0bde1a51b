package components

import (
	"fmt"

	"github.com/plexus-graph/plexus/core"
)

// frame tracks one vertex's progress through its out-edges on the
// explicit recursion stack.
type frame struct {
	v     string
	edges []core.Edge
	next  int
}

// Strong partitions the graph into strongly connected components with
// Tarjan's algorithm. The recursion is unrolled onto an explicit frame
// stack, so chains millions of vertices deep cannot overflow the call
// stack.
//
// On an undirected graph every edge is traversable both ways, which
// collapses strong connectivity into plain connectivity; the result
// then matches Connected.
//
// Component numbering and member order follow the Forest conventions.
//
// Complexity: O(V + E) time, O(V) memory.
func Strong(g Graph) (*Forest, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}

	var (
		vertices = g.Vertices()
		order    = make(map[string]int, len(vertices))
		low      = make(map[string]int, len(vertices))
		onStack  = make(map[string]bool, len(vertices))
		stack    = make([]string, 0, len(vertices))
		rawOf    = make(map[string]int, len(vertices))
		rawCount int
		counter  int
		frames   []frame
	)

	// discover opens a vertex: assigns its discovery order, pushes it
	// on the component stack, and stacks a traversal frame for it.
	discover := func(u string) error {
		order[u] = counter
		low[u] = counter
		counter++
		stack = append(stack, u)
		onStack[u] = true

		edges, err := g.OutEdges(u)
		if err != nil {
			return fmt.Errorf("%w: vertex %q: %v", ErrIncidence, u, err)
		}
		frames = append(frames, frame{v: u, edges: edges})

		return nil
	}

	// 2) Run Tarjan from every unvisited root, in sorted vertex order.
	for _, root := range vertices {
		if _, seen := order[root]; seen {
			continue
		}
		if err := discover(root); err != nil {
			return nil, err
		}

		for len(frames) > 0 {
			f := &frames[len(frames)-1]

			// 3) Advance the top frame by one edge.
			if f.next < len(f.edges) {
				w := f.edges[f.next].To
				f.next++
				if _, seen := order[w]; !seen {
					if err := discover(w); err != nil {
						return nil, err
					}
				} else if onStack[w] {
					if order[w] < low[f.v] {
						low[f.v] = order[w]
					}
				}

				continue
			}

			// 4) Frame exhausted: if it is a component root, pop its
			//    members off the component stack.
			if low[f.v] == order[f.v] {
				for {
					top := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[top] = false
					rawOf[top] = rawCount
					if top == f.v {
						break
					}
				}
				rawCount++
			}

			// 5) Fold the child's low link into its parent.
			child := f.v
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := &frames[len(frames)-1]
				if low[child] < low[parent.v] {
					low[parent.v] = low[child]
				}
			}
		}
	}

	// 6) Renumber components by first appearance in sorted vertex
	//    order; Tarjan emits them in reverse topological order, which
	//    is an implementation detail callers should not inherit.
	f := &Forest{ComponentOf: make(map[string]int, len(vertices))}
	renumber := make(map[int]int, rawCount)
	for _, id := range vertices {
		raw := rawOf[id]
		c, ok := renumber[raw]
		if !ok {
			c = len(f.Members)
			renumber[raw] = c
			f.Members = append(f.Members, nil)
		}
		f.ComponentOf[id] = c
		f.Members[c] = append(f.Members[c], id)
	}
	f.Count = len(f.Members)

	return f, nil
}
