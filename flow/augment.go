package flow

import (
	"fmt"
)

// Augmentation records the outcome of AugmentReverseEdges: the edge
// pairing map to hand to the engines, and the synthetic edges added so
// they can be removed again.
type Augmentation struct {
	// Reversed pairs edge IDs in both directions: for every edge e it
	// holds Reversed[e] == r and Reversed[r] == e. Pass it to an
	// engine via WithReversedEdges.
	Reversed map[string]string

	// Added lists the synthetic zero-capacity edges inserted by the
	// augmentor, sorted by insertion order. Edges paired with an
	// existing antiparallel edge do not appear here.
	Added []string

	g MutableGraph
}

// AugmentReverseEdges prepares g for max-flow by ensuring every
// non-loop edge has a paired reverse edge, and returns the pairing.
//
// Pairing prefers existing edges: when u→v and v→u both already exist
// and neither is paired yet, they are paired with each other and no
// edge is inserted. Only edges left without an antiparallel partner
// receive a synthetic zero-weight reverse edge. Synthetic edges are
// recorded in Added and can be removed again with Remove.
//
// Edges are visited in ascending ID order, so the pairing and the set
// of inserted edges are deterministic. Self-loops are skipped: they
// cannot carry source-to-sink flow.
//
// Errors from edge insertion propagate unchanged. In particular, a
// graph that forbids multi-edges cannot host a synthetic reverse next
// to an existing antiparallel edge that is already paired; construct
// such graphs with core.WithMultiEdges.
//
// Complexity: O(E log E) over the edge snapshot.
func AugmentReverseEdges(g MutableGraph) (*Augmentation, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	// 2) Snapshot the edge set and index candidates by endpoint pair.
	//    Candidate lists inherit the snapshot's ascending ID order.
	edges := g.Edges()
	byPair := make(map[[2]string][]string, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		k := [2]string{e.From, e.To}
		byPair[k] = append(byPair[k], e.ID)
	}

	aug := &Augmentation{
		Reversed: make(map[string]string, 2*len(edges)),
		g:        g,
	}

	// 3) Pair every unpaired edge: reuse an unpaired antiparallel edge
	//    when one exists, otherwise insert a synthetic reverse.
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		if _, done := aug.Reversed[e.ID]; done {
			continue
		}

		if rid, ok := firstUnpaired(byPair[[2]string{e.To, e.From}], aug.Reversed); ok {
			aug.Reversed[e.ID] = rid
			aug.Reversed[rid] = e.ID

			continue
		}

		rid, err := g.AddEdge(e.To, e.From, 0)
		if err != nil {
			return nil, fmt.Errorf("flow: add reverse of %q: %w", e.ID, err)
		}
		aug.Reversed[e.ID] = rid
		aug.Reversed[rid] = e.ID
		aug.Added = append(aug.Added, rid)
	}

	return aug, nil
}

// firstUnpaired returns the first candidate ID not yet present in the
// pairing map.
func firstUnpaired(candidates []string, paired map[string]string) (string, bool) {
	for _, id := range candidates {
		if _, ok := paired[id]; !ok {
			return id, true
		}
	}

	return "", false
}

// Remove deletes the synthetic edges inserted by AugmentReverseEdges,
// restoring the graph's original edge set. Pairings between
// pre-existing edges are untouched. The Augmentation must not be
// reused afterwards.
func (a *Augmentation) Remove() error {
	for _, id := range a.Added {
		if err := a.g.RemoveEdge(id); err != nil {
			return fmt.Errorf("flow: remove synthetic edge %q: %w", id, err)
		}
	}
	a.Added = nil

	return nil
}
