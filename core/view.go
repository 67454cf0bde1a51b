package core

// ReadGraph is the read-only capability union a FilteredView delegates to.
// *Graph satisfies it, and so does FilteredView itself, so views nest.
type ReadGraph interface {
	VertexSet
	EdgeSet
	Incidence
}

// FilteredView is a zero-copy, read-only view of a source graph restricted
// to the edges the keep predicate accepts. The vertex set is untouched.
//
// The view materializes nothing: every query consults the source and
// re-applies the predicate, so callers that mutate the data behind the
// predicate (residual capacities during max-flow, say) observe the change
// on the very next query. The predicate receives edge copies exactly as the
// underlying query orients them; filtering on Edge.ID is orientation-proof.
type FilteredView struct {
	src  ReadGraph
	keep func(Edge) bool
}

// NewFilteredView wraps src. A nil keep keeps every edge.
func NewFilteredView(src ReadGraph, keep func(Edge) bool) *FilteredView {
	if keep == nil {
		keep = func(Edge) bool { return true }
	}

	return &FilteredView{src: src, keep: keep}
}

// Vertices returns the source's vertex IDs; filtering never hides vertices.
func (v *FilteredView) Vertices() []string { return v.src.Vertices() }

// VertexCount returns the source's vertex count.
func (v *FilteredView) VertexCount() int { return v.src.VertexCount() }

// HasVertex reports whether the source contains id.
func (v *FilteredView) HasVertex(id string) bool { return v.src.HasVertex(id) }

// Edges returns the source's edges that pass the predicate, sorted by ID.
// Complexity: O(E log E) via the source enumeration.
func (v *FilteredView) Edges() []Edge {
	all := v.src.Edges()
	out := all[:0:0]
	for _, e := range all {
		if v.keep(e) {
			out = append(out, e)
		}
	}

	return out
}

// EdgeCount returns the number of edges passing the predicate. O(E).
func (v *FilteredView) EdgeCount() int {
	n := 0
	for _, e := range v.src.Edges() {
		if v.keep(e) {
			n++
		}
	}

	return n
}

// OutEdges returns the source's out-edges of id that pass the predicate.
func (v *FilteredView) OutEdges(id string) ([]Edge, error) {
	all, err := v.src.OutEdges(id)
	if err != nil {
		return nil, err
	}
	out := all[:0:0]
	for _, e := range all {
		if v.keep(e) {
			out = append(out, e)
		}
	}

	return out, nil
}

// OutDegree returns the number of surviving out-edges of id.
func (v *FilteredView) OutDegree(id string) (int, error) {
	kept, err := v.OutEdges(id)
	if err != nil {
		return 0, err
	}

	return len(kept), nil
}

// InEdges returns the surviving in-edges of id. The source must implement
// Bidirectional; otherwise ErrCapabilityMissing is returned.
func (v *FilteredView) InEdges(id string) ([]Edge, error) {
	b, ok := v.src.(Bidirectional)
	if !ok {
		return nil, ErrCapabilityMissing
	}
	all, err := b.InEdges(id)
	if err != nil {
		return nil, err
	}
	in := all[:0:0]
	for _, e := range all {
		if v.keep(e) {
			in = append(in, e)
		}
	}

	return in, nil
}

// InDegree returns the number of surviving in-edges of id, or
// ErrCapabilityMissing when the source is forward-only.
func (v *FilteredView) InDegree(id string) (int, error) {
	kept, err := v.InEdges(id)
	if err != nil {
		return 0, err
	}

	return len(kept), nil
}

// Directed reports the source's directedness when the source exposes it,
// and false otherwise.
func (v *FilteredView) Directed() bool {
	if d, ok := v.src.(interface{ Directed() bool }); ok {
		return d.Directed()
	}

	return false
}
