// Package dsu implements a disjoint-set (union-find) structure over string
// elements, with path compression and union by rank.
//
// Elements must be registered via MakeSet before Find/Union/Connected may
// reference them; touching an untracked element is an error, never a silent
// auto-add. A DSU instance is owned by a single algorithm run and is not
// safe for concurrent use.
package dsu

import "errors"

// Sentinel errors for set operations.
var (
	// ErrDuplicateElement indicates MakeSet was called twice for one element.
	ErrDuplicateElement = errors.New("dsu: element already tracked")

	// ErrMissingElement indicates Find/Union/Connected referenced an element
	// never registered with MakeSet.
	ErrMissingElement = errors.New("dsu: element not tracked")
)

// DSU is a forest of disjoint sets keyed by string element IDs.
type DSU struct {
	parent map[string]string
	rank   map[string]int
	size   map[string]int
	count  int // number of disjoint sets
}

// New returns an empty DSU.
func New() *DSU {
	return &DSU{
		parent: make(map[string]string),
		rank:   make(map[string]int),
		size:   make(map[string]int),
	}
}

// MakeSet registers id as a new singleton set.
// Returns ErrDuplicateElement if id is already tracked.
// Complexity: O(1).
func (d *DSU) MakeSet(id string) error {
	if _, ok := d.parent[id]; ok {
		return ErrDuplicateElement
	}
	d.parent[id] = id
	d.rank[id] = 0
	d.size[id] = 1
	d.count++

	return nil
}

// Find returns the representative of id's set.
// Returns ErrMissingElement if id was never registered.
// Uses iterative path compression (grandparent pointer rewriting), so the
// representative is stable between mutations: Find(Find(x)) == Find(x).
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(id string) (string, error) {
	if _, ok := d.parent[id]; !ok {
		return "", ErrMissingElement
	}
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id, nil
}

// Union merges the sets containing a and b.
// Returns true when a merge happened, false when both were already in the
// same set. Returns ErrMissingElement if either is untracked.
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(a, b string) (bool, error) {
	rootA, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := d.Find(b)
	if err != nil {
		return false, err
	}
	if rootA == rootB {
		return false, nil
	}
	// Attach the smaller-rank tree under the larger-rank root.
	if d.rank[rootA] < d.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	d.parent[rootB] = rootA
	d.size[rootA] += d.size[rootB]
	if d.rank[rootA] == d.rank[rootB] {
		d.rank[rootA]++
	}
	d.count--

	return true, nil
}

// Connected reports whether a and b are in the same set.
// Returns ErrMissingElement if either is untracked.
func (d *DSU) Connected(a, b string) (bool, error) {
	rootA, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}

// SetSize returns the number of elements in id's set.
// Returns ErrMissingElement if id is untracked.
func (d *DSU) SetSize(id string) (int, error) {
	root, err := d.Find(id)
	if err != nil {
		return 0, err
	}

	return d.size[root], nil
}

// Count returns the number of disjoint sets. O(1).
func (d *DSU) Count() int { return d.count }

// Len returns the number of tracked elements. O(1).
func (d *DSU) Len() int { return len(d.parent) }
