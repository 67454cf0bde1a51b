package paths

import "math"

// Unreachable is the distance assigned to vertices no relaxation has
// reached. Result maps hold it verbatim so callers can test reachability
// with a plain comparison.
const Unreachable int64 = math.MaxInt64

// Relaxer defines the semiring one relaxation pass operates in. Every
// engine in this package shares the same mechanical loop and delegates
// what "shorter" means to its Relaxer:
//
//   - InitialDistance is the value every vertex starts at (the identity
//     of Compare; Unreachable for minimizing relaxers).
//   - Compare(a, b) reports whether a is strictly better than b.
//   - Combine(distance, weight) folds an edge weight into the distance
//     of the vertex the edge leaves.
//
// MinPlus yields classic shortest paths. EdgeOnly discards the
// accumulated distance, which turns Dijkstra's loop into Prim's
// minimum-spanning-tree growth, see the mst package.
type Relaxer interface {
	InitialDistance() int64
	Compare(a, b int64) bool
	Combine(distance, weight int64) int64
}

// MinPlus is the shortest-path relaxer: distances accumulate by addition
// and smaller is better.
type MinPlus struct{}

// InitialDistance returns Unreachable.
func (MinPlus) InitialDistance() int64 { return Unreachable }

// Compare reports a < b.
func (MinPlus) Compare(a, b int64) bool { return a < b }

// Combine returns distance + weight, saturating at Unreachable so a
// relaxation from an unreached vertex never manufactures a finite path.
func (MinPlus) Combine(distance, weight int64) int64 {
	if distance == Unreachable {
		return Unreachable
	}

	return distance + weight
}

// EdgeOnly orders vertices by the weight of the single edge reaching
// them, ignoring accumulated distance. Plugged into Dijkstra it grows a
// minimum spanning tree instead of a shortest-path tree.
type EdgeOnly struct{}

// InitialDistance returns Unreachable.
func (EdgeOnly) InitialDistance() int64 { return Unreachable }

// Compare reports a < b.
func (EdgeOnly) Compare(a, b int64) bool { return a < b }

// Combine returns the edge weight alone.
func (EdgeOnly) Combine(_, weight int64) int64 { return weight }
