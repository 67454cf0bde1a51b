package core

// Color is the three-state visit mark shared by the traversal engines.
// Every vertex starts White, turns Gray when discovered, and Black once the
// algorithm has finished with it.
type Color uint8

const (
	White Color = iota // undiscovered
	Gray               // discovered, work pending
	Black              // finished
)

// String returns the conventional color name.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// ComputeStatus reports how an algorithm run ended. Cancellation via
// context is a status, not an error: a cancelled run returns its partial
// result, StatusCancelled and a nil error.
type ComputeStatus uint8

const (
	// StatusCompleted marks a run that examined everything it set out to.
	StatusCompleted ComputeStatus = iota

	// StatusCancelled marks a run cut short by context cancellation.
	// Result fields hold the state committed before the cut.
	StatusCancelled

	// StatusFailed marks a run stopped by a structural violation
	// (negative cycle, unexpected cycle). The accompanying error names it.
	StatusFailed
)

// String returns the status name.
func (s ComputeStatus) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
