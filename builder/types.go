// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewVertices is returned when a size parameter is below the
	// minimum the requested shape needs.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrOptionViolation is returned when a functional option receives
	// an invalid value.
	ErrOptionViolation = errors.New("builder: invalid option")
)

// WeightFunc computes the weight for the edge from -> to. Generators
// call it once per emitted edge, in emission order.
type WeightFunc func(from, to string) int64

// Options configures graph generation. Construct with DefaultOptions
// and mutate via With* functional options.
type Options struct {
	// Directed orients every generated edge; see each generator for
	// its orientation convention.
	Directed bool

	// Weight, when non-nil, switches the generated graph to weighted
	// mode and supplies per-edge weights. Nil generates an unweighted
	// graph with zero weights.
	Weight WeightFunc

	err error
}

// DefaultOptions generates undirected, unweighted graphs.
func DefaultOptions() Options {
	return Options{}
}

// Option mutates Options.
type Option func(*Options)

// WithDirected orients the generated edges.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithWeights enables weighted mode and installs the per-edge weight
// source.
func WithWeights(fn WeightFunc) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = ErrOptionViolation

			return
		}
		o.Weight = fn
	}
}

// resolve folds the options and surfaces the first violation.
func resolve(opts []Option) (Options, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		return options, options.err
	}

	return options, nil
}
