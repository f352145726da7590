package overlap

import (
	"fmt"

	"github.com/katalvlaran/labelmatch/label"
)

// Option configures Compute via functional arguments. An invalid Option is
// recorded internally and surfaced as a wrapped ErrBadOrder when Compute is
// invoked, never as a panic.
type Option func(*Options)

// Options holds presentation parameters for the resulting Matrix. Ordering
// is a presentation concern only: it never changes cell values or matrix
// dimensions, just the axis sequence.
type Options struct {
	// RowOrder, if non-nil, fixes the row sequence. It must be a permutation
	// of the distinct labels of the first assignment.
	RowOrder []label.Value

	// ColOrder, if non-nil, fixes the column sequence. It must be a
	// permutation of the distinct labels of the second assignment.
	ColOrder []label.Value

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with lexicographic row and column order.
func DefaultOptions() Options {
	return Options{
		RowOrder: nil,
		ColOrder: nil,
		err:      nil,
	}
}

// WithRowOrder fixes the row sequence of the resulting matrix.
// The list must contain every distinct label of the first assignment exactly
// once; Compute reports ErrBadOrder otherwise. An empty list is invalid.
func WithRowOrder(vals ...label.Value) Option {
	return func(o *Options) {
		if len(vals) == 0 {
			o.err = fmt.Errorf("%w: empty row order", ErrBadOrder)

			return
		}
		o.RowOrder = append([]label.Value(nil), vals...)
	}
}

// WithColOrder fixes the column sequence of the resulting matrix.
// The list must contain every distinct label of the second assignment exactly
// once; Compute reports ErrBadOrder otherwise. An empty list is invalid.
func WithColOrder(vals ...label.Value) Option {
	return func(o *Options) {
		if len(vals) == 0 {
			o.err = fmt.Errorf("%w: empty column order", ErrBadOrder)

			return
		}
		o.ColOrder = append([]label.Value(nil), vals...)
	}
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins; the first recorded option error survives.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		prev := o.err
		set(&o)
		if prev != nil {
			o.err = prev
		}
	}

	return o
}
