package overlap

import (
	"errors"
	"fmt"
)

// Sentinel errors for overlap computation. All are matched via errors.Is;
// the specific invalid-input causes wrap ErrInvalidInput so callers can
// branch on the family without caring which rule fired.
var (
	// ErrInvalidInput is the base sentinel for every input-validation failure.
	ErrInvalidInput = errors.New("overlap: invalid input")

	// ErrEmptyAssignment is returned when an assignment has zero identifiers.
	ErrEmptyAssignment = fmt.Errorf("%w: assignment has no identifiers", ErrInvalidInput)

	// ErrNoLabels is returned when an assignment has no non-missing labels,
	// so no row or column set can be formed.
	ErrNoLabels = fmt.Errorf("%w: assignment has no defined labels", ErrInvalidInput)

	// ErrBadOrder is returned when a WithRowOrder/WithColOrder list is not a
	// permutation of the assignment's distinct labels.
	ErrBadOrder = errors.New("overlap: label order mismatch")

	// ErrUnknownLabel indicates a label absent from the matrix axis (At,
	// BestMatch) or from the assignment (order options).
	ErrUnknownLabel = errors.New("overlap: unknown label")

	// ErrOutOfRange indicates an index outside the matrix bounds (AtIndex).
	ErrOutOfRange = errors.New("overlap: index out of range")
)
