package overlap

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/labelmatch/label"
)

// Compute builds the pairwise Jaccard overlap matrix between the category
// values of assignments a and b.
//
// Algorithm outline:
//  1. Validate: each input must have at least one identifier
//     (ErrEmptyAssignment) and at least one non-missing label (ErrNoLabels).
//  2. Fix the axes: rows = distinct labels of a, columns = distinct labels
//     of b — lexicographic unless reordered via options. Axis size depends
//     only on the inputs' own label sets, never on the other assignment.
//  3. Restrict both assignments to the shared identifier universe: an
//     identifier takes part in a comparison only if it carries a defined
//     label in both inputs.
//  4. cell(r,c) = |set_r ∩ set_c| / |set_r ∪ set_c| over the restricted
//     groups; 0 when the union is empty.
//
// The function is pure: no I/O, no retained state, and identical inputs
// yield identical matrices. Errors are permanent input-validation failures;
// there is nothing to retry.
//
// Example:
//
//	m, err := overlap.Compute(calls, clusters)
//	if errors.Is(err, overlap.ErrInvalidInput) {
//	  // nothing comparable here — skip this panel
//	}
func Compute(a, b label.Assignment, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}

	if a.Len() == 0 || b.Len() == 0 {
		return nil, ErrEmptyAssignment
	}

	rows := a.Values()
	cols := b.Values()
	if len(rows) == 0 || len(cols) == 0 {
		return nil, ErrNoLabels
	}

	var err error
	if rows, err = resolveOrder(rows, o.RowOrder, "row"); err != nil {
		return nil, err
	}
	if cols, err = resolveOrder(cols, o.ColOrder, "column"); err != nil {
		return nil, err
	}

	// Shared identifier universe: defined on both sides. Identifiers present
	// in only one labeling never take part in any cell.
	shared := a.IDs().Intersect(b.IDs())
	groupsA := restrict(a.Groups(), shared)
	groupsB := restrict(b.Groups(), shared)

	data := make([][]float64, len(rows))
	for i, r := range rows {
		data[i] = make([]float64, len(cols))
		for j, c := range cols {
			data[i][j] = Jaccard(groupsA[r], groupsB[c])
		}
	}

	return newMatrix(rows, cols, data), nil
}

// Jaccard returns |a∩b| / |a∪b| for two identifier sets: 1 for identical
// non-empty sets, 0 for disjoint sets. Defined as 0 (not NaN) when both
// sets are empty or either is nil, keeping the routine total.
// Complexity: O(|a|+|b|).
func Jaccard(a, b mapset.Set[label.ID]) float64 {
	if a == nil || b == nil {
		return 0
	}

	union := a.Union(b).Cardinality()
	if union == 0 {
		return 0
	}

	return float64(a.Intersect(b).Cardinality()) / float64(union)
}

// resolveOrder validates a caller-supplied axis order against the distinct
// labels and returns the sequence to use. A nil order keeps the sorted
// default. The order must be a permutation: same length, no duplicates,
// no labels outside the assignment.
func resolveOrder(sorted, order []label.Value, axis string) ([]label.Value, error) {
	if order == nil {
		return sorted, nil
	}

	have := make(map[label.Value]bool, len(sorted))
	for _, v := range sorted {
		have[v] = true
	}

	seen := make(map[label.Value]bool, len(order))
	for _, v := range order {
		if !have[v] {
			return nil, fmt.Errorf("%w: %w %q on %s axis", ErrBadOrder, ErrUnknownLabel, v, axis)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: duplicate %s label %q", ErrBadOrder, axis, v)
		}
		seen[v] = true
	}
	if len(order) != len(sorted) {
		return nil, fmt.Errorf("%w: %s order lists %d of %d labels", ErrBadOrder, axis, len(order), len(sorted))
	}

	return order, nil
}

// restrict intersects every group with the shared identifier universe.
// Groups may come out empty; Jaccard handles that as 0.
func restrict(groups map[label.Value]mapset.Set[label.ID], shared mapset.Set[label.ID]) map[label.Value]mapset.Set[label.ID] {
	out := make(map[label.Value]mapset.Set[label.ID], len(groups))
	for v, set := range groups {
		out[v] = set.Intersect(shared)
	}

	return out
}
