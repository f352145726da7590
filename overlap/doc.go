// Package overlap computes pairwise Jaccard similarity between the category
// values of two label assignments over a shared identifier universe.
//
// 🚀 What is an overlap matrix?
//
//	Given assignments a and b over the same identifiers, Compute builds a
//	2-D table: one row per distinct label of a, one column per distinct
//	label of b, and each cell holds
//
//	  |ids(row) ∩ ids(col)| / |ids(row) ∪ ids(col)|  ∈ [0, 1]
//
//	It is the standard way to line up two independent categorizations of
//	the same entities: cell-type caller vs. cluster, tumor/normal call vs.
//	pathology annotation, old pipeline vs. new pipeline.
//
// ✨ Key properties:
//
//   - Pure — no I/O, no hidden state; identical inputs yield identical
//     (bit-for-bit) matrices. Safe for concurrent callers.
//   - Total — a cell over two empty identifier sets is 0, never NaN.
//   - Deterministic — rows and columns are lexicographically sorted unless
//     reordered via WithRowOrder / WithColOrder.
//   - Tolerant — identifiers defined in only one assignment are excluded
//     from the comparison; no pre-validation of the universes is required.
//   - Missing-free — label.Missing never forms a row or column; remap domain
//     sentinels with label.Assignment.MarkMissing before calling.
//
// ⚙️ Usage:
//
//	m, err := overlap.Compute(a, b)
//	if err != nil {
//	  // errors.Is(err, overlap.ErrInvalidInput) — skip this comparison
//	}
//	score, _ := m.At("Tumor", "Cluster3")
//	best, s, _ := m.BestMatch("Tumor")
//
// Error policy: the only failures are invalid-input failures
// (ErrEmptyAssignment, ErrNoLabels, both matching ErrInvalidInput) and
// option violations (ErrBadOrder). Nothing is retried, logged, or partially
// returned; callers treating the result as a best-effort descriptive
// statistic should skip the comparison on error rather than abort.
//
// Complexity: O(R·C·g) time for R row labels, C column labels, and mean
// group size g; O(R·C) memory for the result.
package overlap
