// Package label defines the identifier→category primitives consumed by the
// overlap package: opaque identifiers, category values, and the Assignment
// mapping between them.
//
// 🚀 What is an Assignment?
//
//	A plain map from an identifier (e.g., a cell barcode) to a category
//	value (e.g., a cell type). It is the minimal, explicit form of the
//	"label column" that classification pipelines usually carry inside a
//	wide tabular record — stripped of every unrelated field.
//
// ✨ Key points:
//
//   - Missing labels are first-class: label.Missing (the empty value) is
//     always excluded from distinct-value listings and group formation.
//   - Domain sentinels ("not.defined", "low.conf*", NA-likes) are the
//     caller's policy: remap them with Assignment.MarkMissing before
//     handing the assignment to any consumer. The core never pattern-matches
//     strings.
//   - Grouping is deterministic: Values() returns distinct labels in
//     lexicographic order, and Groups() keys exactly match Values().
//
// ⚙️ Usage:
//
//	ids := []label.ID{"AAAC-1", "AAAG-1", "AACT-1"}
//	calls := []label.Value{"Tumor", "Tumor", "not.defined"}
//
//	a, err := label.FromColumns(ids, calls)
//	if err != nil { ... }
//
//	// Treat the caller's sentinel as missing.
//	a = a.MarkMissing(func(v label.Value) bool { return v == "not.defined" })
//
//	a.Len()     // 3 — all entries, missing included
//	a.Defined() // 2 — entries with a usable label
//	a.Values()  // [Tumor]
//
// All operations are read-only on the receiver; mutating constructors return
// fresh copies.
package label
