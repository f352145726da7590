// Package labelmatch is a small toolkit for comparing categorical labelings
// of a shared identifier universe — e.g., two cell-type callers classifying
// the same single-cell barcodes, or two clusterings of the same samples.
//
// 🚀 What is labelmatch?
//
//	A pure, in-memory library that answers one question well: given two
//	independent label assignments over the same identifiers, how much does
//	each category of one overlap each category of the other?
//		• label/   — identifier→category primitives: build, filter, group
//		• overlap/ — the pairwise Jaccard overlap matrix + best-match lookup
//
// ✨ Why choose labelmatch?
//
//   - Minimal API — one entry point (overlap.Compute), explicit types
//   - Deterministic — lexicographic label order, reproducible cells
//   - Pure Go — no I/O, no hidden state, safe for concurrent callers
//   - Policy-free core — missing-label conventions stay on the caller's side
//     (label.Assignment.MarkMissing is the hook)
//
// Quick example:
//
//	a := label.FromPairs(
//	  label.Pair{ID: "id1", Value: "Tumor"},
//	  label.Pair{ID: "id2", Value: "Tumor"},
//	  label.Pair{ID: "id3", Value: "Normal"},
//	)
//	b := label.FromPairs(
//	  label.Pair{ID: "id1", Value: "Tumor"},
//	  label.Pair{ID: "id2", Value: "Normal"},
//	  label.Pair{ID: "id3", Value: "Normal"},
//	)
//	m, err := overlap.Compute(a, b)
//	// m.At("Tumor", "Tumor") == 0.5
//
// Dive into the package docs of label/ and overlap/ for the full contract,
// and examples/ for an end-to-end scenario.
//
//	go get github.com/katalvlaran/labelmatch
package labelmatch
