package label

// ID uniquely identifies a labeled entity (e.g., a single-cell barcode).
// It is opaque to this library; determinism relies only on its lexicographic
// ordering.
type ID string

// Value is a category label produced by some upstream classifier.
// The zero value is the canonical missing sentinel (see Missing).
type Value string

// Missing is the single missing/undefined label sentinel. Entries carrying
// Missing stay in the Assignment (they count toward Len) but are excluded
// from Values, Groups, and IDs. Callers whose data uses other sentinels
// ("not.defined", NA, ...) remap them via MarkMissing.
const Missing Value = ""

// Pair couples an identifier with its label; the unit of FromPairs.
type Pair struct {
	ID    ID
	Value Value
}

// Assignment maps each identifier to its category label. It is the
// LabelAssignment consumed by overlap.Compute: read-only from this package's
// point of view, built once from upstream classification output.
type Assignment map[ID]Value

// FromPairs builds an Assignment from explicit pairs.
// Later pairs overwrite earlier ones for the same ID (last-write-wins).
func FromPairs(pairs ...Pair) Assignment {
	a := make(Assignment, len(pairs))
	for _, p := range pairs {
		a[p.ID] = p.Value
	}

	return a
}

// FromColumns builds an Assignment from two parallel columns, the shape label
// data usually arrives in from tabular artifacts (rows = identifiers).
// Returns ErrLengthMismatch when the columns differ in length.
// Later rows overwrite earlier ones for the same ID (last-write-wins).
func FromColumns(ids []ID, values []Value) (Assignment, error) {
	if len(ids) != len(values) {
		return nil, ErrLengthMismatch
	}

	a := make(Assignment, len(ids))
	for i, id := range ids {
		a[id] = values[i]
	}

	return a, nil
}
