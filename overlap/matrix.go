package overlap

import (
	"fmt"

	"github.com/katalvlaran/labelmatch/label"
)

// Matrix is the result of Compute: a labeled 2-D table of Jaccard scores.
// Rows carry the distinct labels of the first assignment, columns those of
// the second. A Matrix is immutable after construction; every accessor that
// exposes internal storage returns a copy.
type Matrix struct {
	rows []label.Value
	cols []label.Value

	rowIndex map[label.Value]int
	colIndex map[label.Value]int

	// data[i][j] — Jaccard score for (rows[i], cols[j]); always in [0,1].
	data [][]float64
}

// newMatrix wires up a Matrix over its axis labels and cell storage.
// The caller hands over ownership of all arguments.
func newMatrix(rows, cols []label.Value, data [][]float64) *Matrix {
	m := &Matrix{
		rows:     rows,
		cols:     cols,
		rowIndex: make(map[label.Value]int, len(rows)),
		colIndex: make(map[label.Value]int, len(cols)),
		data:     data,
	}
	for i, r := range rows {
		m.rowIndex[r] = i
	}
	for j, c := range cols {
		m.colIndex[c] = j
	}

	return m
}

// Rows returns the row labels in matrix order. The slice is a copy.
// Complexity: O(R).
func (m *Matrix) Rows() []label.Value {
	return append([]label.Value(nil), m.rows...)
}

// Cols returns the column labels in matrix order. The slice is a copy.
// Complexity: O(C).
func (m *Matrix) Cols() []label.Value {
	return append([]label.Value(nil), m.cols...)
}

// At returns the Jaccard score for a (row label, column label) pair.
// Returns ErrUnknownLabel when either label is not on the matching axis.
// Complexity: O(1).
func (m *Matrix) At(r, c label.Value) (float64, error) {
	i, ok := m.rowIndex[r]
	if !ok {
		return 0, fmt.Errorf("%w: row %q", ErrUnknownLabel, r)
	}
	j, ok := m.colIndex[c]
	if !ok {
		return 0, fmt.Errorf("%w: column %q", ErrUnknownLabel, c)
	}

	return m.data[i][j], nil
}

// AtIndex returns the score at position (i, j) in matrix order.
// Returns ErrOutOfRange for indices outside [0,R)×[0,C).
// Complexity: O(1).
func (m *Matrix) AtIndex(i, j int) (float64, error) {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.cols) {
		return 0, ErrOutOfRange
	}

	return m.data[i][j], nil
}

// Dense returns a row-major copy of the cells, aligned with Rows and Cols.
// Mutating the copy never affects the Matrix. Intended for callers that
// render or persist the table.
// Complexity: O(R·C).
func (m *Matrix) Dense() [][]float64 {
	out := make([][]float64, len(m.data))
	for i, row := range m.data {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// Transpose returns a new Matrix with axes swapped and identical values:
// Transpose(Compute(a,b)) equals Compute(b,a) cell-for-cell.
// Complexity: O(R·C).
func (m *Matrix) Transpose() *Matrix {
	data := make([][]float64, len(m.cols))
	for j := range m.cols {
		data[j] = make([]float64, len(m.rows))
		for i := range m.rows {
			data[j][i] = m.data[i][j]
		}
	}

	return newMatrix(m.Cols(), m.Rows(), data)
}

// BestMatch returns the column label with the highest overlap for row r,
// together with its score. Ties resolve to the earliest column in matrix
// order, so the answer is deterministic for a given matrix.
// Returns ErrUnknownLabel when r is not a row label.
// Complexity: O(C).
func (m *Matrix) BestMatch(r label.Value) (label.Value, float64, error) {
	i, ok := m.rowIndex[r]
	if !ok {
		return "", 0, fmt.Errorf("%w: row %q", ErrUnknownLabel, r)
	}

	best, score := 0, m.data[i][0]
	for j := 1; j < len(m.cols); j++ {
		if m.data[i][j] > score {
			best, score = j, m.data[i][j]
		}
	}

	return m.cols[best], score, nil
}
