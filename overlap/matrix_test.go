package overlap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labelmatch/label"
	"github.com/katalvlaran/labelmatch/overlap"
)

// TestMatrix_AtUnknownLabel verifies the ErrUnknownLabel sentinel on both axes.
func TestMatrix_AtUnknownLabel(t *testing.T) {
	a, b := tumorNormal()
	m, err := overlap.Compute(a, b)
	require.NoError(t, err)

	_, err = m.At("Ghost", "Tumor")
	assert.ErrorIs(t, err, overlap.ErrUnknownLabel, "unknown row label must error")

	_, err = m.At("Tumor", "Ghost")
	assert.ErrorIs(t, err, overlap.ErrUnknownLabel, "unknown column label must error")
}

// TestMatrix_AtIndexBounds verifies ErrOutOfRange on every invalid index.
func TestMatrix_AtIndexBounds(t *testing.T) {
	a, b := tumorNormal()
	m, err := overlap.Compute(a, b)
	require.NoError(t, err)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.AtIndex(idx[0], idx[1])
		assert.ErrorIs(t, err, overlap.ErrOutOfRange, "index (%d,%d) must be rejected", idx[0], idx[1])
	}

	v, err := m.AtIndex(1, 1)
	require.NoError(t, err)
	tt, _ := m.At("Tumor", "Tumor")
	assert.Equal(t, tt, v, "AtIndex must agree with At under sorted order")
}

// TestMatrix_DenseIsACopy verifies that mutating Dense output leaves the
// matrix untouched.
func TestMatrix_DenseIsACopy(t *testing.T) {
	a, b := tumorNormal()
	m, err := overlap.Compute(a, b)
	require.NoError(t, err)

	d := m.Dense()
	d[0][0] = 42

	v, err := m.AtIndex(0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, 42.0, v, "Dense must hand out an independent copy")
}

// TestMatrix_RowsColsAreCopies verifies the axis accessors do not expose
// internal storage.
func TestMatrix_RowsColsAreCopies(t *testing.T) {
	a, b := tumorNormal()
	m, err := overlap.Compute(a, b)
	require.NoError(t, err)

	rows := m.Rows()
	rows[0] = "Mutated"
	assert.Equal(t, []label.Value{"Normal", "Tumor"}, m.Rows(), "Rows must return a copy")

	cols := m.Cols()
	cols[0] = "Mutated"
	assert.Equal(t, []label.Value{"Normal", "Tumor"}, m.Cols(), "Cols must return a copy")
}

// TestMatrix_TransposeTwiceIsIdentity verifies a double transpose restores
// the original table.
func TestMatrix_TransposeTwiceIsIdentity(t *testing.T) {
	a, b := tumorNormal()
	m, err := overlap.Compute(a, b)
	require.NoError(t, err)

	tr := m.Transpose().Transpose()
	assert.Equal(t, m.Rows(), tr.Rows())
	assert.Equal(t, m.Cols(), tr.Cols())
	assert.Equal(t, m.Dense(), tr.Dense())
}

// TestMatrix_BestMatch verifies best-column lookup and its error path.
func TestMatrix_BestMatch(t *testing.T) {
	a, b := tumorNormal()
	m, err := overlap.Compute(a, b)
	require.NoError(t, err)

	best, score, err := m.BestMatch("Tumor")
	require.NoError(t, err)
	assert.Equal(t, label.Value("Tumor"), best, "Tumor overlaps Tumor (0.5) more than Normal (1/3)")
	assert.Equal(t, 0.5, score)

	_, _, err = m.BestMatch("Ghost")
	assert.ErrorIs(t, err, overlap.ErrUnknownLabel)
}

// TestMatrix_BestMatchTieBreak verifies deterministic tie resolution: the
// earliest column in matrix order wins.
func TestMatrix_BestMatchTieBreak(t *testing.T) {
	// Row "T" covers {c1,c2}; columns "A" = {c1}, "B" = {c2} both score 0.5.
	a := label.Assignment{"c1": "T", "c2": "T"}
	b := label.Assignment{"c1": "A", "c2": "B"}

	m, err := overlap.Compute(a, b)
	require.NoError(t, err)

	best, score, err := m.BestMatch("T")
	require.NoError(t, err)
	assert.Equal(t, label.Value("A"), best, "lexicographically first column must win the tie")
	assert.Equal(t, 0.5, score)
}
