package gaussjordan_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

// hide masks the concrete *Dense type so the engine reads through the interface.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from row literals or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// diagDominant returns a deterministic n×n matrix with U(-1,1) entries and
// n added on the diagonal, which keeps it comfortably non-singular.
func diagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n)
	}

	return mustRows(t, rows)
}

// randVec returns n deterministic U(-10,10) values.
func randVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*20 - 10
	}

	return v
}

// maxAbs is the largest |entry| of m, at least 1; used to scale tolerances.
func maxAbs(m *matrix.Dense) float64 {
	scale := 1.0
	for _, row := range m.ToRows() {
		for _, v := range row {
			scale = math.Max(scale, math.Abs(v))
		}
	}

	return scale
}
