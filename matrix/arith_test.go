// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

func TestResidual(t *testing.T) {
	A := MustRows(t, [][]float64{{2, 1}, {1, 1}})

	r, err := matrix.Residual(A, []float64{1, 1}, []float64{3, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, r)

	r, err = matrix.Residual(A, []float64{1, 0}, []float64{3, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1}, r)
	require.Equal(t, 1.0, matrix.NormInf(r))

	_, err = matrix.Residual(A, []float64{1, 1}, []float64{3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Residual(A, []float64{1}, []float64{3, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNormInf(t *testing.T) {
	require.Equal(t, 0.0, matrix.NormInf(nil))
	require.Equal(t, 3.0, matrix.NormInf([]float64{1, -3, 2}))
}
