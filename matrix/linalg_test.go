// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the dense kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

func TestMul_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 4, 3)
	B := MustDense(t, 3, 5)
	RandomFill(t, A, 7)
	RandomFill(t, B, 11)

	fast, err := matrix.Mul(A, B)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{A}, hide{B})
	require.NoError(t, err)

	r, c := fast.Shape()
	require.Equal(t, 4, r)
	require.Equal(t, 5, c)
	ok, err := matrix.AllClose(fast, slow, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMul_Known(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	B := MustRows(t, [][]float64{{5, 6}, {7, 8}})

	C, err := matrix.Mul(A, B)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, C)

	_, err = matrix.Mul(A, MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	A := MustRows(t, [][]float64{{2, 1}, {1, 1}})

	y, err := matrix.MatVec(A, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 2}, y)

	y, err = matrix.MatVec(hide{A}, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 2}, y)

	_, err = matrix.MatVec(A, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}})
	b := MustRows(t, [][]float64{{1 + 1e-12, 2}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAugmentAndColumns(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	aug, err := matrix.Augment(A, hide{I})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 1, 0}, {3, 4, 0, 1}}, aug)

	right, err := matrix.Columns(aug, 2, 4)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, right)

	_, err = matrix.Columns(aug, 3, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Columns(aug, 0, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Augment(A, MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestColumnVector(t *testing.T) {
	v, err := matrix.ColumnVector([]float64{3, 2})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{3}, {2}}, v)

	_, err = matrix.ColumnVector(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
