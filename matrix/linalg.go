// SPDX-License-Identifier: MIT
// Package matrix provides the dense kernels the elimination engine and its
// callers rely on: products used to verify solutions, tolerance comparison,
// and block helpers that build and split augmented matrices.
//
// Notes:
//   - All kernels validate through validators.go and wrap failures via matrixErrorf.
//   - Results are always freshly allocated Dense values; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for dot-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opMatVec   = "MatVec"
	opAllClose = "AllClose"
	opAugment  = "Augment"
	opColumns  = "Columns"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k via At.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - Negative tolerances are normalized to their absolute value; NaN/Inf tolerances
//     are rejected with ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil // early exit on first violation
			}
		}
	}

	return true, nil
}

// Augment concatenates a and b horizontally into a fresh [a | b].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when a.Rows() != b.Rows().
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}

	r, ca, cb := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(r, ca+cb)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	stride := ca + cb
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < ca; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAugment, err)
			}
			res.data[i*stride+j] = v
		}
		for j := 0; j < cb; j++ {
			if v, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAugment, err)
			}
			res.data[i*stride+ca+j] = v
		}
	}

	return res, nil
}

// Columns copies the column block [from, to) of m into a fresh Dense.
// Errors: ErrNilMatrix, ErrOutOfRange for an empty or out-of-bounds block.
func Columns(m Matrix, from, to int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumns, err)
	}
	if from < 0 || to > m.Cols() || from >= to {
		return nil, matrixErrorf(opColumns, fmt.Errorf("[%d,%d) of %d columns: %w", from, to, m.Cols(), ErrOutOfRange))
	}

	r, w := m.Rows(), to-from
	res, err := NewDense(r, w)
	if err != nil {
		return nil, matrixErrorf(opColumns, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < w; j++ {
			if v, err = m.At(i, from+j); err != nil {
				return nil, matrixErrorf(opColumns, err)
			}
			res.data[i*w+j] = v
		}
	}

	return res, nil
}

// ColumnVector wraps x as an n×1 Dense (copying the values).
// Errors: ErrInvalidDimensions for an empty x.
func ColumnVector(x []float64) (*Dense, error) {
	res, err := NewDense(len(x), 1)
	if err != nil {
		return nil, err
	}
	copy(res.data, x)

	return res, nil
}
