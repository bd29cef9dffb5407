// SPDX-License-Identifier: MIT

package matrix

import "math"

const opResidual = "Residual"

// Residual returns r = a·x - b, the per-equation error of a candidate solution x.
//
// Contract: len(x) == a.Cols(), len(b) == a.Rows().
// Complexity: O(r·c).
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	for i := range ax {
		ax[i] -= b[i]
	}

	return ax, nil
}

// NormInf is the largest |v[i]|; 0 for an empty vector.
func NormInf(v []float64) float64 {
	var m float64
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}

	return m
}
