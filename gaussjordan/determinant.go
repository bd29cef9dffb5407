package gaussjordan

import (
	"math"

	"github.com/katalvlaran/matcalc/matrix"
)

const opDeterminant = "Determinant"

// Determinant returns det(m) for a square m.
//
// Forward elimination with partial pivoting tracks the product of pivots and
// flips the sign on every row swap. A pivot with |p| ≤ eps means m is singular
// and the result is exactly 0; Determinant never returns ErrSingular.
// A 1×1 matrix returns its single element.
//
// Errors: matrix.ErrNilMatrix, ErrDimension (non-square), matrix.ErrNaNInf.
func Determinant(m matrix.Matrix, opts ...Option) (float64, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, engineErrorf(opDeterminant, err)
	}
	o := NewOptions(opts...)

	w, err := load(m)
	if err != nil {
		return 0, engineErrorf(opDeterminant, err)
	}
	n := m.Rows()
	if n == 1 {
		return w.rows[0][0], nil
	}

	det := 1.0
	for k := 0; k < n; k++ {
		p, pv := w.pivotRow(k, k)
		if math.Abs(pv) <= o.eps {
			return 0, nil
		}
		if p != k {
			w.swap(p, k)
			det = -det
		}
		det *= pv

		pivot := w.rows[k]
		for r := k + 1; r < n; r++ {
			row := w.rows[r]
			f := row[k] / pv
			if f == 0 {
				continue
			}
			for c := k; c < n; c++ {
				row[c] -= f * pivot[c]
			}
		}
	}

	return det, nil
}
