package gaussjordan

import (
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

const opSolve = "Solve"

// Solve returns x such that a·x = b.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square) and len(b) == a.Rows().
//   - Stage 2: build [a | b] with matrix.Augment and copy it into a workspace.
//   - Stage 3: Gauss-Jordan with partial pivoting over the n coefficient columns.
//   - Stage 4: read the last column in row order; every value must be finite.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDimension (non-square a or wrong len(b)),
//     matrix.ErrNaNInf (non-finite input, or a solution that overflows),
//     *SingularError (matches ErrSingular).
//
// Complexity: O(n³) time, O(n²) memory.
func Solve(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, engineErrorf(opSolve, err)
	}
	n := a.Rows()
	if len(b) != n {
		return nil, engineErrorf(opSolve, fmt.Errorf("rhs has %d entries, want %d: %w", len(b), n, ErrDimension))
	}
	o := NewOptions(opts...)

	for i, v := range b {
		if !isFinite(v) {
			return nil, engineErrorf(opSolve, fmt.Errorf("rhs[%d]: %w", i, matrix.ErrNaNInf))
		}
	}
	rhs, err := matrix.ColumnVector(b)
	if err != nil {
		return nil, engineErrorf(opSolve, err)
	}
	aug, err := matrix.Augment(a, rhs)
	if err != nil {
		return nil, engineErrorf(opSolve, err)
	}
	w, err := load(aug)
	if err != nil {
		return nil, engineErrorf(opSolve, err)
	}

	if err = w.gaussJordan(opSolve, n, o.eps); err != nil {
		return nil, engineErrorf(opSolve, err)
	}

	x := w.column(n)
	for i, v := range x {
		if !isFinite(v) {
			return nil, engineErrorf(opSolve, fmt.Errorf("x[%d]: %w", i, matrix.ErrNaNInf))
		}
	}

	return x, nil
}
