package gaussjordan

import "github.com/katalvlaran/matcalc/matrix"

const opInverse = "Inverse"

// Inverse returns m⁻¹ for a square, non-singular m.
//
// Blueprint:
//
//	Stage 1 (Validate): m non-nil and square.
//	Stage 2 (Prepare): workspace [m | I] built with matrix.Augment.
//	Stage 3 (Execute): Gauss-Jordan over the left block; every identity column
//	                   is carried as a simultaneous right-hand side.
//	Stage 4 (Finalize): copy the right block with matrix.Columns.
//
// Inverse(I) returns I exactly: unit pivots and zero multipliers leave every
// entry untouched.
//
// Errors: matrix.ErrNilMatrix, ErrDimension, matrix.ErrNaNInf (non-finite input
// or an inverse that overflows), *SingularError.
// Complexity: O(n³) time, O(n²) memory.
func Inverse(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, engineErrorf(opInverse, err)
	}
	o := NewOptions(opts...)

	n := m.Rows()
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, engineErrorf(opInverse, err)
	}
	aug, err := matrix.Augment(m, id)
	if err != nil {
		return nil, engineErrorf(opInverse, err)
	}
	w, err := load(aug)
	if err != nil {
		return nil, engineErrorf(opInverse, err)
	}

	if err = w.gaussJordan(opInverse, n, o.eps); err != nil {
		return nil, engineErrorf(opInverse, err)
	}

	reduced, err := w.toDense()
	if err != nil {
		return nil, engineErrorf(opInverse, err)
	}
	inv, err := matrix.Columns(reduced, n, 2*n)
	if err != nil {
		return nil, engineErrorf(opInverse, err)
	}

	return inv, nil
}
