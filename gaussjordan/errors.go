package gaussjordan

import (
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// ErrDimension is returned when an operation's shape preconditions are violated:
// a non-square matrix for Solve/Determinant/Inverse, or a right-hand side whose
// length differs from the number of rows.
var ErrDimension = matrix.ErrDimensionMismatch

// ErrSingular is returned by Solve and Inverse when no unique result exists.
var ErrSingular = matrix.ErrSingular

// SingularError describes the pivot that stopped an elimination.
// It unwraps to ErrSingular.
type SingularError struct {
	Op     string  // operation that failed (Solve, Inverse)
	Column int     // zero-based pivot column
	Pivot  float64 // best pivot candidate found in that column
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("pivot %g in column %d is within tolerance of zero: %v", e.Pivot, e.Column, ErrSingular)
}

// Unwrap lets errors.Is(err, ErrSingular) match.
func (e *SingularError) Unwrap() error { return ErrSingular }

// engineErrorf tags err with the operation name, keeping the cause for errors.Is/As.
func engineErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
