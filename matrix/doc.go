// Package matrix provides the dense float64 container used by the
// Gauss-Jordan engine and its callers.
//
// The matrix package provides:
//
//   - Matrix, a small interface over fixed-shape two-dimensional arrays, and
//     Dense, its row-major implementation with bounds-checked At/Set.
//   - NewFromRows, which validates row-wise input once (non-empty, rectangular,
//     finite) and reports every violation together.
//   - Kernels used to build and verify results: Mul, MatVec, Residual/NormInf,
//     AllClose, Augment, Columns and ColumnVector.
//   - Canonical validators and sentinel errors (ErrDimensionMismatch,
//     ErrNonSquare, ErrSingular, ...) matched with errors.Is.
//
// Every kernel allocates a fresh result; operands are never mutated.
package matrix
