// Package gaussjordan solves dense linear systems, computes determinants and
// inverts square matrices by Gauss-Jordan elimination.
//
// The package offers four stateless operations over matrix.Matrix inputs:
//
//   - Solve: the unique solution x of A·x = b for square, non-singular A.
//     Method: reduce [A | b] to reduced row-echelon form and read the last column.
//   - Determinant: sign × product of pivots from forward elimination.
//     A pivot within tolerance of zero yields exactly 0 (never an error).
//   - Inverse: reduce [A | I] and read the right half.
//   - Reduce: reduced row-echelon form of an arbitrary augmented matrix plus
//     the nature of its solution set (unique, infinitely many, none).
//
// # Pivoting
//
// Every operation uses partial pivoting: at step k the row with the largest
// |a[i][k]| among rows i ≥ k is swapped into place (ties keep the lowest row
// index). Compared with first-nonzero pivoting this leaves results on
// well-conditioned inputs unchanged and avoids dividing by tiny pivots on
// ill-conditioned ones. A pivot whose magnitude is ≤ epsilon (DefaultEpsilon,
// see WithEpsilon) is treated as zero.
//
// # Errors
//
// Shape violations are reported before any arithmetic as ErrDimension
// (matrix.ErrDimensionMismatch). Solve and Inverse report a zero pivot as a
// *SingularError that matches ErrSingular. Inputs are never mutated; every
// call works on its own copy and keeps no state between calls, so concurrent
// calls on independently owned inputs are safe.
//
// Complexity: O(n³) time and O(n²) memory for an n×n system.
package gaussjordan
