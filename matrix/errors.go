// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and re-exported by the elimination engine. Algorithms MUST return
// these sentinels (optionally wrapped with an operation tag) and tests MUST
// check them via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines can be grepped
// across packages. Wrap with fmt.Errorf("Op: %w", ErrX) at the call site;
// callers keep matching with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> NaN/Inf -> dimension mismatch -> singularity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a row-wise input carries no rows/columns at all.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when a pivot within tolerance of zero is met
	// while a unique solution or an inverse is required.
	ErrSingular = errors.New("matrix: singular matrix")
)

// ErrNonSquare signals that a square matrix was required but the input wasn't.
// It wraps ErrDimensionMismatch so both sentinels match via errors.Is.
var ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

// ErrRaggedRows signals row-wise input whose rows differ in length.
// It wraps ErrDimensionMismatch.
var ErrRaggedRows = fmt.Errorf("%w: rows have different lengths", ErrDimensionMismatch)
