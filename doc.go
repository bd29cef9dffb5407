// Package matcalc is a small calculator for classical dense linear algebra:
// solve a linear system, compute a determinant, compute an inverse.
//
// 🚀 What is matcalc?
//
//	A dependency-light toolkit built around one elimination engine:
//		• Gauss-Jordan solve with partial pivoting
//		• Determinant by forward elimination (singular → exactly 0)
//		• Inverse via [A | I] reduction
//		• RREF of any augmented system, classified as unique / infinite / inconsistent
//
// ✨ Guarantees
//
//   - Inputs are never mutated; every call works on its own copy.
//   - Shape problems and singular matrices come back as typed errors
//     (errors.Is with gaussjordan.ErrDimension / gaussjordan.ErrSingular).
//   - Stateless and reentrant: no goroutines, no globals.
//
// Under the hood:
//
//	matrix/      — Dense storage, validators, Mul / MatVec / Residual helpers
//	gaussjordan/ — Solve, Determinant, Inverse, Reduce
//	parse/       — equations ("2x + y = 3") and numeric text into numbers
//	matrixio/    — YAML matrix documents
//	report/      — fixed-precision text rendering
//	cmd/matcalc  — the command-line calculator
//
// Quick example:
//
//	    2x + y = 3
//	     x + y = 2      →   x = 1, y = 1
//
//	go run ./cmd/matcalc solve --equations "2x + y = 3; x + y = 2"
package matcalc
