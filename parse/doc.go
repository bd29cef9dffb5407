// SPDX-License-Identifier: MIT

// Package parse turns user-typed text into numbers for the elimination engine.
//
// Three shapes of input are understood:
//
//   - Equations: one linear equation per line, e.g. "2x + y = 3". Terms are an
//     optional sign, an optional decimal coefficient and a variable name (a
//     letter followed by optional digits, e.g. x, y, x1). The right-hand side
//     is a single signed number. Repeated variables in one equation accumulate;
//     variables are ordered by first appearance across all lines.
//   - Matrix: rows separated by newlines or ';', entries by whitespace or ','.
//   - Vector: entries separated by whitespace, ',' or ';'.
//
// Every failure matches ErrInvalidInput via errors.Is. Failures tied to a place
// in the text are *SyntaxError values carrying a 1-based line and position.
package parse
