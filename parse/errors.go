// SPDX-License-Identifier: MIT

package parse

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root of every parse failure.
var ErrInvalidInput = errors.New("parse: invalid input")

// errEmpty is returned when the text holds nothing but whitespace.
var errEmpty = fmt.Errorf("%w: empty input", ErrInvalidInput)

// SyntaxError locates a parse failure.
// Line is the 1-based line (or matrix row); Pos is the 1-based byte column in that line.
type SyntaxError struct {
	Line int
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Pos, e.Msg)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match.
func (e *SyntaxError) Unwrap() error { return ErrInvalidInput }

func syntaxErrorf(line, pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
