// SPDX-License-Identifier: MIT

package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// System is a set of linear equations in augmented form.
type System struct {
	// Vars names the unknowns in order of first appearance.
	Vars []string
	// Augmented holds one row per equation: a coefficient per Vars entry, then the rhs.
	Augmented [][]float64
}

// Coefficients returns a copy of the coefficient block (every column but the last).
func (s *System) Coefficients() [][]float64 {
	out := make([][]float64, len(s.Augmented))
	for i, row := range s.Augmented {
		out[i] = append([]float64(nil), row[:len(row)-1]...)
	}

	return out
}

// RHS returns a copy of the right-hand side column.
func (s *System) RHS() []float64 {
	out := make([]float64, len(s.Augmented))
	for i, row := range s.Augmented {
		out[i] = row[len(row)-1]
	}

	return out
}

// DefaultVars names n unknowns x1..xn, used when a system comes in as plain numbers.
func DefaultVars(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("x%d", i+1)
	}

	return out
}

// NewSystem wraps an augmented matrix with default variable names.
// Rows must be non-empty, equally long and hold at least one coefficient.
func NewSystem(augmented [][]float64) (*System, error) {
	if len(augmented) == 0 || len(augmented[0]) < 2 {
		return nil, fmt.Errorf("%w: augmented matrix needs at least one coefficient column and a rhs", ErrInvalidInput)
	}
	width := len(augmented[0])
	rows := make([][]float64, len(augmented))
	for i, row := range augmented {
		if len(row) != width {
			return nil, syntaxErrorf(i+1, 1, "row has %d entries, want %d", len(row), width)
		}
		rows[i] = append([]float64(nil), row...)
	}

	return &System{Vars: DefaultVars(width - 1), Augmented: rows}, nil
}

// Equations parses one linear equation per non-blank line.
//
// Example:
//
//	2x + y = 3
//	x + y = 2
//
// gives Vars [x y] and Augmented [[2 1 3] [1 1 2]]. A variable that does not
// appear in an equation has coefficient 0 there.
func Equations(text string) (*System, error) {
	type equation struct {
		coeffs map[string]float64
		rhs    float64
	}

	var (
		eqs  []equation
		vars []string
		seen = make(map[string]bool)
	)
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		coeffs, order, rhs, err := parseEquation(i+1, line)
		if err != nil {
			return nil, err
		}
		for _, name := range order {
			if !seen[name] {
				seen[name] = true
				vars = append(vars, name)
			}
		}
		eqs = append(eqs, equation{coeffs: coeffs, rhs: rhs})
	}
	if len(eqs) == 0 {
		return nil, errEmpty
	}

	aug := make([][]float64, len(eqs))
	for i, eq := range eqs {
		row := make([]float64, len(vars)+1)
		for j, name := range vars {
			row[j] = eq.coeffs[name]
		}
		row[len(vars)] = eq.rhs
		aug[i] = row
	}

	return &System{Vars: vars, Augmented: aug}, nil
}

// parseEquation splits one line at '=' and scans both sides.
func parseEquation(line int, src string) (map[string]float64, []string, float64, error) {
	eq := strings.IndexByte(src, '=')
	if eq < 0 {
		return nil, nil, 0, syntaxErrorf(line, len(src)+1, "missing '='")
	}
	if extra := strings.IndexByte(src[eq+1:], '='); extra >= 0 {
		return nil, nil, 0, syntaxErrorf(line, eq+extra+2, "more than one '='")
	}

	sc := scanner{line: line, src: src[:eq]}
	coeffs, order, err := sc.terms()
	if err != nil {
		return nil, nil, 0, err
	}

	right := strings.TrimSpace(src[eq+1:])
	if right == "" {
		return nil, nil, 0, syntaxErrorf(line, eq+2, "missing right-hand side")
	}
	rhs, err := number(line, token{text: strings.ReplaceAll(right, " ", ""), pos: eq + 2})
	if err != nil {
		return nil, nil, 0, err
	}

	return coeffs, order, rhs, nil
}

// scanner walks the left-hand side of one equation.
type scanner struct {
	line int
	src  string
	i    int
}

func (s *scanner) skipSpace() {
	for s.i < len(s.src) && (s.src[s.i] == ' ' || s.src[s.i] == '\t') {
		s.i++
	}
}

func isLetter(b byte) bool { return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }

// terms reads `[sign] [coef] [*] var` repeatedly. Every term after the first
// must start with '+' or '-'.
func (s *scanner) terms() (map[string]float64, []string, error) {
	coeffs := make(map[string]float64)
	var order []string
	for first := true; ; first = false {
		s.skipSpace()
		if s.i >= len(s.src) {
			if first {
				return nil, nil, syntaxErrorf(s.line, 1, "missing left-hand side")
			}

			return coeffs, order, nil
		}

		sign := 1.0
		switch c := s.src[s.i]; {
		case c == '+':
			s.i++
		case c == '-':
			sign = -1
			s.i++
		case !first:
			return nil, nil, syntaxErrorf(s.line, s.i+1, "expected '+' or '-' before %q", string(c))
		}

		s.skipSpace()
		coef, err := s.coefficient()
		if err != nil {
			return nil, nil, err
		}
		s.skipSpace()
		if s.i < len(s.src) && s.src[s.i] == '*' {
			s.i++
			s.skipSpace()
		}
		name, err := s.variable()
		if err != nil {
			return nil, nil, err
		}

		if _, ok := coeffs[name]; !ok {
			order = append(order, name)
		}
		coeffs[name] += sign * coef
	}
}

// coefficient reads an unsigned decimal; an absent coefficient is 1.
func (s *scanner) coefficient() (float64, error) {
	start := s.i
	for s.i < len(s.src) && (isDigit(s.src[s.i]) || s.src[s.i] == '.') {
		s.i++
	}
	if s.i == start {
		return 1, nil
	}
	v, err := strconv.ParseFloat(s.src[start:s.i], 64)
	if err != nil {
		return 0, syntaxErrorf(s.line, start+1, "invalid coefficient %q", s.src[start:s.i])
	}

	return v, nil
}

// variable reads a letter followed by optional digits.
func (s *scanner) variable() (string, error) {
	if s.i >= len(s.src) || !isLetter(s.src[s.i]) {
		return "", syntaxErrorf(s.line, s.i+1, "expected variable name")
	}
	start := s.i
	s.i++
	for s.i < len(s.src) && isDigit(s.src[s.i]) {
		s.i++
	}

	return s.src[start:s.i], nil
}
