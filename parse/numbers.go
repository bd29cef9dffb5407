// SPDX-License-Identifier: MIT

package parse

import (
	"math"
	"strconv"
	"strings"
)

// token is one entry of a numeric row together with its 1-based column.
type token struct {
	text string
	pos  int
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// fields splits s on whitespace and commas, remembering where each entry starts.
// A comma must sit between two entries: ",1", "1,,2" and "1," are rejected.
func fields(line int, s string) ([]token, error) {
	var out []token
	start := -1
	comma := 0 // 1-based column of a comma still waiting for its entry, or 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && !isBlank(s[i]) && s[i] != ',' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, token{text: s[start:i], pos: start + 1})
			start, comma = -1, 0
		}
		if i < len(s) && s[i] == ',' {
			if comma > 0 || len(out) == 0 {
				return nil, syntaxErrorf(line, i+1, "empty entry before ','")
			}
			comma = i + 1
		}
	}
	if comma > 0 {
		return nil, syntaxErrorf(line, comma, "empty entry after ','")
	}

	return out, nil
}

// number parses one finite float64 entry.
func number(line int, t token) (float64, error) {
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return 0, syntaxErrorf(line, t.pos, "invalid number %q", t.text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, syntaxErrorf(line, t.pos, "non-finite number %q", t.text)
	}

	return v, nil
}

// Matrix parses a rectangular block of numbers.
// Rows are separated by newlines or ';'; blank rows are skipped.
// Every row must have as many entries as the first one. In a *SyntaxError
// Line counts row segments, blank ones included, and Pos is relative to the segment.
func Matrix(text string) ([][]float64, error) {
	var out [][]float64
	line := 0
	for _, physical := range strings.Split(text, "\n") {
		for _, raw := range strings.Split(physical, ";") {
			line++
			toks, err := fields(line, raw)
			if err != nil {
				return nil, err
			}
			if len(toks) == 0 {
				continue
			}
			if len(out) > 0 && len(toks) != len(out[0]) {
				return nil, syntaxErrorf(line, toks[0].pos, "row has %d entries, want %d", len(toks), len(out[0]))
			}
			row := make([]float64, len(toks))
			for j, t := range toks {
				v, err := number(line, t)
				if err != nil {
					return nil, err
				}
				row[j] = v
			}
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return nil, errEmpty
	}

	return out, nil
}

// Vector parses a flat list of numbers separated by whitespace, ',' or ';'.
// Newlines are separators too, so a column typed one value per line works.
func Vector(text string) ([]float64, error) {
	flat := strings.NewReplacer(";", " ", "\n", " ").Replace(text)
	toks, err := fields(1, flat)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, errEmpty
	}
	out := make([]float64, len(toks))
	for i, t := range toks {
		v, err := number(1, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
