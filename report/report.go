// Package report renders engine results as plain text.
//
// Numbers are printed with a fixed number of decimals (DefaultPrecision unless
// told otherwise); a negative precision selects the shortest exact form.
// Values that round to zero print without a minus sign.
package report

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/gaussjordan"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/parse"
)

// DefaultPrecision is the number of decimals used by the command-line tool.
const DefaultPrecision = 3

const (
	headerRREF         = "RREF of augmented matrix:"
	resultUnique       = "Result: Unique solution → "
	resultInfinite     = "Result: The system has infinitely many solutions."
	resultInconsistent = "Result: The system is inconsistent (no solution)."
	freeVariables      = "Free variables: "
)

// Scalar formats a single value.
func Scalar(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if s[0] == '-' && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}

	return s
}

// Row formats values as "[a, b, c]".
func Row(values []float64, precision int) string {
	var b strings.Builder
	b.WriteByte('[')
	for j, v := range values {
		if j > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Scalar(v, precision))
	}
	b.WriteByte(']')

	return b.String()
}

// Matrix formats m one row per line, without a trailing newline.
func Matrix(m *matrix.Dense, precision int) string {
	rows := m.ToRows()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = Row(row, precision)
	}

	return strings.Join(lines, "\n")
}

// Vector formats named values as "x = 1.000, y = 2.000".
// When names does not match values in length, x1..xn are used.
func Vector(names []string, values []float64, precision int) string {
	if len(names) != len(values) {
		names = parse.DefaultVars(len(values))
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = names[i] + " = " + Scalar(v, precision)
	}

	return strings.Join(parts, ", ")
}

// Reduction formats the reduced matrix followed by the nature of the solution set.
// An infinite solution set also lists its free variables.
func Reduction(r *gaussjordan.Reduction, names []string, precision int) string {
	var b strings.Builder
	b.WriteString(headerRREF)
	b.WriteByte('\n')
	b.WriteString(Matrix(r.RREF, precision))
	b.WriteString("\n\n")

	switch r.Kind {
	case gaussjordan.Unique:
		b.WriteString(resultUnique)
		b.WriteString(Vector(names, r.Solution, precision))
	case gaussjordan.Infinite:
		b.WriteString(resultInfinite)
		b.WriteByte('\n')
		b.WriteString(freeVariables)
		b.WriteString(strings.Join(freeNames(r, names), ", "))
	default:
		b.WriteString(resultInconsistent)
	}

	return b.String()
}

// freeNames maps the free columns of r to variable names, falling back to x1..xn
// when names does not cover every unknown.
func freeNames(r *gaussjordan.Reduction, names []string) []string {
	if len(names) != r.Unknowns() {
		names = parse.DefaultVars(r.Unknowns())
	}
	free := r.Free()
	out := make([]string, len(free))
	for i, j := range free {
		out[i] = names[j]
	}

	return out
}
