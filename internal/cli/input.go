package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/matrixio"
	"github.com/katalvlaran/matcalc/parse"
)

const (
	flagMatrix    = "matrix"
	flagRHS       = "rhs"
	flagEquations = "equations"
	flagFile      = "file"
)

// inputFlags select where a command reads its numbers from.
// Exactly one of matrix, equations or file is set.
type inputFlags struct {
	matrix    string
	rhs       string
	equations string
	file      string
}

// equationBreaks lets a one-line flag value hold several equations.
var equationBreaks = strings.NewReplacer(`\n`, "\n", ";", "\n")

// bind registers --matrix, --equations and --file on cmd; withSystem also adds --rhs.
func (in *inputFlags) bind(cmd *cobra.Command, withSystem bool) {
	f := cmd.Flags()
	f.StringVarP(&in.matrix, flagMatrix, "m", "", `matrix rows separated by ';' or newlines, e.g. "2 1; 1 1"`)
	f.StringVarP(&in.file, flagFile, "f", "", "YAML document with matrix/rhs or equations")
	f.StringVarP(&in.equations, flagEquations, "e", "", `equations separated by ';' or newlines, e.g. "2x + y = 3; x + y = 2"`)
	sources := []string{flagMatrix, flagEquations, flagFile}
	if withSystem {
		f.StringVarP(&in.rhs, flagRHS, "b", "", `right-hand side, e.g. "3 2" (with --matrix)`)
		cmd.MarkFlagsMutuallyExclusive(flagRHS, flagEquations)
		cmd.MarkFlagsMutuallyExclusive(flagRHS, flagFile)
	}
	cmd.MarkFlagsMutuallyExclusive(sources...)
	cmd.MarkFlagsOneRequired(sources...)
}

// system resolves the flags into a linear system. A --matrix without --rhs is
// read as an already augmented matrix.
func (in *inputFlags) system() (*parse.System, error) {
	switch {
	case in.file != "":
		doc, err := matrixio.Load(in.file)
		if err != nil {
			return nil, err
		}

		return doc.System()
	case in.equations != "":
		return parse.Equations(equationBreaks.Replace(in.equations))
	}

	rows, err := parse.Matrix(in.matrix)
	if err != nil {
		return nil, err
	}
	if in.rhs == "" {
		return parse.NewSystem(rows)
	}
	rhs, err := parse.Vector(in.rhs)
	if err != nil {
		return nil, err
	}
	if len(rhs) != len(rows) {
		return nil, fmt.Errorf("--rhs has %d values for %d matrix rows: %w", len(rhs), len(rows), matrix.ErrDimensionMismatch)
	}
	aug := make([][]float64, len(rows))
	for i, row := range rows {
		aug[i] = append(row, rhs[i])
	}

	return parse.NewSystem(aug)
}

// dense resolves the flags into a single matrix: the matrix itself, or the
// coefficient block of the equations.
func (in *inputFlags) dense() (*matrix.Dense, error) {
	switch {
	case in.file != "":
		doc, err := matrixio.Load(in.file)
		if err != nil {
			return nil, err
		}

		return doc.Dense()
	case in.equations != "":
		sys, err := parse.Equations(equationBreaks.Replace(in.equations))
		if err != nil {
			return nil, err
		}

		return matrix.NewFromRows(sys.Coefficients())
	}

	rows, err := parse.Matrix(in.matrix)
	if err != nil {
		return nil, err
	}

	return matrix.NewFromRows(rows)
}
