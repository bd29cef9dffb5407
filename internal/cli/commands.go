package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/gaussjordan"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/report"
)

func newSolveCommand(g *globalFlags) *cobra.Command {
	in := &inputFlags{}
	var showResidual bool
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a square linear system A·x = b",
		Example: `  matcalc solve --matrix "2 1; 1 1" --rhs "3 2"
  matcalc solve --equations "2x + y = 3; x + y = 2"
  matcalc solve --file system.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFrom(cmd.Context())

			sys, err := in.system()
			if err != nil {
				return err
			}
			A, err := matrix.NewFromRows(sys.Coefficients())
			if err != nil {
				return err
			}
			logger.Debug("solving system", "equations", A.Rows(), "unknowns", A.Cols())

			x, err := gaussjordan.Solve(A, sys.RHS(), g.engineOptions(logger)...)
			if err != nil {
				logger.Debug("solve failed", "error", err)
				return fmt.Errorf("%w (try rref to classify the system)", err)
			}
			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintln(out, report.Vector(sys.Vars, x, g.precision)); err != nil {
				return err
			}
			if !showResidual {
				return nil
			}
			r, err := matrix.Residual(A, x, sys.RHS())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "residual = %.3g\n", matrix.NormInf(r))

			return err
		},
	}
	in.bind(cmd, true)
	cmd.Flags().BoolVar(&showResidual, "residual", false, "also print max|A·x - b|")

	return cmd
}

func newDetCommand(g *globalFlags) *cobra.Command {
	in := &inputFlags{}
	cmd := &cobra.Command{
		Use:     "det",
		Aliases: []string{"determinant"},
		Short:   "Compute the determinant of a square matrix",
		Example: `  matcalc det --matrix "2 5 3; 1 -2 -1; 1 3 4"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFrom(cmd.Context())

			A, err := in.dense()
			if err != nil {
				return err
			}
			logger.Debug("computing determinant", "rows", A.Rows(), "cols", A.Cols())

			d, err := gaussjordan.Determinant(A, g.engineOptions(logger)...)
			if err != nil {
				logger.Debug("determinant failed", "error", err)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.Scalar(d, g.precision))

			return err
		},
	}
	in.bind(cmd, false)

	return cmd
}

func newInverseCommand(g *globalFlags) *cobra.Command {
	in := &inputFlags{}
	cmd := &cobra.Command{
		Use:     "inverse",
		Aliases: []string{"inv"},
		Short:   "Compute the inverse of a square matrix",
		Example: `  matcalc inverse --matrix "4 7; 2 6"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFrom(cmd.Context())

			A, err := in.dense()
			if err != nil {
				return err
			}
			logger.Debug("inverting matrix", "rows", A.Rows(), "cols", A.Cols())

			inv, err := gaussjordan.Inverse(A, g.engineOptions(logger)...)
			if err != nil {
				logger.Debug("inverse failed", "error", err)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.Matrix(inv, g.precision))

			return err
		},
	}
	in.bind(cmd, false)

	return cmd
}

func newRREFCommand(g *globalFlags) *cobra.Command {
	in := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "rref",
		Short: "Reduce an augmented system of any shape and classify its solutions",
		Long: `rref brings [A | b] to reduced row-echelon form and reports whether the
system has a unique solution, infinitely many, or none. Unlike solve it accepts
non-square and singular systems.`,
		Example: `  matcalc rref --matrix "1 1 2; 2 2 4"
  matcalc rref --equations "x + y = 2; x - y = 0"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFrom(cmd.Context())

			sys, err := in.system()
			if err != nil {
				return err
			}
			aug, err := matrix.NewFromRows(sys.Augmented)
			if err != nil {
				return err
			}
			logger.Debug("reducing system", "equations", aug.Rows(), "unknowns", len(sys.Vars))

			res, err := gaussjordan.Reduce(aug, g.engineOptions(logger)...)
			if err != nil {
				logger.Debug("reduction failed", "error", err)
				return err
			}
			logger.Debug("system classified", "kind", res.Kind, "rank", res.Rank())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.Reduction(res, sys.Vars, g.precision))

			return err
		},
	}
	in.bind(cmd, true)

	return cmd
}
