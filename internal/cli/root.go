// Package cli implements the matcalc command tree.
package cli

import (
	"fmt"
	"math"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/gaussjordan"
	"github.com/katalvlaran/matcalc/report"
)

// EnvLogLevel overrides the default of --log-level.
const EnvLogLevel = "MATCALC_LOG_LEVEL"

const defaultLogLevel = "warn"

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logJSON   bool
	epsilon   float64
	precision int
}

func (g *globalFlags) validate() error {
	if math.IsNaN(g.epsilon) || math.IsInf(g.epsilon, 0) || g.epsilon < 0 {
		return fmt.Errorf("--epsilon must be a finite non-negative number, got %v", g.epsilon)
	}
	if g.precision < -1 {
		return fmt.Errorf("--precision must be -1 (shortest) or more, got %d", g.precision)
	}

	return nil
}

// engineOptions resolves the flags into engine options and logs the result.
func (g *globalFlags) engineOptions(logger hclog.Logger) []gaussjordan.Option {
	opts := []gaussjordan.Option{gaussjordan.WithEpsilon(g.epsilon)}
	logger.Debug("engine options", "epsilon", gaussjordan.NewOptions(opts...).Epsilon())

	return opts
}

// NewRootCommand builds a fresh matcalc command tree.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "matcalc",
		Short: "Solve linear systems, compute determinants and inverses",
		Long: `matcalc is a small dense linear-algebra calculator built on Gauss-Jordan
elimination with partial pivoting.

Input is given inline as numbers (--matrix "2 1; 1 1" --rhs "3 2"), as
equations (--equations "2x + y = 3; x + y = 2") or as a YAML document (--file).`,
		// cobra prints the returned error once; commands log failures at Debug only.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.validate(); err != nil {
				return err
			}
			logger, err := newLogger(g.logLevel, g.logJSON, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SetContext(WithLogger(cmd.Context(), logger.Named(cmd.Name())))

			return nil
		},
	}

	level := defaultLogLevel
	if v := os.Getenv(EnvLogLevel); v != "" {
		level = v
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.logLevel, "log-level", level, "log level: trace, debug, info, warn, error, off (env "+EnvLogLevel+")")
	pf.BoolVar(&g.logJSON, "log-json", false, "write logs as JSON")
	pf.Float64Var(&g.epsilon, "epsilon", gaussjordan.DefaultEpsilon, "pivots with magnitude at or below this are treated as zero")
	pf.IntVar(&g.precision, "precision", report.DefaultPrecision, "decimals in printed results (-1 for the shortest exact form)")

	root.AddCommand(
		newSolveCommand(g),
		newDetCommand(g),
		newInverseCommand(g),
		newRREFCommand(g),
	)

	return root
}
