package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/hurwitz/render"
	"github.com/katalvlaran/hurwitz/routh"
)

// newAnalyzeCmd analyzes one polynomial given as coefficient arguments.
func newAnalyzeCmd(v *viper.Viper) *cobra.Command {
	var noExitCode bool

	cmd := &cobra.Command{
		Use:   "analyze COEFF...",
		Short: "Analyze a single characteristic polynomial",
		Long: `Analyze takes the polynomial's coefficients from the highest power
down to the constant term and prints the Routh table and verdict.
Coefficients may be separate arguments or one comma-separated list;
put -- before negative leading coefficients ("analyze -- 1 -2 2").`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v.GetBool("verbose"))
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck // stderr sync failure is unactionable

			coeffs, err := parseCoefficients(args)
			if err != nil {
				return err
			}
			opts := optionsFromViper(v)
			logger.Debug("analyzing polynomial",
				zap.Float64s("coefficients", coeffs),
				zap.Float64("epsilon", opts.Epsilon),
				zap.Float64("zero_row_epsilon", opts.ZeroRowEpsilon),
				zap.Bool("normalize", opts.NormalizeLeading))

			res, err := routh.Analyze(coeffs, &opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Table(res))
			fmt.Fprint(out, render.Summary(res))

			if !res.Stable && !noExitCode {
				logger.Info("system unstable",
					zap.Int("rhp_poles", res.RHPPoles))
				os.Exit(2)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&noExitCode, "no-exit-code", false,
		"exit 0 even when the system is unstable")

	return cmd
}

// parseCoefficients turns argument strings into coefficients. Each
// argument may itself be a comma-separated list, so both
// "analyze 1 2 3 4" and "analyze 1,2,3,4" work.
func parseCoefficients(args []string) ([]float64, error) {
	var coeffs []float64
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			c, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("coefficient %q: %w", field, err)
			}
			coeffs = append(coeffs, c)
		}
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("no coefficients given")
	}

	return coeffs, nil
}
