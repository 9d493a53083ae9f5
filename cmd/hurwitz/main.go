// Command hurwitz runs the Routh–Hurwitz stability criterion from the
// terminal: a single polynomial from arguments, or a YAML batch of
// named coefficient sets. Human output goes to stdout, structured logs
// to stderr.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/hurwitz/routh"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd wires the command tree and the viper-backed tolerance
// configuration: flags > environment (HURWITZ_*) > optional config
// file > engine defaults.
func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "hurwitz",
		Short: "Routh–Hurwitz stability analysis of characteristic polynomials",
		Long: `hurwitz decides, without computing any root, how many poles of a
system lie in the right half of the complex plane, by building the
classical Routh table from the characteristic polynomial's
coefficients (highest power first).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			if cfg == "" {
				return nil
			}
			v.SetConfigFile(cfg)

			return v.ReadInConfig()
		},
	}

	pf := root.PersistentFlags()
	pf.Float64("epsilon", routh.DefaultEpsilon, "substitute for a zero first-column pivot")
	pf.Float64("zero-row-epsilon", routh.DefaultZeroRowEpsilon, "near-zero detection tolerance")
	pf.Bool("normalize", routh.DefaultNormalizeLeading, "divide coefficients by the leading one")
	pf.String("config", "", "optional YAML config file with tolerance settings")
	pf.Bool("verbose", false, "debug logging on stderr")

	for _, key := range []string{"epsilon", "zero-row-epsilon", "normalize", "verbose"} {
		if err := v.BindPFlag(key, pf.Lookup(key)); err != nil {
			panic(err) // programmer error: flag name out of sync
		}
	}
	v.SetEnvPrefix("HURWITZ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newAnalyzeCmd(v), newBatchCmd(v))

	return root
}

// optionsFromViper resolves the effective engine options.
func optionsFromViper(v *viper.Viper) routh.Options {
	return routh.Options{
		Epsilon:          v.GetFloat64("epsilon"),
		ZeroRowEpsilon:   v.GetFloat64("zero-row-epsilon"),
		NormalizeLeading: v.GetBool("normalize"),
	}
}

// newLogger builds the stderr logger: production JSON by default,
// development console at debug level when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
