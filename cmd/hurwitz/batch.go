package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hurwitz/render"
	"github.com/katalvlaran/hurwitz/routh"
)

// batchFile is the YAML schema for a set of named polynomials:
//
//	systems:
//	  - name: closed loop A
//	    coefficients: [1, 2, 3, 4]
type batchFile struct {
	Systems []batchEntry `yaml:"systems"`
}

type batchEntry struct {
	Name         string    `yaml:"name"`
	Coefficients []float64 `yaml:"coefficients"`
}

// newBatchCmd analyzes every polynomial listed in a YAML file.
func newBatchCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Analyze a YAML batch of characteristic polynomials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v.GetBool("verbose"))
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck // stderr sync failure is unactionable

			batch, err := loadBatch(args[0])
			if err != nil {
				return err
			}
			opts := optionsFromViper(v)
			logger.Debug("running batch",
				zap.String("file", args[0]),
				zap.Int("systems", len(batch.Systems)))

			out := cmd.OutOrStdout()
			unstable := 0
			for _, entry := range batch.Systems {
				res, err := routh.Analyze(entry.Coefficients, &opts)
				if err != nil {
					return fmt.Errorf("system %q: %w", entry.Name, err)
				}
				if !res.Stable {
					unstable++
				}
				fmt.Fprintf(out, "== %s ==\n", entry.Name)
				fmt.Fprintln(out, render.Table(res))
				fmt.Fprint(out, render.Summary(res))
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%d system(s), %d unstable\n", len(batch.Systems), unstable)

			return nil
		},
	}
}

// loadBatch reads and validates the YAML batch file.
func loadBatch(path string) (*batchFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var batch batchFile
	if err := yaml.Unmarshal(raw, &batch); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(batch.Systems) == 0 {
		return nil, fmt.Errorf("%s: no systems listed", path)
	}
	for i, entry := range batch.Systems {
		if entry.Name == "" {
			batch.Systems[i].Name = fmt.Sprintf("system %d", i+1)
		}
	}

	return &batch, nil
}
