// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routematrix/matrix"
	"github.com/katalvlaran/routematrix/matrixio"
)

func newFixCmd(f *cliFlags, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "fix inputFile outputFile",
		Short: "Repair an existing matrix file so that it satisfies the triangle inequality",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f, nil)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			log, err := newLogger(cfg, stderr)
			if err != nil {
				return err
			}
			opts, err := closureOptions(cfg)
			if err != nil {
				return err
			}

			doc, err := matrixio.ReadFile(args[0])
			if err != nil {
				return err
			}
			for _, s := range []struct {
				name string
				m    *matrix.Dense
			}{{"distance", doc.Distances}, {"time", doc.Times}} {
				stats, err := matrix.Close(s.m, opts...)
				if err != nil {
					return fmt.Errorf("fix %s matrix: %w", s.name, err)
				}
				log.Info().Str("matrix", s.name).Int("passes", stats.Passes).
					Int("relaxed", stats.Relaxed).Msg("Matrix repaired")
			}

			return matrixio.WriteFile(args[1], *doc)
		},
	}
}
