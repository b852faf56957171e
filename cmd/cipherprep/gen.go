package main

import (
	"fmt"
	"log/slog"

	"github.com/example/cipherprep/internal/sample"
	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	var out string
	var count int
	var seed int64
	var testFraction float64

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate synthetic substitution-cipher sample records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}

			dir := out
			if dir == "" {
				dir = cfg.Paths.InputDir
			}

			g := sample.NewGenerator(seed)
			g.CipherField = cfg.Fields.Ciphertext
			g.PlainField = cfg.Fields.Plaintext

			nTest, err := g.WriteDir(dir, count, cfg.Fields.TestPrefix, testFraction)
			if err != nil {
				return err
			}

			slog.Info("sample generation complete",
				slog.String("dir", dir),
				slog.Int("count", count),
				slog.Int("test_files", nTest),
				slog.Int64("seed", seed),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d samples (%d test) to %s\n", count, nTest, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output directory (defaults to paths.input_dir)")
	cmd.Flags().IntVar(&count, "count", 100, "Number of sample records to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Generator seed (same seed, same corpus)")
	cmd.Flags().Float64Var(&testFraction, "test-fraction", 0.1, "Share of samples named with the test prefix")

	return cmd
}
