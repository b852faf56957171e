package main

import (
	"fmt"
	"log/slog"

	"github.com/example/cipherprep/internal/config"
	"github.com/example/cipherprep/internal/dataset"
	"github.com/example/cipherprep/internal/prepare"
	"github.com/spf13/cobra"
)

func newPrepareCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Aggregate sample records into paired .src/.tgt training files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			selectedMode := cfg.Split.Mode
			if mode != "" {
				selectedMode = mode
			}
			selectedMode, err = config.NormalizeMode(selectedMode)
			if err != nil {
				return err
			}

			opts := prepare.Options{
				CipherField: cfg.Fields.Ciphertext,
				PlainField:  cfg.Fields.Plaintext,
			}

			out := cmd.OutOrStdout()
			switch selectedMode {
			case config.ModePair:
				res, err := prepare.RunPair(prepare.PairConfig{
					InputDir:     cfg.Paths.InputDir,
					TrainOutDir:  cfg.Paths.TrainOutputDir,
					TestOutDir:   cfg.Paths.TestOutputDir,
					TestPrefix:   cfg.Fields.TestPrefix,
					OutputPrefix: cfg.Fields.Prefix,
					Options:      opts,
				})
				if err != nil {
					return err
				}
				slog.Info("preparation complete",
					slog.String("mode", selectedMode),
					slog.Int("train_written", res.Train.Written),
					slog.Int("train_skipped", res.Train.Skipped),
					slog.Int("test_written", res.Test.Written),
					slog.Int("test_skipped", res.Test.Skipped),
				)
				fmt.Fprintf(out, "train: %d records -> %s/%s.{src,tgt}\n",
					res.Train.Written, cfg.Paths.TrainOutputDir, cfg.Fields.Prefix)
				fmt.Fprintf(out, "test:  %d records -> %s/%s.{src,tgt}\n",
					res.Test.Written, cfg.Paths.TestOutputDir, cfg.Fields.Prefix)
			case config.ModeSplit:
				res, err := prepare.RunSplit(prepare.SplitConfig{
					InputDir:           cfg.Paths.InputDir,
					OutputDir:          cfg.Paths.OutputDir,
					TestPrefix:         cfg.Fields.TestPrefix,
					ValidationFraction: cfg.Split.ValidationFraction,
					Rand:               dataset.NewRand(cfg.Split.Seed),
					Options:            opts,
				})
				if err != nil {
					return err
				}
				slog.Info("preparation complete",
					slog.String("mode", selectedMode),
					slog.Int64("seed", cfg.Split.Seed),
					slog.Int("train_written", res.Train.Written),
					slog.Int("valid_written", res.Valid.Written),
					slog.Int("test_written", res.Test.Written),
					slog.Int("skipped", res.Train.Skipped+res.Valid.Skipped+res.Test.Skipped),
				)
				fmt.Fprintf(out, "train: %d records -> %s/train.{src,tgt}\n", res.Train.Written, cfg.Paths.OutputDir)
				fmt.Fprintf(out, "valid: %d records -> %s/valid.{src,tgt}\n", res.Valid.Written, cfg.Paths.OutputDir)
				fmt.Fprintf(out, "test:  %d records -> %s/test.{src,tgt}\n", res.Test.Written, cfg.Paths.OutputDir)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Pipeline variant (pair|split; overrides config)")

	return cmd
}
