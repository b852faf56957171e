package prepare

import (
	"fmt"
	"math/rand"

	"github.com/example/cipherprep/internal/dataset"
)

// PairConfig drives the directory-pair pipeline variant: one input
// directory classified by filename, two output directories.
type PairConfig struct {
	InputDir     string
	TrainOutDir  string
	TestOutDir   string
	TestPrefix   string // defaults to dataset.DefaultTestPrefix
	OutputPrefix string // artifact basename, defaults to "data"
	Options
}

// SplitConfig drives the single-directory pipeline variant with a seeded
// random validation holdout. Samples matching TestPrefix still go to a
// test aggregate; the rest are shuffled and split.
type SplitConfig struct {
	InputDir           string
	OutputDir          string
	TestPrefix         string
	ValidationFraction float64
	Rand               *rand.Rand // required when ValidationFraction > 0
	Options
}

// PairResult aggregates the per-set outcomes of a pair-mode run.
type PairResult struct {
	Train Result
	Test  Result
}

// SplitResult aggregates the per-set outcomes of a split-mode run.
type SplitResult struct {
	Train Result
	Valid Result
	Test  Result
}

// RunPair scans cfg.InputDir and writes train and test aggregates into
// their respective output directories. It fails when the input directory
// contains no sample files at all.
func RunPair(cfg PairConfig) (PairResult, error) {
	if cfg.TestPrefix == "" {
		cfg.TestPrefix = dataset.DefaultTestPrefix
	}
	if cfg.OutputPrefix == "" {
		cfg.OutputPrefix = "data"
	}

	c, err := dataset.Scan(cfg.InputDir, cfg.TestPrefix)
	if err != nil {
		return PairResult{}, err
	}
	if c.Total() == 0 {
		return PairResult{}, fmt.Errorf("no JSON sample files found in %s", cfg.InputDir)
	}

	var res PairResult
	if res.Train, err = WriteAggregate(c.Train, cfg.TrainOutDir, cfg.OutputPrefix, cfg.Options); err != nil {
		return res, fmt.Errorf("write training aggregate: %w", err)
	}
	if res.Test, err = WriteAggregate(c.Test, cfg.TestOutDir, cfg.OutputPrefix, cfg.Options); err != nil {
		return res, fmt.Errorf("write test aggregate: %w", err)
	}
	return res, nil
}

// RunSplit scans cfg.InputDir, holds out a seeded random validation share
// of the non-test samples, and writes train/valid/test aggregates into
// cfg.OutputDir under the conventional fairseq basenames.
func RunSplit(cfg SplitConfig) (SplitResult, error) {
	if cfg.TestPrefix == "" {
		cfg.TestPrefix = dataset.DefaultTestPrefix
	}
	if cfg.ValidationFraction > 0 && cfg.Rand == nil {
		return SplitResult{}, fmt.Errorf("validation fraction %v requires a randomness source", cfg.ValidationFraction)
	}

	c, err := dataset.Scan(cfg.InputDir, cfg.TestPrefix)
	if err != nil {
		return SplitResult{}, err
	}
	if c.Total() == 0 {
		return SplitResult{}, fmt.Errorf("no JSON sample files found in %s", cfg.InputDir)
	}

	train, valid := dataset.Split(c.Train, cfg.ValidationFraction, cfg.Rand)

	var res SplitResult
	if res.Train, err = WriteAggregate(train, cfg.OutputDir, "train", cfg.Options); err != nil {
		return res, fmt.Errorf("write training aggregate: %w", err)
	}
	if res.Valid, err = WriteAggregate(valid, cfg.OutputDir, "valid", cfg.Options); err != nil {
		return res, fmt.Errorf("write validation aggregate: %w", err)
	}
	if res.Test, err = WriteAggregate(c.Test, cfg.OutputDir, "test", cfg.Options); err != nil {
		return res, fmt.Errorf("write test aggregate: %w", err)
	}
	return res, nil
}
