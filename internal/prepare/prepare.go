// Package prepare writes aggregated training artifacts from sample files.
//
// For every usable sample it appends one line to a pair of artifacts: the
// frequency-rank encoding of the ciphertext to <prefix>.src and the
// character-spaced plaintext to <prefix>.tgt. Line k of the two files
// always originates from the same sample; unusable samples are skipped
// entirely and logged, never half-written.
package prepare

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/example/cipherprep/internal/freqenc"
	"github.com/example/cipherprep/internal/record"
)

// Options configures record extraction and diagnostics for one aggregation.
type Options struct {
	CipherField string // defaults to record.DefaultCipherField
	PlainField  string // defaults to record.DefaultPlainField
	Logger      *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Result reports how many samples produced output lines and how many were
// skipped.
type Result struct {
	Written int
	Skipped int
}

// WriteAggregate processes files in order and writes the paired
// <prefix>.src / <prefix>.tgt artifacts into outDir, creating the directory
// if needed. Unreadable or malformed samples are skipped with a warning;
// only output I/O failures abort the run.
func WriteAggregate(files []string, outDir, prefix string, opts Options) (Result, error) {
	log := opts.logger()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}

	srcPath := filepath.Join(outDir, prefix+".src")
	tgtPath := filepath.Join(outDir, prefix+".tgt")

	srcFile, err := os.Create(srcPath)
	if err != nil {
		return Result{}, fmt.Errorf("create %s: %w", srcPath, err)
	}
	defer func() { _ = srcFile.Close() }()

	tgtFile, err := os.Create(tgtPath)
	if err != nil {
		return Result{}, fmt.Errorf("create %s: %w", tgtPath, err)
	}
	defer func() { _ = tgtFile.Close() }()

	srcW := bufio.NewWriter(srcFile)
	tgtW := bufio.NewWriter(tgtFile)

	var res Result
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("skipping unreadable sample",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			res.Skipped++
			continue
		}

		rec, err := record.Parse(data, opts.CipherField, opts.PlainField)
		if err != nil {
			log.Warn("skipping malformed sample",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			res.Skipped++
			continue
		}

		if _, err := fmt.Fprintln(srcW, freqenc.Encode(rec.Ciphertext)); err != nil {
			return res, fmt.Errorf("write %s: %w", srcPath, err)
		}
		if _, err := fmt.Fprintln(tgtW, record.SpaceChars(rec.Plaintext)); err != nil {
			return res, fmt.Errorf("write %s: %w", tgtPath, err)
		}
		res.Written++
	}

	if err := srcW.Flush(); err != nil {
		return res, fmt.Errorf("flush %s: %w", srcPath, err)
	}
	if err := tgtW.Flush(); err != nil {
		return res, fmt.Errorf("flush %s: %w", tgtPath, err)
	}
	if err := srcFile.Close(); err != nil {
		return res, fmt.Errorf("close %s: %w", srcPath, err)
	}
	if err := tgtFile.Close(); err != nil {
		return res, fmt.Errorf("close %s: %w", tgtPath, err)
	}

	return res, nil
}
