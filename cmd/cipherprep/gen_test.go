package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/cipherprep/internal/testutil"
)

func TestGenCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "samples")

	out, err := runCommand(t, "",
		"gen",
		"--out", dir,
		"--count", "20",
		"--seed", "5",
		"--test-fraction", "0.25",
	)
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	if !strings.Contains(out, "wrote 20 samples") {
		t.Errorf("output = %q, want mention of 20 samples", out)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 20 {
		t.Fatalf("wrote %d files, want 20", len(entries))
	}

	testFiles := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test-cipher-") {
			testFiles++
		}
	}
	if testFiles != 5 {
		t.Errorf("%d test-prefixed files, want 5", testFiles)
	}
}

func TestGenCmd_RejectsNonPositiveCount(t *testing.T) {
	_, err := runCommand(t, "", "gen", "--out", t.TempDir(), "--count", "0")
	if err == nil {
		t.Fatal("expected error for --count 0")
	}
}

// Generated corpora must flow through the preparation pipeline end to end.
func TestGenCmd_FeedsPrepare(t *testing.T) {
	in := filepath.Join(t.TempDir(), "samples")
	out := filepath.Join(t.TempDir(), "prepared")

	if _, err := runCommand(t, "", "gen", "--out", in, "--count", "12", "--seed", "9", "--test-fraction", "0.25"); err != nil {
		t.Fatalf("gen: %v", err)
	}

	if _, err := runCommand(t, "",
		"prepare",
		"--mode", "split",
		"--paths-input-dir", in,
		"--paths-output-dir", out,
		"--split-validation-fraction", "0.25",
		"--split-seed", "1",
	); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	train := testutil.ReadLines(t, filepath.Join(out, "train.src"))
	test := testutil.ReadLines(t, filepath.Join(out, "test.src"))
	if len(train) == 0 || len(test) == 0 {
		t.Fatalf("got %d train, %d test lines; want both non-empty", len(train), len(test))
	}

	// Every encoded line is a space-joined run of non-negative integers.
	for _, line := range train {
		for _, tok := range strings.Fields(line) {
			for _, r := range tok {
				if r < '0' || r > '9' {
					t.Fatalf("non-numeric token %q in train.src line %q", tok, line)
				}
			}
		}
	}
}
