package prepare

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/example/cipherprep/internal/dataset"
	"github.com/example/cipherprep/internal/testutil"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriteAggregate(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	testutil.WriteSample(t, in, "cipher-001.json", "150 273 150 14 273 150", "abc")
	testutil.WriteSample(t, in, "cipher-002.json", "9 8 9 8", "no")

	files := []string{
		filepath.Join(in, "cipher-001.json"),
		filepath.Join(in, "cipher-002.json"),
	}

	res, err := WriteAggregate(files, out, "data", Options{Logger: discard()})
	if err != nil {
		t.Fatalf("WriteAggregate: %v", err)
	}
	if res.Written != 2 || res.Skipped != 0 {
		t.Errorf("result = %+v, want 2 written, 0 skipped", res)
	}

	src := testutil.ReadLines(t, filepath.Join(out, "data.src"))
	tgt := testutil.ReadLines(t, filepath.Join(out, "data.tgt"))

	wantSrc := []string{"0 1 0 2 1 0", "0 1 0 1"}
	wantTgt := []string{"a b c", "n o"}

	if len(src) != 2 || len(tgt) != 2 {
		t.Fatalf("got %d src lines, %d tgt lines; want 2 each", len(src), len(tgt))
	}
	for i := range wantSrc {
		if src[i] != wantSrc[i] {
			t.Errorf("src[%d] = %q, want %q", i, src[i], wantSrc[i])
		}
		if tgt[i] != wantTgt[i] {
			t.Errorf("tgt[%d] = %q, want %q", i, tgt[i], wantTgt[i])
		}
	}
}

func TestWriteAggregateSkipsBadSamples(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	testutil.WriteSample(t, in, "cipher-001.json", "1 2 1", "aba")
	testutil.WriteRaw(t, in, "cipher-002.json", "not json at all")
	testutil.WriteRaw(t, in, "cipher-003.json", `{"ciphertext": "5 5"}`)
	testutil.WriteSample(t, in, "cipher-004.json", "7", "z")

	files := []string{
		filepath.Join(in, "cipher-001.json"),
		filepath.Join(in, "cipher-002.json"),
		filepath.Join(in, "cipher-003.json"),
		filepath.Join(in, "missing.json"),
		filepath.Join(in, "cipher-004.json"),
	}

	res, err := WriteAggregate(files, out, "data", Options{Logger: discard()})
	if err != nil {
		t.Fatalf("WriteAggregate: %v", err)
	}
	if res.Written != 2 || res.Skipped != 3 {
		t.Errorf("result = %+v, want 2 written, 3 skipped", res)
	}

	// Skipped samples must leave no trace in either artifact, and the
	// surviving lines must stay paired.
	src := testutil.ReadLines(t, filepath.Join(out, "data.src"))
	tgt := testutil.ReadLines(t, filepath.Join(out, "data.tgt"))
	if len(src) != 2 || len(tgt) != 2 {
		t.Fatalf("got %d src lines, %d tgt lines; want 2 each", len(src), len(tgt))
	}
	if src[0] != "0 1 0" || tgt[0] != "a b a" {
		t.Errorf("line 0 = (%q, %q), want (\"0 1 0\", \"a b a\")", src[0], tgt[0])
	}
	if src[1] != "0" || tgt[1] != "z" {
		t.Errorf("line 1 = (%q, %q), want (\"0\", \"z\")", src[1], tgt[1])
	}
}

func TestWriteAggregateCustomFields(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	testutil.WriteRaw(t, in, "s.json", `{"src": "4 4 2", "tgt": "hi"}`)

	res, err := WriteAggregate(
		[]string{filepath.Join(in, "s.json")},
		out, "data",
		Options{CipherField: "src", PlainField: "tgt", Logger: discard()},
	)
	if err != nil {
		t.Fatalf("WriteAggregate: %v", err)
	}
	if res.Written != 1 {
		t.Fatalf("written = %d, want 1", res.Written)
	}

	if src := testutil.ReadLines(t, filepath.Join(out, "data.src")); src[0] != "0 0 1" {
		t.Errorf("src[0] = %q, want %q", src[0], "0 0 1")
	}
}

func TestWriteAggregateEmptyFileList(t *testing.T) {
	out := t.TempDir()

	res, err := WriteAggregate(nil, out, "data", Options{Logger: discard()})
	if err != nil {
		t.Fatalf("WriteAggregate: %v", err)
	}
	if res.Written != 0 || res.Skipped != 0 {
		t.Errorf("result = %+v, want all zero", res)
	}

	// Artifacts exist but are empty, mirroring an empty test set.
	if lines := testutil.ReadLines(t, filepath.Join(out, "data.src")); lines != nil {
		t.Errorf("src lines = %v, want none", lines)
	}
}

func TestRunPair(t *testing.T) {
	in := t.TempDir()
	trainOut := filepath.Join(t.TempDir(), "train")
	testOut := filepath.Join(t.TempDir(), "test")

	testutil.WriteSample(t, in, "cipher-001.json", "1 2 1", "ab")
	testutil.WriteSample(t, in, "cipher-002.json", "3 3", "c")
	testutil.WriteSample(t, in, "test-cipher-001.json", "8 9", "de")

	res, err := RunPair(PairConfig{
		InputDir:    in,
		TrainOutDir: trainOut,
		TestOutDir:  testOut,
		Options:     Options{Logger: discard()},
	})
	if err != nil {
		t.Fatalf("RunPair: %v", err)
	}
	if res.Train.Written != 2 {
		t.Errorf("train written = %d, want 2", res.Train.Written)
	}
	if res.Test.Written != 1 {
		t.Errorf("test written = %d, want 1", res.Test.Written)
	}

	if lines := testutil.ReadLines(t, filepath.Join(trainOut, "data.src")); len(lines) != 2 {
		t.Errorf("train data.src has %d lines, want 2", len(lines))
	}
	if lines := testutil.ReadLines(t, filepath.Join(testOut, "data.tgt")); len(lines) != 1 || lines[0] != "d e" {
		t.Errorf("test data.tgt = %v, want [\"d e\"]", lines)
	}
}

func TestRunPairEmptyInput(t *testing.T) {
	_, err := RunPair(PairConfig{
		InputDir:    t.TempDir(),
		TrainOutDir: t.TempDir(),
		TestOutDir:  t.TempDir(),
		Options:     Options{Logger: discard()},
	})
	if err == nil {
		t.Fatal("expected error for input directory with no samples")
	}
}

func TestRunSplit(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("cipher-%03d.json", i)
		testutil.WriteSample(t, in, name, "1 2 1 2 3", "abcd")
	}
	testutil.WriteSample(t, in, "test-cipher-001.json", "5 5", "xy")

	res, err := RunSplit(SplitConfig{
		InputDir:           in,
		OutputDir:          out,
		ValidationFraction: 0.2,
		Rand:               dataset.NewRand(42),
		Options:            Options{Logger: discard()},
	})
	if err != nil {
		t.Fatalf("RunSplit: %v", err)
	}

	if res.Train.Written != 8 {
		t.Errorf("train written = %d, want 8", res.Train.Written)
	}
	if res.Valid.Written != 2 {
		t.Errorf("valid written = %d, want 2", res.Valid.Written)
	}
	if res.Test.Written != 1 {
		t.Errorf("test written = %d, want 1", res.Test.Written)
	}

	for _, name := range []string{"train.src", "train.tgt", "valid.src", "valid.tgt", "test.src", "test.tgt"} {
		testutil.ReadLines(t, filepath.Join(out, name)) // fails the test if absent
	}
}

func TestRunSplitRequiresRand(t *testing.T) {
	_, err := RunSplit(SplitConfig{
		InputDir:           t.TempDir(),
		OutputDir:          t.TempDir(),
		ValidationFraction: 0.1,
		Options:            Options{Logger: discard()},
	})
	if err == nil {
		t.Fatal("expected error when validation fraction is set without a randomness source")
	}
}
