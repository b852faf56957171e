// Package testutil provides shared fixture helpers for pipeline tests.
//
// The helpers write sample record files into temporary directories so
// filesystem-facing tests can build realistic input corpora in a few lines:
//
//	dir := t.TempDir()
//	testutil.WriteSample(t, dir, "cipher-001.json", "150 273 150", "abc")
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteSample writes a well-formed JSON sample with the default field names
// into dir under the given filename.
func WriteSample(tb testing.TB, dir, name, ciphertext, plaintext string) {
	tb.Helper()
	data := fmt.Sprintf("{\"ciphertext\": %q, \"plaintext\": %q}", ciphertext, plaintext)
	WriteRaw(tb, dir, name, data)
}

// WriteRaw writes arbitrary file content into dir under the given filename,
// for malformed-input fixtures.
func WriteRaw(tb testing.TB, dir, name, content string) {
	tb.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		tb.Fatalf("write fixture %s: %v", name, err)
	}
}

// ReadLines reads the file at path and returns its newline-separated lines,
// dropping the trailing empty entry produced by a final \n.
func ReadLines(tb testing.TB, path string) []string {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read %s: %v", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
