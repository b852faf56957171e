// Package dataset discovers sample files and partitions them into
// train/validation/test sets.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultTestPrefix marks sample files that belong to the held-out test set.
const DefaultTestPrefix = "test-cipher-"

// Classified holds the scanned sample paths, already routed by filename.
type Classified struct {
	Train []string
	Test  []string
}

// Total returns the number of scanned sample files.
func (c Classified) Total() int {
	return len(c.Train) + len(c.Test)
}

// Scan lists the .json sample files directly under dir and classifies them:
// names starting with testPrefix go to Test, everything else to Train.
// An empty testPrefix routes all files to Train. Results are in filename
// order (os.ReadDir sorts by name), so downstream output order is
// deterministic.
func Scan(dir, testPrefix string) (Classified, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Classified{}, fmt.Errorf("read input directory: %w", err)
	}

	var c Classified
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		path := filepath.Join(dir, name)
		if testPrefix != "" && strings.HasPrefix(name, testPrefix) {
			c.Test = append(c.Test, path)
		} else {
			c.Train = append(c.Train, path)
		}
	}
	return c, nil
}
