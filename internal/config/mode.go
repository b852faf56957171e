package config

import (
	"fmt"
	"strings"
)

const (
	// ModePair writes train and test aggregates into two output
	// directories, classifying samples by filename prefix.
	ModePair = "pair"
	// ModeSplit writes train/valid/test aggregates into one output
	// directory, holding out a seeded random validation share.
	ModeSplit = "split"
)

func NormalizeMode(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	if mode == "" {
		mode = ModePair
	}
	switch mode {
	case ModePair, ModeSplit:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid mode %q (expected %s|%s)", raw, ModePair, ModeSplit)
	}
}
