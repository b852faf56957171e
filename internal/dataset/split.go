package dataset

import (
	"math"
	"math/rand"
)

// Split shuffles a copy of files with rng and holds out a validation set of
// round(len*fraction) files, clamped so that at least one file is held out
// when fraction > 0 and the training set is never left empty. The input
// slice is not modified. A given rng seed always produces the same split.
func Split(files []string, fraction float64, rng *rand.Rand) (train, val []string) {
	if len(files) == 0 || fraction <= 0 {
		return append([]string(nil), files...), nil
	}

	shuffled := append([]string(nil), files...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := int(math.Round(float64(len(shuffled)) * fraction))
	if n < 1 {
		n = 1
	}
	if n >= len(shuffled) {
		n = len(shuffled) - 1
	}

	return shuffled[n:], shuffled[:n]
}

// NewRand returns a deterministic randomness source for the given seed,
// suitable for injecting into Split.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
