// Package sample generates synthetic substitution-cipher records for
// fixtures and demo corpora. Each record pairs a random lowercase plaintext
// with its ciphertext under a fresh random letter→code substitution table,
// serialized as the same JSON shape the preparation pipeline consumes.
package sample

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Generator produces sample records from an injected randomness source, so
// identical seeds yield identical corpora.
type Generator struct {
	rng *rand.Rand

	// CipherField and PlainField name the JSON fields written per record.
	CipherField string
	PlainField  string

	// MinWords and MaxWords bound the plaintext length in words.
	MinWords int
	MaxWords int
}

// NewGenerator returns a Generator with default field names and lengths.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		CipherField: "ciphertext",
		PlainField:  "plaintext",
		MinWords:    8,
		MaxWords:    40,
	}
}

// Record builds one JSON sample record with a unique id, a ciphertext
// token string, and its plaintext.
func (g *Generator) Record() ([]byte, error) {
	plain := g.plaintext()
	cipher := g.encipher(plain)

	out := []byte(`{}`)
	var err error
	if out, err = sjson.SetBytes(out, "id", uuid.NewString()); err != nil {
		return nil, fmt.Errorf("set id: %w", err)
	}
	if out, err = sjson.SetBytes(out, g.CipherField, cipher); err != nil {
		return nil, fmt.Errorf("set %s: %w", g.CipherField, err)
	}
	if out, err = sjson.SetBytes(out, g.PlainField, plain); err != nil {
		return nil, fmt.Errorf("set %s: %w", g.PlainField, err)
	}
	return out, nil
}

// WriteDir writes count sample files into dir, creating it if needed.
// The first round(count*testFraction) files are named with testPrefix so
// the scanner routes them to the test set; the rest use the "cipher-"
// prefix. Returns the number of test-set files written.
func (g *Generator) WriteDir(dir string, count int, testPrefix string, testFraction float64) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create sample directory: %w", err)
	}

	nTest := 0
	if testPrefix != "" && testFraction > 0 {
		nTest = int(math.Round(float64(count) * testFraction))
		if nTest > count {
			nTest = count
		}
	}

	for i := 0; i < count; i++ {
		data, err := g.Record()
		if err != nil {
			return nTest, err
		}
		name := fmt.Sprintf("cipher-%05d.json", i)
		if i < nTest {
			name = fmt.Sprintf("%s%05d.json", testPrefix, i)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return nTest, fmt.Errorf("write sample %s: %w", name, err)
		}
	}
	return nTest, nil
}

// plaintext draws a random sequence of lowercase words.
func (g *Generator) plaintext() string {
	words := g.MinWords + g.rng.Intn(g.MaxWords-g.MinWords+1)
	var b strings.Builder
	for w := 0; w < words; w++ {
		if w > 0 {
			b.WriteByte(' ')
		}
		for n := 2 + g.rng.Intn(7); n > 0; n-- {
			b.WriteByte(alphabet[g.rng.Intn(len(alphabet))])
		}
	}
	return b.String()
}

// encipher maps every letter of plain through a fresh random substitution
// table of three-digit codes, dropping word spacing as classical ciphertexts
// do. One table per record, so the same letter always gets the same code
// within a record but not across records.
func (g *Generator) encipher(plain string) string {
	perm := g.rng.Perm(900)
	code := make(map[rune]int, len(alphabet))
	for i, r := range alphabet {
		code[r] = perm[i] + 100
	}

	toks := make([]string, 0, len(plain))
	for _, r := range plain {
		if r == ' ' {
			continue
		}
		toks = append(toks, strconv.Itoa(code[r]))
	}
	return strings.Join(toks, " ")
}
