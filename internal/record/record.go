// Package record parses per-sample JSON records into ciphertext/plaintext
// pairs for the preparation pipeline.
package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when a sample is not parseable JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// ErrMissingField is returned when a sample lacks a required field.
var ErrMissingField = errors.New("missing field")

// DefaultCipherField and DefaultPlainField name the two record fields the
// pipeline extracts unless configured otherwise.
const (
	DefaultCipherField = "ciphertext"
	DefaultPlainField  = "plaintext"
)

// Record is one training sample: a space-delimited ciphertext token string
// and its plaintext solution.
type Record struct {
	Ciphertext string
	Plaintext  string
}

// Parse extracts the ciphertext and plaintext fields from one JSON sample.
// Empty field names fall back to the defaults.
func Parse(data []byte, cipherField, plainField string) (Record, error) {
	if cipherField == "" {
		cipherField = DefaultCipherField
	}
	if plainField == "" {
		plainField = DefaultPlainField
	}

	if !gjson.ValidBytes(data) {
		return Record{}, ErrInvalidJSON
	}

	cipher := gjson.GetBytes(data, cipherField)
	if !cipher.Exists() {
		return Record{}, fmt.Errorf("%w: %s", ErrMissingField, cipherField)
	}
	plain := gjson.GetBytes(data, plainField)
	if !plain.Exists() {
		return Record{}, fmt.Errorf("%w: %s", ErrMissingField, plainField)
	}

	return Record{Ciphertext: cipher.String(), Plaintext: plain.String()}, nil
}

// SpaceChars joins the characters of s with single spaces, producing the
// character-level target tokenization ("hello" → "h e l l o"). Characters
// are Unicode code points, so multi-byte runes stay intact.
func SpaceChars(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) * 2)
	first := true
	for _, r := range s {
		if !first {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		first = false
	}
	return b.String()
}
