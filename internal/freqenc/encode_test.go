package freqenc

import (
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "single token",
			input: "42",
			want:  "0",
		},
		{
			name:  "all tokens identical",
			input: "5 5 5",
			want:  "0 0 0",
		},
		{
			name:  "all tokens distinct keeps first-occurrence order",
			input: "1 2 3",
			want:  "0 1 2",
		},
		{
			name:  "frequency dominates",
			input: "150 273 150 14 273 150",
			want:  "0 1 0 2 1 0",
		},
		{
			name:  "count tie broken by first occurrence",
			input: "9 8 9 8",
			want:  "0 1 0 1",
		},
		{
			name:  "mixed whitespace runs",
			input: "  a\tb \n a  ",
			want:  "0 1 0",
		},
		{
			name:  "tokens are opaque not numeric",
			input: "007 7 007",
			want:  "0 1 0",
		},
		{
			name:  "non-numeric tokens",
			input: "xyz ab xyz xyz ab q",
			want:  "0 1 0 0 1 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.input)
			if got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodePreservesTokenCount(t *testing.T) {
	inputs := []string{
		"150 273 150 14 273 150",
		"a",
		"a b c d e f g",
		"x x y y z z z",
		"1 1 1 2 2 3",
	}

	for _, input := range inputs {
		got := Encode(input)
		if in, out := len(strings.Fields(input)), len(strings.Fields(got)); in != out {
			t.Errorf("Encode(%q): %d output tokens, want %d", input, out, in)
		}
	}
}

func TestEncodeRanksAreContiguous(t *testing.T) {
	input := "k j k i j k h i"

	seen := map[string]bool{}
	for _, r := range strings.Fields(Encode(input)) {
		seen[r] = true
	}

	distinct := map[string]bool{}
	for _, tok := range strings.Fields(input) {
		distinct[tok] = true
	}

	if len(seen) != len(distinct) {
		t.Fatalf("got %d distinct ranks, want %d", len(seen), len(distinct))
	}
	for _, want := range []string{"0", "1", "2", "3"} {
		if !seen[want] {
			t.Errorf("rank %s missing from output", want)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	input := "17 3 17 92 3 3 64 17 17"

	first := Encode(input)
	for i := 0; i < 10; i++ {
		if got := Encode(input); got != first {
			t.Fatalf("call %d: Encode(%q) = %q, want %q", i, input, got, first)
		}
	}
}

func TestStats(t *testing.T) {
	got := Stats("150 273 150 14 273 150")

	want := []TokenStat{
		{Token: "150", Count: 3, First: 0, Rank: 0},
		{Token: "273", Count: 2, First: 1, Rank: 1},
		{Token: "14", Count: 1, First: 3, Rank: 2},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d stats, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stats[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStatsEmptyInput(t *testing.T) {
	if got := Stats(""); got != nil {
		t.Errorf("Stats(\"\") = %v, want nil", got)
	}
	if got := Stats(" \t "); got != nil {
		t.Errorf("Stats of whitespace = %v, want nil", got)
	}
}

func TestStatsTieOrder(t *testing.T) {
	// All counts equal: rank order must degenerate to first-occurrence order.
	got := Stats("c a b")

	wantTokens := []string{"c", "a", "b"}
	for i, s := range got {
		if s.Token != wantTokens[i] {
			t.Errorf("rank %d token = %q, want %q", i, s.Token, wantTokens[i])
		}
		if s.Count != 1 {
			t.Errorf("token %q count = %d, want 1", s.Token, s.Count)
		}
	}
}
