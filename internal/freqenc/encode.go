// Package freqenc implements frequency-rank encoding of token sequences.
//
// Given a whitespace-delimited string of opaque tokens, the encoder replaces
// every token with the 0-based rank of that token in the sequence's own
// frequency order: rank 0 is the most frequent token, and ties between
// equally frequent tokens are broken by first occurrence. The rank table is
// built fresh for every call, so identical tokens map to identical ranks
// within one call but not necessarily across calls.
package freqenc

import (
	"sort"
	"strconv"
	"strings"
)

// TokenStat describes one distinct token of an input sequence.
type TokenStat struct {
	Token string
	Count int
	First int // index of the token's first occurrence in the sequence
	Rank  int
}

// Encode maps a whitespace-delimited token string to its frequency-rank
// form: one decimal rank per input token, joined by single spaces, in the
// original order. Empty or whitespace-only input yields an empty string.
// The function is total over strings and allocates no shared state, so it
// is safe to call concurrently.
func Encode(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return ""
	}

	rank := rankTable(tokens)

	var b strings.Builder
	b.Grow(len(text))
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(rank[tok]))
	}
	return b.String()
}

// Stats returns per-distinct-token statistics for text, ordered by rank.
// Returns nil when the input has no tokens.
func Stats(text string) []TokenStat {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	counts, first, order := tally(tokens)
	sortByRank(order, counts, first)

	stats := make([]TokenStat, len(order))
	for rank, tok := range order {
		stats[rank] = TokenStat{Token: tok, Count: counts[tok], First: first[tok], Rank: rank}
	}
	return stats
}

// rankTable builds the distinct-token → rank mapping for one sequence.
func rankTable(tokens []string) map[string]int {
	counts, first, order := tally(tokens)
	sortByRank(order, counts, first)

	rank := make(map[string]int, len(order))
	for i, tok := range order {
		rank[tok] = i
	}
	return rank
}

// tally computes occurrence counts and first-occurrence indices, with order
// holding the distinct tokens in order of first appearance.
func tally(tokens []string) (counts, first map[string]int, order []string) {
	counts = make(map[string]int, len(tokens))
	first = make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			first[tok] = i
			order = append(order, tok)
		}
		counts[tok]++
	}
	return counts, first, order
}

// sortByRank orders distinct tokens most-frequent first, ties broken by
// first occurrence. First-occurrence indices are unique per distinct token,
// so the resulting order is total and no further tie-break is needed.
func sortByRank(order []string, counts, first map[string]int) {
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return first[a] < first[b]
	})
}
