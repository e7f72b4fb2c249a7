// Package fuzzy ranks option names by edit distance so an unknown
// option can be answered with a "did you mean" hint.
package fuzzy

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultMaxDistance is the edit distance used by Suggest.
const DefaultMaxDistance = 2

// Matcher compares an input against candidate names.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting candidates within maxDistance
// edits. Inputs shorter than two runes never match.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{maxDistance: maxDistance, minLength: 2}
}

// Match is one ranked candidate.
type Match struct {
	Value    string
	Distance int
	Prefix   int // runes shared at the start
}

// Rank returns candidates within range of input, best first. Exact
// matches (ignoring case) are excluded since they are not typos.
func (m *Matcher) Rank(input string, candidates []string) []Match {
	if utf8.RuneCountInString(input) < m.minLength {
		return nil
	}
	in := []rune(strings.ToLower(input))

	var matches []Match
	for _, c := range candidates {
		cand := []rune(strings.ToLower(c))
		if slices.Equal(in, cand) {
			continue
		}
		d := m.distance(in, cand)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Value: c, Distance: d, Prefix: commonPrefix(in, cand)})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(b.Prefix, a.Prefix)
	})
	return matches
}

// Best returns the highest ranked candidate.
func (m *Matcher) Best(input string, candidates []string) (string, bool) {
	matches := m.Rank(input, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Value, true
}

// Distance returns the Levenshtein distance between a and b, capped at
// the matcher's maximum plus one.
func (m *Matcher) Distance(a, b string) int {
	return m.distance([]rune(a), []rune(b))
}

func (m *Matcher) distance(a, b []rune) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b)-len(a) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b []rune) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Suggest returns the closest candidate within DefaultMaxDistance.
func Suggest(input string, candidates []string) (string, bool) {
	return NewMatcher(DefaultMaxDistance).Best(input, candidates)
}
