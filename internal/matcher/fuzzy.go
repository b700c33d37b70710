package matcher

import "strings"

// Score bands. Substring containment owns [substringBase, 1.0);
// everything weaker is clamped below it so the bands never overlap.
const (
	substringBase   = 0.8
	substringRange  = 0.2
	nonSubstringMax = 0.79
	prefixBonusStep = 0.1
)

// Score computes a similarity score in [0, 1] between a query and a
// target string. The query is the needle.
//
// Scoring, in priority order:
//  1. Empty query or target scores 0.
//  2. Exact equality scores 1.0.
//  3. Substring containment scores 0.8 + 0.2*len(query)/len(target),
//     reserving [0.8, 1.0) for substring matches.
//  4. Otherwise normalized Levenshtein similarity plus 0.1 per shared
//     leading character, clamped to 0.79.
func Score(query, target string, caseSensitive bool) float64 {
	if query == "" || target == "" {
		return 0
	}

	if !caseSensitive {
		query = strings.ToLower(query)
		target = strings.ToLower(target)
	}

	if query == target {
		return 1.0
	}

	q := []rune(query)
	t := []rune(target)

	if strings.Contains(target, query) {
		return substringBase + substringRange*float64(len(q))/float64(len(t))
	}

	maxLen := len(q)
	if len(t) > maxLen {
		maxLen = len(t)
	}
	if maxLen == 0 {
		// Unreachable after the empty check; keeps the division safe.
		return 0
	}

	similarity := 1.0 - float64(levenshtein(q, t))/float64(maxLen)
	score := similarity + prefixBonusStep*float64(commonPrefix(q, t))

	if score > nonSubstringMax {
		score = nonSubstringMax
	}
	if score < 0 {
		score = 0
	}
	return score
}

// commonPrefix counts leading runes shared by both strings, stopping at
// the first mismatch.
func commonPrefix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// levenshtein computes the edit distance between two rune slices using
// a two-row dynamic programming table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
