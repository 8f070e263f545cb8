package alphabet

import "sort"

// collectSymbols returns the set of distinct runes appearing in any word.
// Order is irrelevant at this stage; uniqueness is the only invariant.
// An empty word list yields an empty set, which is not an engine error -
// rejecting empty input is the caller's concern.
func collectSymbols(words []string) map[rune]bool {
	symbols := make(map[rune]bool)
	for _, word := range words {
		for _, r := range word {
			symbols[r] = true
		}
	}
	return symbols
}

// sortedSymbols returns the symbol set as a slice in code point order.
// This is the same total order the linearizer's tie-break uses.
func sortedSymbols(symbols map[rune]bool) []rune {
	out := make([]rune, 0, len(symbols))
	for r := range symbols {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
