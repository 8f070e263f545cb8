package alphabet

// extractConstraints derives precedence edges from each pair of adjacent
// words and adds them to the graph.
//
// For each pair (earlier, later):
//  1. If earlier is strictly longer than later and begins with it, the
//     input is invalid under any total order. Extraction halts on the
//     first such violation; no further pairs are examined.
//  2. Otherwise the first differing position yields one edge
//     earlier[j] -> later[j] and scanning of the pair stops. Only the
//     first mismatch carries ordering information, the same way string
//     comparison short-circuits.
//  3. No differing position (identical words, or a non-conflicting
//     prefix) contributes no edge.
//
// Words are compared rune-wise, not byte-wise, so multi-byte code points
// are single symbols.
func extractConstraints(words []string, g *constraintGraph) error {
	for i := 0; i+1 < len(words); i++ {
		earlier := []rune(words[i])
		later := []rune(words[i+1])

		if err := extractPair(earlier, later, g); err != nil {
			return err
		}
	}
	return nil
}

// extractPair processes a single adjacent word pair.
func extractPair(earlier, later []rune, g *constraintGraph) error {
	limit := len(earlier)
	if len(later) < limit {
		limit = len(later)
	}

	for j := 0; j < limit; j++ {
		if earlier[j] != later[j] {
			g.addEdge(earlier[j], later[j])
			return nil
		}
	}

	// All compared positions match. A strictly longer earlier word means
	// the later word is its prefix, which cannot sort after it.
	if len(earlier) > len(later) {
		return newPrefixConflictError(string(earlier), string(later))
	}
	return nil
}
