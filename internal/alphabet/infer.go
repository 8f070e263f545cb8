package alphabet

// Analysis is the assembled constraint graph for one word list.
//
// It is immutable after Analyze returns: Linearize works on a copy of
// the in-degree table, and the accessors return copies. An Analysis may
// be linearized and inspected any number of times with identical
// results. Instances are independent, so concurrent use across separate
// inputs needs no coordination.
type Analysis struct {
	symbols []rune // sorted by code point
	graph   *constraintGraph
}

// Analyze collects symbols from the words, extracts precedence
// constraints from each adjacent pair, and assembles the constraint
// graph.
//
// Words must be non-empty and pre-normalized; the engine compares runes
// exactly as given and will treat 'A' and 'a' as distinct symbols.
//
// Returns an InferenceError with ErrCodePrefixConflict if a word is
// followed by its own strict prefix. Extraction halts on the first such
// violation.
func Analyze(words []string) (*Analysis, error) {
	symbols := collectSymbols(words)
	graph := newConstraintGraph(symbols)

	if err := extractConstraints(words, graph); err != nil {
		return nil, err
	}

	return &Analysis{
		symbols: sortedSymbols(symbols),
		graph:   graph,
	}, nil
}

// Infer runs the full pipeline: analysis plus linearization. On success
// the returned string contains every distinct input character exactly
// once, in the inferred order.
func Infer(words []string) (string, error) {
	analysis, err := Analyze(words)
	if err != nil {
		return "", err
	}
	return analysis.Linearize()
}

// Symbols returns the distinct input symbols in code point order.
func (a *Analysis) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Edges returns the derived precedence edges sorted by (From, To).
// Intended for the diagnostics side channel; never part of the primary
// success output.
func (a *Analysis) Edges() []Edge {
	return a.graph.edgeList()
}

// InDegrees returns a copy of the in-degree table as assembled, before
// any linearization pass.
func (a *Analysis) InDegrees() map[rune]int {
	return a.graph.indegreeCopy()
}
