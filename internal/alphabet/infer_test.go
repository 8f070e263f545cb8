package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInfer_Classic tests the canonical example from the problem domain.
func TestInfer_Classic(t *testing.T) {
	order, err := Infer([]string{"wrt", "wrf", "er", "ett", "rftt"})
	require.NoError(t, err)
	assert.Equal(t, "wertf", order)
}

// TestInfer_SingleWord tests that a single word imposes no edges and the
// output is the distinct symbols in tie-break order.
func TestInfer_SingleWord(t *testing.T) {
	order, err := Infer([]string{"abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", order)
}

// TestInfer_SingleWordUnsorted tests that symbols of an edge-free input
// come out in code point order, not input order.
func TestInfer_SingleWordUnsorted(t *testing.T) {
	order, err := Infer([]string{"cba"})
	require.NoError(t, err)
	assert.Equal(t, "abc", order)
}

// TestInfer_EmptyInput tests that an empty word list yields an empty
// order. Rejecting empty input is the caller's concern, not an engine
// error.
func TestInfer_EmptyInput(t *testing.T) {
	order, err := Infer(nil)
	require.NoError(t, err)
	assert.Equal(t, "", order)
}

// TestInfer_DuplicateWords tests that an exact duplicate pair produces
// no edge and no conflict.
func TestInfer_DuplicateWords(t *testing.T) {
	order, err := Infer([]string{"ab", "ab"})
	require.NoError(t, err)
	assert.Equal(t, "ab", order)
}

// TestInfer_PrefixConflict tests that a word followed by its own strict
// prefix fails with a prefix-conflict error naming both words.
func TestInfer_PrefixConflict(t *testing.T) {
	_, err := Infer([]string{"abc", "ab"})
	require.Error(t, err)
	assert.True(t, IsPrefixConflict(err))

	var ie *InferenceError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrCodePrefixConflict, ie.Code)
	assert.Equal(t, "abc", ie.Earlier)
	assert.Equal(t, "ab", ie.Later)
}

// TestInfer_NonConflictingPrefix tests that a shorter word followed by a
// longer word sharing its prefix is valid and contributes no edge.
func TestInfer_NonConflictingPrefix(t *testing.T) {
	order, err := Infer([]string{"ab", "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", order)
}

// TestInfer_Cycle tests that words implying a < b, b < c, c < a fail
// with a cyclic-constraint error.
func TestInfer_Cycle(t *testing.T) {
	_, err := Infer([]string{"ax", "bx", "cx", "ay"})
	require.Error(t, err)
	assert.True(t, IsCycle(err))

	var ie *InferenceError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrCodeCyclicConstraint, ie.Code)
}

// TestInfer_Idempotent tests that two invocations on the same input
// yield identical output.
func TestInfer_Idempotent(t *testing.T) {
	words := []string{"wrt", "wrf", "er", "ett", "rftt"}

	first, err := Infer(words)
	require.NoError(t, err)
	second, err := Infer(words)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestInfer_CaseSensitive tests that the engine never normalizes: mixed
// case input produces spurious distinct symbols for 'A' and 'a'.
func TestInfer_CaseSensitive(t *testing.T) {
	order, err := Infer([]string{"Ab", "ab"})
	require.NoError(t, err)

	// 'A' (0x41) and 'a' (0x61) are distinct symbols, with A < a derived
	// from the adjacent pair.
	assert.Equal(t, "Aab", order)
}

// TestInfer_MultiByteRunes tests that words are compared rune-wise, so a
// multi-byte code point is a single symbol.
func TestInfer_MultiByteRunes(t *testing.T) {
	order, err := Infer([]string{"日x", "本x"})
	require.NoError(t, err)

	// 'x' sorts first under the code point tie-break; the derived edge
	// only constrains 日 before 本.
	assert.Equal(t, "x日本", order)
}

// TestInfer_AdjacentPairOrder tests the core property: for every
// adjacent pair, the first differing characters appear in derived order
// in the output.
func TestInfer_AdjacentPairOrder(t *testing.T) {
	words := []string{"baa", "abcd", "abca", "cab", "cad"}
	order, err := Infer(words)
	require.NoError(t, err)

	pos := make(map[rune]int, len(order))
	for i, r := range order {
		pos[r] = i
	}

	// b < a (baa vs abcd), d < a (abcd vs abca), a < c (abca vs cab),
	// b < d (cab vs cad).
	assert.Less(t, pos['b'], pos['a'])
	assert.Less(t, pos['d'], pos['a'])
	assert.Less(t, pos['a'], pos['c'])
	assert.Less(t, pos['b'], pos['d'])

	// Every distinct symbol appears exactly once.
	assert.Len(t, order, 4)
}

// TestAnalyze_Accessors tests the diagnostics accessors on a successful
// analysis.
func TestAnalyze_Accessors(t *testing.T) {
	analysis, err := Analyze([]string{"wrt", "wrf", "er", "ett", "rftt"})
	require.NoError(t, err)

	assert.Equal(t, []rune{'e', 'f', 'r', 't', 'w'}, analysis.Symbols())
	assert.Equal(t, []Edge{
		{From: 'e', To: 'r'},
		{From: 'r', To: 't'},
		{From: 't', To: 'f'},
		{From: 'w', To: 'e'},
	}, analysis.Edges())
	assert.Equal(t, map[rune]int{'e': 1, 'f': 1, 'r': 1, 't': 1, 'w': 0}, analysis.InDegrees())
}

// TestAnalyze_RepeatedLinearize tests that Linearize does not consume
// the analysis: repeated passes return identical results.
func TestAnalyze_RepeatedLinearize(t *testing.T) {
	analysis, err := Analyze([]string{"wrt", "wrf", "er", "ett", "rftt"})
	require.NoError(t, err)

	first, err := analysis.Linearize()
	require.NoError(t, err)
	second, err := analysis.Linearize()
	require.NoError(t, err)

	assert.Equal(t, "wertf", first)
	assert.Equal(t, first, second)

	// The assembled in-degree table is untouched by linearization.
	assert.Equal(t, map[rune]int{'e': 1, 'f': 1, 'r': 1, 't': 1, 'w': 0}, analysis.InDegrees())
}
