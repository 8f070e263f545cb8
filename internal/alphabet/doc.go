// Package alphabet implements the order inference engine.
//
// Given a list of words known to be sorted under an unknown alphabet's
// collation order, the engine derives pairwise character-precedence
// constraints and linearizes them into a total order over every character
// observed in the input.
//
// PIPELINE:
//
// 1. Symbol collection: gather the distinct runes across all words.
// 2. Constraint extraction: each adjacent word pair contributes at most
// one directed edge - the first differing character position. A longer
// word followed by its own strict prefix is a prefix conflict and halts
// extraction immediately.
// 3. Graph assembly: adjacency map plus a separate in-degree table.
// Every collected symbol is a node, including isolated ones.
// 4. Linearization: Kahn's algorithm over a min-heap frontier. Ties are
// broken by smallest code point, so identical input always produces
// identical output.
//
// CRITICAL PATTERNS:
//
// Single terminal result per invocation:
// Both failure kinds (prefix conflict, cyclic constraint) are ordinary
// error values, never panics, and are unrecoverable for the given input.
// There is no retry and no partial result.
//
// Immutable graph, mutable copy:
// The Analysis is frozen after assembly. Linearize works on a copy of
// the in-degree table, so an Analysis can be linearized repeatedly and
// inspected for diagnostics without re-deriving anything.
//
// The engine is case-sensitive and performs no normalization. Callers
// must fold case and trim whitespace before invocation; see the
// wordlist package.
package alphabet
