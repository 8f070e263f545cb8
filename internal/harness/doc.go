// Package harness provides conformance scenario execution for the
// inference engine.
//
// Scenarios are YAML files describing a word list and the expected
// terminal outcome: either an inferred order or one of the two failure
// kinds. The harness normalizes the words the same way the CLI does,
// runs the engine, and checks the expectation.
//
// Every execution also produces a deterministic trace snapshot (sorted
// symbols, edge list, in-degree table, outcome) that can be compared
// against golden files with RunWithGolden. Golden files serve as the
// source of truth for expected engine behavior; regenerate with:
//
//	go test ./internal/harness -update
package harness
