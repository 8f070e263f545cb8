package harness

import (
	"errors"
	"fmt"

	"github.com/roach88/abecedary/internal/alphabet"
	"github.com/roach88/abecedary/internal/wordlist"
)

// Result is the outcome of executing one scenario.
type Result struct {
	Scenario string

	// Passed reports whether the engine outcome matched the expectation.
	Passed bool

	// Failure explains the mismatch when Passed is false.
	Failure string

	// Snapshot is the deterministic trace of the execution, used for
	// golden comparison.
	Snapshot TraceSnapshot
}

// Run normalizes the scenario's words, executes the engine, and checks
// the expectation. Scenario execution errors (not engine failures) are
// returned as Go errors; an engine failure is part of the outcome and
// lands in the Result.
func Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	words := wordlist.Normalize(scenario.Words, wordlist.Options{
		CaseSensitive: scenario.CaseSensitive,
	})
	if len(words) == 0 {
		return nil, fmt.Errorf("scenario %q: no words left after normalization", scenario.Name)
	}

	result := &Result{Scenario: scenario.Name}
	result.Snapshot = TraceSnapshot{
		Scenario: scenario.Name,
		Words:    words,
	}

	analysis, err := alphabet.Analyze(words)
	if err != nil {
		result.finishWithError(scenario, err)
		return result, nil
	}

	result.Snapshot.fillGraph(analysis)

	order, err := analysis.Linearize()
	if err != nil {
		result.finishWithError(scenario, err)
		return result, nil
	}

	result.Snapshot.Status = "ok"
	result.Snapshot.Order = order

	if scenario.Expect.Order == "" {
		result.Failure = fmt.Sprintf("expected %s failure, got order %q", scenario.Expect.Error, order)
		return result, nil
	}
	if order != scenario.Expect.Order {
		result.Failure = fmt.Sprintf("expected order %q, got %q", scenario.Expect.Order, order)
		return result, nil
	}
	result.Passed = true
	return result, nil
}

// finishWithError records an engine failure in the snapshot and checks
// it against the expectation.
func (r *Result) finishWithError(scenario *Scenario, err error) {
	r.Snapshot.Status = "error"

	var ie *alphabet.InferenceError
	if errors.As(err, &ie) {
		r.Snapshot.ErrorCode = string(ie.Code)
	}

	expected := scenario.Expect.Error
	switch {
	case expected == "":
		r.Failure = fmt.Sprintf("expected order %q, got failure: %v", scenario.Expect.Order, err)
	case expected == ExpectPrefixConflict && alphabet.IsPrefixConflict(err):
		r.Passed = true
	case expected == ExpectCyclicConstraint && alphabet.IsCycle(err):
		r.Passed = true
	default:
		r.Failure = fmt.Sprintf("expected %s failure, got: %v", expected, err)
	}
}
