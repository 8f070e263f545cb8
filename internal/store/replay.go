package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/abecedary/internal/alphabet"
)

// ReplayResult reports whether re-running the engine on a stored word
// list reproduces the recorded outcome. A divergence means either the
// database was tampered with or the engine's tie-break policy changed
// between versions.
type ReplayResult struct {
	RunID         string
	Deterministic bool

	// Stored and Recomputed summarize the two outcomes when they
	// diverge: the ordering for successes, the error code for failures.
	Stored     string
	Recomputed string
}

// ReplayRun reads a stored run, re-executes the engine on its words,
// and compares the outcomes.
func (s *Store) ReplayRun(ctx context.Context, id string) (ReplayResult, error) {
	run, err := s.ReadRun(ctx, id)
	if err != nil {
		return ReplayResult{}, err
	}

	result := ReplayResult{RunID: id}
	result.Stored = outcomeSummary(run.Status, run.Ordering, run.ErrorCode)

	ordering, inferErr := alphabet.Infer(run.Words)
	if inferErr != nil {
		code := ""
		var ie *alphabet.InferenceError
		if errors.As(inferErr, &ie) {
			code = string(ie.Code)
		}
		result.Recomputed = outcomeSummary(StatusError, "", code)
		result.Deterministic = run.Status == StatusError && run.ErrorCode == code
		return result, nil
	}

	result.Recomputed = outcomeSummary(StatusOK, ordering, "")
	result.Deterministic = run.Status == StatusOK && run.Ordering == ordering
	return result, nil
}

// outcomeSummary renders one arm of a run outcome for divergence
// reporting.
func outcomeSummary(status, ordering, errorCode string) string {
	if status == StatusOK {
		return fmt.Sprintf("ok:%s", ordering)
	}
	return fmt.Sprintf("error:%s", errorCode)
}
