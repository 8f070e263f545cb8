package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/abecedary/internal/alphabet"
)

// Run statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Run is one recorded engine invocation: the normalized input words and
// the terminal outcome.
type Run struct {
	ID        string
	CreatedAt time.Time

	// Words is the normalized input, in engine order. Not populated by
	// ListRuns; WordCount always is.
	Words       []string
	WordCount   int
	SymbolCount int

	// Status is StatusOK or StatusError.
	Status string

	// Ordering holds the inferred order when Status is StatusOK.
	Ordering string

	// ErrorCode and ErrorMessage hold the engine failure when Status is
	// StatusError.
	ErrorCode    string
	ErrorMessage string
}

// NewRun builds a Run record from an engine invocation. ordering and
// inferErr are the two arms of the engine's result; exactly one is
// meaningful.
func NewRun(words []string, ordering string, inferErr error) Run {
	run := Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Words:     words,
		WordCount: len(words),
	}

	if inferErr != nil {
		run.Status = StatusError
		run.ErrorMessage = inferErr.Error()
		var ie *alphabet.InferenceError
		if errors.As(inferErr, &ie) {
			run.ErrorCode = string(ie.Code)
			run.ErrorMessage = ie.Message
		}
		return run
	}

	run.Status = StatusOK
	run.Ordering = ordering
	run.SymbolCount = len([]rune(ordering))
	return run
}
