package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// InferenceError represents a terminal failure of the inference engine.
//
// Both failure kinds are unrecoverable for the given input:
//   - Prefix conflict: a later word is a strict prefix of an earlier,
//     longer word - no total order can satisfy this.
//   - Cyclic constraint: the derived precedence graph contains a cycle -
//     no total order satisfies all constraints.
//
// InferenceError includes structured fields for diagnostics. It is an
// ordinary result value; the engine never panics on malformed input.
type InferenceError struct {
	// Code identifies the failure category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Earlier and Later name the offending word pair (prefix conflicts).
	Earlier string
	Later   string

	// CyclePath holds one representative cycle for cyclic-constraint
	// failures, e.g. ["a", "b", "a"]. Best effort; may be empty.
	CyclePath []string
}

// ErrorCode categorizes inference failures.
type ErrorCode string

const (
	// ErrCodePrefixConflict indicates a longer word sorted before its own
	// strict prefix.
	ErrCodePrefixConflict ErrorCode = "PREFIX_CONFLICT"

	// ErrCodeCyclicConstraint indicates the precedence graph has no valid
	// linear extension.
	ErrCodeCyclicConstraint ErrorCode = "CYCLIC_CONSTRAINT"
)

// Error implements the error interface.
func (e *InferenceError) Error() string {
	if e.Earlier != "" && e.Later != "" {
		return fmt.Sprintf("%s: %s (earlier=%q, later=%q)", e.Code, e.Message, e.Earlier, e.Later)
	}
	if len(e.CyclePath) > 0 {
		return fmt.Sprintf("%s: %s (cycle: %s)", e.Code, e.Message, strings.Join(e.CyclePath, " -> "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsPrefixConflict returns true if the error is a prefix conflict.
// Uses errors.As to handle wrapped errors.
func IsPrefixConflict(err error) bool {
	var ie *InferenceError
	if errors.As(err, &ie) {
		return ie.Code == ErrCodePrefixConflict
	}
	return false
}

// IsCycle returns true if the error is a cyclic-constraint failure.
// Uses errors.As to handle wrapped errors.
func IsCycle(err error) bool {
	var ie *InferenceError
	if errors.As(err, &ie) {
		return ie.Code == ErrCodeCyclicConstraint
	}
	return false
}

// newPrefixConflictError creates an InferenceError for a prefix conflict.
func newPrefixConflictError(earlier, later string) *InferenceError {
	return &InferenceError{
		Code:    ErrCodePrefixConflict,
		Message: "word is followed by its own strict prefix",
		Earlier: earlier,
		Later:   later,
	}
}

// newCycleError creates an InferenceError for a cyclic constraint.
// path may be empty when no representative cycle was reconstructed.
func newCycleError(path []string) *InferenceError {
	return &InferenceError{
		Code:      ErrCodeCyclicConstraint,
		Message:   "precedence constraints are cyclic, no valid order exists",
		CyclePath: path,
	}
}
