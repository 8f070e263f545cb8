package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_ExpectedOrder tests a passing success scenario.
func TestRun_ExpectedOrder(t *testing.T) {
	result, err := Run(&Scenario{
		Name:   "classic",
		Words:  []string{"wrt", "wrf", "er", "ett", "rftt"},
		Expect: ExpectClause{Order: "wertf"},
	})
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.Empty(t, result.Failure)
	assert.Equal(t, "wertf", result.Snapshot.Order)
	assert.Equal(t, "ok", result.Snapshot.Status)
}

// TestRun_OrderMismatch tests that a wrong expected order fails the
// scenario without being a harness error.
func TestRun_OrderMismatch(t *testing.T) {
	result, err := Run(&Scenario{
		Name:   "mismatch",
		Words:  []string{"ab"},
		Expect: ExpectClause{Order: "ba"},
	})
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Failure, `expected order "ba"`)
}

// TestRun_ExpectedFailure tests a passing failure scenario.
func TestRun_ExpectedFailure(t *testing.T) {
	result, err := Run(&Scenario{
		Name:   "conflict",
		Words:  []string{"abc", "ab"},
		Expect: ExpectClause{Error: ExpectPrefixConflict},
	})
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.Equal(t, "error", result.Snapshot.Status)
	assert.Equal(t, "PREFIX_CONFLICT", result.Snapshot.ErrorCode)
}

// TestRun_WrongFailureKind tests expecting one failure kind and getting
// the other.
func TestRun_WrongFailureKind(t *testing.T) {
	result, err := Run(&Scenario{
		Name:   "wrong-kind",
		Words:  []string{"abc", "ab"},
		Expect: ExpectClause{Error: ExpectCyclicConstraint},
	})
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Failure, "cyclic_constraint")
}

// TestRun_NormalizesLikeCLI tests that scenario words go through the
// same case folding as CLI input.
func TestRun_NormalizesLikeCLI(t *testing.T) {
	result, err := Run(&Scenario{
		Name:   "folded",
		Words:  []string{"WRT", "wrf", "er", "ETT", "rftt"},
		Expect: ExpectClause{Order: "wertf"},
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)
}

// TestRun_UnexpectedSuccess tests expecting a failure but getting an
// order.
func TestRun_UnexpectedSuccess(t *testing.T) {
	result, err := Run(&Scenario{
		Name:   "unexpected-success",
		Words:  []string{"ab", "ac"},
		Expect: ExpectClause{Error: ExpectCyclicConstraint},
	})
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Failure, "expected cyclic_constraint failure")
}
