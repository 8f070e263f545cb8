package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/abecedary/internal/alphabet"
)

// TestReplayRun_Deterministic tests that replaying a successful run
// reproduces the stored ordering.
func TestReplayRun_Deterministic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	words := []string{"wrt", "wrf", "er", "ett", "rftt"}
	ordering, err := alphabet.Infer(words)
	require.NoError(t, err)

	run := NewRun(words, ordering, nil)
	require.NoError(t, s.WriteRun(ctx, run))

	result, err := s.ReplayRun(ctx, run.ID)
	require.NoError(t, err)
	assert.True(t, result.Deterministic)
	assert.Equal(t, "ok:wertf", result.Stored)
	assert.Equal(t, result.Stored, result.Recomputed)
}

// TestReplayRun_FailureOutcome tests that replaying a stored failure
// reproduces the same error code.
func TestReplayRun_FailureOutcome(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	words := []string{"abc", "ab"}
	_, inferErr := alphabet.Infer(words)
	require.Error(t, inferErr)

	run := NewRun(words, "", inferErr)
	require.NoError(t, s.WriteRun(ctx, run))

	result, err := s.ReplayRun(ctx, run.ID)
	require.NoError(t, err)
	assert.True(t, result.Deterministic)
	assert.Equal(t, "error:PREFIX_CONFLICT", result.Stored)
}

// TestReplayRun_Divergence tests that a tampered ordering is reported as
// non-deterministic rather than an error.
func TestReplayRun_Divergence(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := NewRun([]string{"wrt", "wrf", "er", "ett", "rftt"}, "tampered", nil)
	require.NoError(t, s.WriteRun(ctx, run))

	result, err := s.ReplayRun(ctx, run.ID)
	require.NoError(t, err)
	assert.False(t, result.Deterministic)
	assert.Equal(t, "ok:tampered", result.Stored)
	assert.Equal(t, "ok:wertf", result.Recomputed)
}

// TestReplayRun_NotFound tests replaying an unknown run id.
func TestReplayRun_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ReplayRun(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}
