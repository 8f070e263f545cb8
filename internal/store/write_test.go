package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/abecedary/internal/alphabet"
)

// TestWriteRun_RoundTrip tests that a written run reads back with its
// words in input order.
func TestWriteRun_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	words := []string{"wrt", "wrf", "er", "ett", "rftt"}
	run := NewRun(words, "wertf", nil)
	require.NoError(t, s.WriteRun(ctx, run))

	got, err := s.ReadRun(ctx, run.ID)
	require.NoError(t, err)

	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, words, got.Words)
	assert.Equal(t, len(words), got.WordCount)
	assert.Equal(t, StatusOK, got.Status)
	assert.Equal(t, "wertf", got.Ordering)
	assert.Equal(t, 5, got.SymbolCount)
	assert.Empty(t, got.ErrorCode)
}

// TestWriteRun_Idempotent tests that writing the same run twice is a
// silent no-op.
func TestWriteRun_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := NewRun([]string{"ab"}, "ab", nil)
	require.NoError(t, s.WriteRun(ctx, run))
	require.NoError(t, s.WriteRun(ctx, run))

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

// TestWriteRun_FailureOutcome tests that engine failures are stored with
// their code and message, not as Go error strings.
func TestWriteRun_FailureOutcome(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	words := []string{"abc", "ab"}
	_, inferErr := alphabet.Infer(words)
	require.Error(t, inferErr)

	run := NewRun(words, "", inferErr)
	require.NoError(t, s.WriteRun(ctx, run))

	got, err := s.ReadRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t, string(alphabet.ErrCodePrefixConflict), got.ErrorCode)
	assert.NotEmpty(t, got.ErrorMessage)
	assert.Empty(t, got.Ordering)
}

// TestReadRun_NotFound tests the sentinel for unknown run ids.
func TestReadRun_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ReadRun(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrRunNotFound)
}

// TestListRuns_Limit tests listing order and the limit clamp.
func TestListRuns_Limit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		run := NewRun([]string{"ab"}, "ab", nil)
		require.NoError(t, s.WriteRun(ctx, run))
	}

	runs, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	// Listings never carry words, only the count.
	for _, run := range runs {
		assert.Nil(t, run.Words)
		assert.Equal(t, 1, run.WordCount)
	}
}
