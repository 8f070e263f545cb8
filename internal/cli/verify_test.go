package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

// TestVerify_AllPass tests a directory of passing scenarios.
func TestVerify_AllPass(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "classic.yaml", `name: classic
words: [wrt, wrf, er, ett, rftt]
expect:
  order: wertf
`)
	writeScenario(t, dir, "conflict.yaml", `name: conflict
words: [abc, ab]
expect:
  error: prefix_conflict
`)

	stdout, _, err := execute(t, "verify", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "PASS classic")
	assert.Contains(t, stdout, "PASS conflict")
	assert.Contains(t, stdout, "2/2 scenario(s) passed")
}

// TestVerify_Failure tests exit code 1 and the FAIL line when a
// scenario's expectation does not hold.
func TestVerify_Failure(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "wrong.yaml", `name: wrong
words: [wrt, wrf, er, ett, rftt]
expect:
  order: fwert
`)

	stdout, _, err := execute(t, "verify", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "FAIL wrong")
	assert.Contains(t, stdout, "0/1 scenario(s) passed")
}

// TestVerify_FailureJSON tests that the JSON envelope carries both the
// error and the per-scenario results.
func TestVerify_FailureJSON(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "wrong.yaml", `name: wrong
words: [ax, bx, cx, ay]
expect:
  order: abcxy
`)

	stdout, _, err := execute(t, "verify", "--format", "json", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	resp := decodeResponse(t, stdout)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["failed"])
}

// TestVerify_BadDirectory tests exit code 2 for an unreadable directory.
func TestVerify_BadDirectory(t *testing.T) {
	stdout, _, err := execute(t, "verify", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, ErrCodeBadDir)
}

// TestVerify_InvalidScenario tests exit code 2 for a scenario that fails
// validation.
func TestVerify_InvalidScenario(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "bad.yaml", `name: bad
words: [ab, cd]
expect: {}
`)

	_, _, err := execute(t, "verify", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
