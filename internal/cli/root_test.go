package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoot_RejectsUnknownFormat tests the persistent format validation.
func TestRoot_RejectsUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "infer", "--format", "xml", "ab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

// TestRoot_ListsSubcommands tests that every command is registered.
func TestRoot_ListsSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"infer", "history", "show", "replay", "verify"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
