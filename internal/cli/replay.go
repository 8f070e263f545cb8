package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/abecedary/internal/store"
)

// ReplayView is the JSON payload of the replay command.
type ReplayView struct {
	RunID         string `json:"run_id"`
	Deterministic bool   `json:"deterministic"`
	Stored        string `json:"stored"`
	Recomputed    string `json:"recomputed"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <run-id>",
		Short: "Re-run a recorded inference and verify the outcome matches",
		Long: `Re-execute the engine on a recorded run's word list and compare the
outcome with what was stored. A divergence means the store was modified
or the engine's tie-break policy changed between versions.

Exit codes: 0 when the replay reproduces the stored outcome, 1 on
divergence, 2 when the run id is unknown or the store is unavailable.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runReplay(opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openStore(opts, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := s.ReplayRun(cmd.Context(), id)
	if errors.Is(err, store.ErrRunNotFound) {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("run %s not found", id), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("run %s not found", id))
	}
	if err != nil {
		_ = formatter.Error(ErrCodeStore, fmt.Sprintf("cannot replay run: %v", err), nil)
		return WrapExitError(ExitCommandError, "cannot replay run", err)
	}

	view := ReplayView{
		RunID:         result.RunID,
		Deterministic: result.Deterministic,
		Stored:        result.Stored,
		Recomputed:    result.Recomputed,
	}

	if !result.Deterministic {
		msg := fmt.Sprintf("replay diverged: stored %s, recomputed %s", result.Stored, result.Recomputed)
		_ = formatter.Error(ErrCodeGeneric, msg, view)
		return NewExitError(ExitFailure, msg)
	}

	if formatter.Format == "json" {
		return formatter.Success(view)
	}
	fmt.Fprintf(formatter.Writer, "replay ok: %s\n", result.Stored)
	return nil
}
