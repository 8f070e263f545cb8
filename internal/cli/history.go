package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/abecedary/internal/store"
)

// RunView is the JSON projection of a stored run.
type RunView struct {
	ID           string   `json:"id"`
	CreatedAt    string   `json:"created_at"`
	WordCount    int      `json:"word_count"`
	SymbolCount  int      `json:"symbol_count"`
	Status       string   `json:"status"`
	Ordering     string   `json:"ordering,omitempty"`
	ErrorCode    string   `json:"error_code,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
	Words        []string `json:"words,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded inference runs",
		Long: `List inference runs recorded in the run store, newest first.

Requires --db pointing at a run store database.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, limit, cmd)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum runs to list (0 for all)")

	return cmd
}

func runHistory(opts *RootOptions, limit int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openStore(opts, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.ListRuns(cmd.Context(), limit)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, fmt.Sprintf("cannot list runs: %v", err), nil)
		return WrapExitError(ExitCommandError, "cannot list runs", err)
	}

	if formatter.Format == "json" {
		views := make([]RunView, len(runs))
		for i, run := range runs {
			views[i] = runView(run)
		}
		return formatter.Success(views)
	}

	if len(runs) == 0 {
		fmt.Fprintln(formatter.Writer, "no recorded runs")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintln(formatter.Writer, formatRunLine(run))
	}
	return nil
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "show <run-id>",
		Short:         "Show one recorded inference run",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runShow(opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openStore(opts, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	run, err := s.ReadRun(cmd.Context(), id)
	if errors.Is(err, store.ErrRunNotFound) {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("run %s not found", id), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("run %s not found", id))
	}
	if err != nil {
		_ = formatter.Error(ErrCodeStore, fmt.Sprintf("cannot read run: %v", err), nil)
		return WrapExitError(ExitCommandError, "cannot read run", err)
	}

	if formatter.Format == "json" {
		view := runView(run)
		view.Words = run.Words
		return formatter.Success(view)
	}

	fmt.Fprintln(formatter.Writer, formatRunLine(run))
	fmt.Fprintf(formatter.Writer, "  words: %s\n", strings.Join(run.Words, " "))
	if run.Status == store.StatusError {
		fmt.Fprintf(formatter.Writer, "  error: %s\n", run.ErrorMessage)
	}
	return nil
}

// newFormatter builds the standard formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// openStore opens the configured run store, mapping the unconfigured
// case to a command error.
func openStore(opts *RootOptions, formatter *OutputFormatter) (*store.Store, error) {
	if opts.DBPath == "" {
		_ = formatter.Error(ErrCodeStore, "no run store configured, set --db", nil)
		return nil, NewExitError(ExitCommandError, "no run store configured, set --db")
	}

	s, err := store.Open(opts.DBPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, fmt.Sprintf("cannot open run store: %v", err), nil)
		return nil, WrapExitError(ExitCommandError, "cannot open run store", err)
	}
	return s, nil
}

// runView projects a stored run for JSON output, without words.
func runView(run store.Run) RunView {
	return RunView{
		ID:           run.ID,
		CreatedAt:    run.CreatedAt.Format(time.RFC3339),
		WordCount:    run.WordCount,
		SymbolCount:  run.SymbolCount,
		Status:       run.Status,
		Ordering:     run.Ordering,
		ErrorCode:    run.ErrorCode,
		ErrorMessage: run.ErrorMessage,
	}
}

// formatRunLine renders one run for text listings.
func formatRunLine(run store.Run) string {
	outcome := run.Ordering
	if run.Status == store.StatusError {
		outcome = run.ErrorCode
	}
	return fmt.Sprintf("%s  %s  %d word(s)  %s  %s",
		run.ID,
		run.CreatedAt.Format(time.RFC3339),
		run.WordCount,
		run.Status,
		outcome,
	)
}
