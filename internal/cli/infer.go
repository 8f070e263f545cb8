package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/abecedary/internal/alphabet"
	"github.com/roach88/abecedary/internal/store"
	"github.com/roach88/abecedary/internal/wordlist"
)

// InferResult is the success payload of the infer command.
type InferResult struct {
	Order       string `json:"order"`
	SymbolCount int    `json:"symbol_count"`
	RunID       string `json:"run_id,omitempty"`
}

// NewInferCommand creates the infer command.
func NewInferCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		file          string
		caseSensitive bool
	)

	cmd := &cobra.Command{
		Use:   "infer [words...]",
		Short: "Infer the alphabet order from a sorted word list",
		Long: `Infer the collation order of an unknown alphabet.

Words are given inline or via --file as a newline-delimited list, and
must already be sorted under the alphabet being inferred. Input is NFC
normalized and case folded before inference; --case-sensitive keeps
'A' and 'a' distinct.

Exit codes: 0 on success, 1 on an engine-reported failure (prefix
conflict or cyclic constraints), 2 when no input was supplied or the
file is unreadable.`,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfer(rootOpts, args, file, caseSensitive, cmd)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "newline-delimited word list file")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "skip Unicode case folding")

	return cmd
}

func runInfer(opts *RootOptions, args []string, file string, caseSensitive bool, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	words, err := gatherWords(args, file, caseSensitive)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		_ = formatter.Error(ErrCodeNoInput, "no input words supplied", nil)
		return NewExitError(ExitCommandError, "no input words supplied")
	}

	formatter.VerboseLog("Inferring order from %d word(s)", len(words))

	analysis, analyzeErr := alphabet.Analyze(words)
	var (
		order    string
		inferErr error
	)
	if analyzeErr != nil {
		inferErr = analyzeErr
	} else {
		logDiagnostics(formatter, analysis)
		order, inferErr = analysis.Linearize()
	}

	runID, err := recordRun(cmd.Context(), opts, formatter, words, order, inferErr)
	if err != nil {
		return err
	}

	if inferErr != nil {
		return outputInferFailure(formatter, inferErr)
	}

	result := InferResult{
		Order:       order,
		SymbolCount: len([]rune(order)),
		RunID:       runID,
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintln(formatter.Writer, result.Order)
	return nil
}

// gatherWords resolves the input word list from inline args or a file,
// normalized for the engine.
func gatherWords(args []string, file string, caseSensitive bool) ([]string, error) {
	opts := wordlist.Options{CaseSensitive: caseSensitive}

	if file == "" {
		return wordlist.FromArgs(args, opts), nil
	}
	if len(args) > 0 {
		return nil, NewExitError(ExitCommandError, "provide words inline or via --file, not both")
	}

	words, err := wordlist.Load(file, opts)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot read word list %s", file), err)
	}
	return words, nil
}

// logDiagnostics emits the edge list and in-degree table to the side
// channel. Never mixed into the primary output.
func logDiagnostics(formatter *OutputFormatter, analysis *alphabet.Analysis) {
	if !formatter.Verbose {
		return
	}

	edges := analysis.Edges()
	rendered := make([]string, len(edges))
	for i, e := range edges {
		rendered[i] = fmt.Sprintf("%s->%s", string(e.From), string(e.To))
	}
	formatter.VerboseLog("Edges: %s", strings.Join(rendered, " "))

	indegrees := analysis.InDegrees()
	parts := make([]string, 0, len(indegrees))
	for _, r := range analysis.Symbols() {
		parts = append(parts, fmt.Sprintf("%s=%d", string(r), indegrees[r]))
	}
	formatter.VerboseLog("In-degrees: %s", strings.Join(parts, " "))
}

// recordRun persists the run when a store is configured. Returns the run
// id, or empty when recording is disabled.
func recordRun(ctx context.Context, opts *RootOptions, formatter *OutputFormatter, words []string, order string, inferErr error) (string, error) {
	if opts.DBPath == "" {
		return "", nil
	}

	s, err := store.Open(opts.DBPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, fmt.Sprintf("cannot open run store: %v", err), nil)
		return "", WrapExitError(ExitCommandError, "cannot open run store", err)
	}
	defer s.Close()

	run := store.NewRun(words, order, inferErr)
	if err := s.WriteRun(ctx, run); err != nil {
		_ = formatter.Error(ErrCodeStore, fmt.Sprintf("cannot record run: %v", err), nil)
		return "", WrapExitError(ExitCommandError, "cannot record run", err)
	}

	formatter.VerboseLog("Recorded run %s", run.ID)
	return run.ID, nil
}

// outputInferFailure maps an engine failure onto the CLI error codes and
// exit code 1.
func outputInferFailure(formatter *OutputFormatter, err error) error {
	code := ErrCodeGeneric
	var details interface{}

	var ie *alphabet.InferenceError
	if errors.As(err, &ie) {
		switch ie.Code {
		case alphabet.ErrCodePrefixConflict:
			code = ErrCodePrefixConflict
			details = map[string]string{"earlier": ie.Earlier, "later": ie.Later}
		case alphabet.ErrCodeCyclicConstraint:
			code = ErrCodeCyclicConstraint
			if len(ie.CyclePath) > 0 {
				details = map[string]interface{}{"cycle": ie.CyclePath}
			}
		}
	}

	_ = formatter.Error(code, err.Error(), details)
	return NewExitError(ExitFailure, err.Error())
}
