package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/abecedary/internal/harness"
)

// VerifyResult is the JSON payload of the verify command.
type VerifyResult struct {
	Total     int              `json:"total"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Scenarios []ScenarioResult `json:"scenarios"`
}

// ScenarioResult is one scenario's outcome.
type ScenarioResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Failure string `json:"failure,omitempty"`
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <scenarios-dir>",
		Short: "Run conformance scenarios against the engine",
		Long: `Run every YAML scenario under the given directory and check the
engine's outcome against each expectation.

Exit codes: 0 when all scenarios pass, 1 when any scenario fails, 2 when
the directory cannot be read or contains an invalid scenario.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runVerify(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	scenarios, err := harness.LoadScenarioDir(dir)
	if err != nil {
		_ = formatter.Error(ErrCodeBadDir, fmt.Sprintf("cannot load scenarios: %v", err), nil)
		return WrapExitError(ExitCommandError, "cannot load scenarios", err)
	}

	result := VerifyResult{Total: len(scenarios)}
	for _, scenario := range scenarios {
		formatter.VerboseLog("Running scenario: %s", scenario.Name)

		run, err := harness.Run(scenario)
		if err != nil {
			_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("scenario %s: %v", scenario.Name, err), nil)
			return WrapExitError(ExitCommandError, fmt.Sprintf("scenario %s", scenario.Name), err)
		}

		sr := ScenarioResult{Name: run.Scenario, Passed: run.Passed, Failure: run.Failure}
		result.Scenarios = append(result.Scenarios, sr)
		if run.Passed {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if formatter.Format == "json" {
		if result.Failed > 0 {
			// Failures keep the full scenario list in data alongside the
			// error envelope.
			response := CLIResponse{
				Status: "error",
				Data:   result,
				Error: &CLIError{
					Code:    ErrCodeGeneric,
					Message: fmt.Sprintf("%d scenario(s) failed", result.Failed),
				},
			}
			if err := json.NewEncoder(formatter.Writer).Encode(response); err != nil {
				return err
			}
		} else if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		for _, sr := range result.Scenarios {
			if sr.Passed {
				fmt.Fprintf(formatter.Writer, "PASS %s\n", sr.Name)
			} else {
				fmt.Fprintf(formatter.Writer, "FAIL %s: %s\n", sr.Name, sr.Failure)
			}
		}
		fmt.Fprintf(formatter.Writer, "%d/%d scenario(s) passed\n", result.Passed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}
	return nil
}
