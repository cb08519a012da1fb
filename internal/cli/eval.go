package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/buildarray/internal/request"
)

// RequestResult holds the outcome of one CUE build request.
type RequestResult struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Container   *ContainerOutput `json:"container,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// EvalResult holds the outcome of every request in a path.
type EvalResult struct {
	Requests []RequestResult `json:"requests"`
	Built    int             `json:"built"`
	Failed   int             `json:"failed"`
	Total    int             `json:"total"`
}

// String renders the summary line printed after the per-request lines.
func (r EvalResult) String() string {
	return fmt.Sprintf("\nEval Summary: %d built, %d failed, %d total", r.Built, r.Failed, r.Total)
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <path>",
		Short: "Build every request declared in CUE",
		Long: `Load build requests from a CUE file or directory and build each one.

Requests are declared as:

  build: demo: {
      description: "mixed scalars"
      args: [1, "0u", "'a'", "3.2f", false]
  }

CUE ints, floats and bools map to int, float64 and bool; strings are parsed
as literals.

Exit codes:
  0 - Every request built
  1 - One or more requests had no common type
  2 - Command error (path not found, CUE errors, malformed requests)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runEval(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := loggerOf(opts)

	loadResult, loadErrors := request.Load(path, request.LoadModeCollectAll)
	if len(loadErrors) > 0 {
		return outputLoadErrors(formatter, loadErrors)
	}
	formatter.VerboseLog("Found %d CUE file(s) in %s", loadResult.FileCount, path)

	result := EvalResult{
		Requests: make([]RequestResult, 0, len(loadResult.Requests)),
		Total:    len(loadResult.Requests),
	}
	for _, req := range loadResult.Requests {
		rr := RequestResult{Name: req.Name, Description: req.Description}

		c, err := req.Build()
		if err != nil {
			logger.Debug("request failed", "name", req.Name, "error", err)
			rr.Error = err.Error()
			result.Failed++
			formatter.Fail([]string{rr.Error}, "%s", req.Name)
		} else {
			logger.Debug("request built", "name", req.Name, "kind", c.Kind())
			out := newContainerOutput(c)
			rr.Container = &out
			result.Built++
			formatter.Pass("%s %s: %s", req.Name, out.Kind, out.Output)
		}
		result.Requests = append(result.Requests, rr)
	}

	if result.Failed > 0 {
		msg := fmt.Sprintf("%d request(s) failed", result.Failed)
		if err := formatter.Report(result, ErrCodeEvalFailed, msg); err != nil {
			return err
		}
		return NewExitError(ExitFailure, msg)
	}
	return formatter.Success(result)
}

// outputLoadErrors reports request loader errors as a command error.
func outputLoadErrors(formatter *OutputFormatter, errs []error) error {
	code := request.ErrCodeGeneric
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}

	var loadErr *request.LoadError
	if errors.As(errs[0], &loadErr) {
		code = loadErr.Code
	}

	var details any
	if len(msgs) > 1 {
		details = msgs
	}
	_ = formatter.Error(code, msgs[0], details)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, strings.Join(msgs, "; ")))
}
