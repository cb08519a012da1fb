package harness

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/buildarray/internal/literal"
	"github.com/roach88/buildarray/internal/unify"
)

// Harness runs scenarios. The zero value is not usable; call New.
type Harness struct {
	logger *slog.Logger
}

// New creates a harness that logs scenario progress to logger.
// A nil logger discards everything.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{logger: logger}
}

// Run executes a scenario with a silent harness.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run executes a test scenario and returns the result.
//
// Execution flow:
// 1. Validate the scenario
// 2. Parse every argument literal
// 3. Build the container (or capture the build error)
// 4. Compare against expect / expect_error
//
// The returned error is non-nil only when the scenario itself is invalid;
// a failing expectation is reported through Result.Pass and Result.Errors.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", scenario.Name, err)
	}

	h.logger.Debug("running scenario", "name", scenario.Name, "args", len(scenario.Args))

	result := NewResult()
	container, err := build(scenario.Args)
	if err != nil {
		result.Error = err.Error()
	} else {
		result.Kind = container.Kind().String()
		result.Len = container.Len()
		result.Output = container.String()
		result.Elements = container.JSONElements()
		result.Digest = container.Digest()
	}

	switch {
	case scenario.ExpectError != "":
		checkExpectedError(result, scenario.ExpectError)
	case scenario.Expect != nil:
		checkExpectedContainer(result, scenario.Expect, len(scenario.Args))
	}

	h.logger.Debug("scenario finished",
		"name", scenario.Name,
		"pass", result.Pass,
		"kind", result.Kind,
		"errors", len(result.Errors),
	)
	return result, nil
}

func build(args []string) (unify.Container, error) {
	vals, err := literal.ParseAll(args)
	if err != nil {
		return unify.Container{}, err
	}
	return unify.BuildAny(vals...)
}

func checkExpectedError(result *Result, want string) {
	if result.Built() {
		result.AddError(fmt.Sprintf("expected error containing %q, built %s container [%s]",
			want, result.Kind, result.Output))
		return
	}
	if !strings.Contains(result.Error, want) {
		result.AddError(fmt.Sprintf("expected error containing %q, got %q", want, result.Error))
	}
}

func checkExpectedContainer(result *Result, want *ExpectClause, argCount int) {
	if !result.Built() {
		result.AddError(fmt.Sprintf("unexpected error: %s", result.Error))
		return
	}
	if result.Kind != want.Kind {
		result.AddError(fmt.Sprintf("kind: expected %s, got %s", want.Kind, result.Kind))
	}
	if result.Output != want.Output {
		result.AddError(fmt.Sprintf("output: expected %q, got %q", want.Output, result.Output))
	}
	wantLen := argCount
	if want.Len != nil {
		wantLen = *want.Len
	}
	if result.Len != wantLen {
		result.AddError(fmt.Sprintf("len: expected %d, got %d", wantLen, result.Len))
	}
}

// Update rewrites the scenario's expectation from an actual result: a
// built container becomes an expect clause and a build error becomes
// expect_error. An explicit len in the old clause is kept and refreshed.
func Update(scenario *Scenario, result *Result) {
	if result.Built() {
		expect := &ExpectClause{Kind: result.Kind, Output: result.Output}
		if scenario.Expect != nil && scenario.Expect.Len != nil {
			n := result.Len
			expect.Len = &n
		}
		scenario.ExpectError = ""
		scenario.Expect = expect
		return
	}
	scenario.Expect = nil
	scenario.ExpectError = result.Error
}
