package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot captures the observable outcome of a scenario.
type Snapshot struct {
	ScenarioName string             `json:"scenario_name"`
	Container    *ContainerSnapshot `json:"container,omitempty"`
	Error        string             `json:"error,omitempty"`
}

// ContainerSnapshot is the built container as stored in golden files.
type ContainerSnapshot struct {
	Kind     string `json:"kind"`
	Len      int    `json:"len"`
	Output   string `json:"output"`
	Elements []any  `json:"elements"`
	Digest   string `json:"digest"`
}

// NewSnapshot builds the snapshot of result under the given name.
func NewSnapshot(name string, result *Result) Snapshot {
	snap := Snapshot{ScenarioName: name}
	if !result.Built() {
		snap.Error = result.Error
		return snap
	}
	elems := result.Elements
	if elems == nil {
		elems = []any{}
	}
	snap.Container = &ContainerSnapshot{
		Kind:     result.Kind,
		Len:      result.Len,
		Output:   result.Output,
		Elements: elems,
		Digest:   result.Digest,
	}
	return snap
}

// Marshal renders the snapshot as indented JSON with a trailing newline.
func (s Snapshot) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := NewSnapshot(scenarioName, result).Marshal()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)

	return nil
}
