package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance scenario: one argument list and the
// container (or failure) it must produce.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Args are literal tokens, parsed with the literal package.
	// Quote character literals in YAML: "'a'".
	Args []string `yaml:"args"`

	// Expect describes the container the arguments must build.
	Expect *ExpectClause `yaml:"expect,omitempty"`

	// ExpectError is a substring of the error the arguments must produce.
	// Exactly one of Expect and ExpectError is set.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// ExpectClause specifies the expected container.
type ExpectClause struct {
	// Kind is the expected common kind, spelled like a Go type ("float32").
	Kind string `yaml:"kind"`

	// Output is the expected space-separated rendering.
	Output string `yaml:"output"`

	// Len is the expected element count. Defaults to len(Args).
	Len *int `yaml:"len,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expected:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// SaveScenario writes s back to path as YAML.
func SaveScenario(path string, s *Scenario) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode scenario: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode scenario: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	return nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Args == nil {
		return fmt.Errorf("args is required (use [] for no arguments)")
	}

	switch {
	case s.Expect == nil && s.ExpectError == "":
		return fmt.Errorf("one of expect or expect_error is required")
	case s.Expect != nil && s.ExpectError != "":
		return fmt.Errorf("expect and expect_error are mutually exclusive")
	}

	if s.Expect != nil {
		if s.Expect.Kind == "" {
			return fmt.Errorf("expect: kind is required")
		}
		if s.Expect.Len != nil && *s.Expect.Len < 0 {
			return fmt.Errorf("expect: len must not be negative")
		}
	}

	return nil
}
