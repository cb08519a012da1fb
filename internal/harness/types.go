package harness

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: every expectation matched.
	Pass bool `json:"pass"`

	// Kind, Len, Output, Elements and Digest describe the built container.
	// They are empty when the build failed. Elements holds scalar.Value
	// entries so that snapshots encode non-finite floats.
	Kind     string `json:"kind,omitempty"`
	Len      int    `json:"len"`
	Output   string `json:"output"`
	Elements []any  `json:"elements,omitempty"`
	Digest   string `json:"digest,omitempty"`

	// Error is the build error, if any. A build error is not a scenario
	// failure when the scenario expects it.
	Error string `json:"error,omitempty"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Built reports whether the arguments produced a container.
func (r *Result) Built() bool {
	return r.Error == ""
}
