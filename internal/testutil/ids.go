package testutil

// FixedIDGenerator returns the same trace id every time.
//
// CLI tests inject it in place of the random UUID generator so that JSON
// responses are byte-identical across runs and can be compared against
// golden files.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a new fixed trace id generator.
//
// If id is empty, Generate() returns "test-trace-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-trace-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed id.
//
// Implements cli.IDGenerator.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
