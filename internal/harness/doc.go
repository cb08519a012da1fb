// Package harness runs conformance scenarios against the container builder.
//
// A scenario pairs an argument list, written as literal tokens, with the
// container those arguments must build or the error they must produce.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: demo
//	description: "Mixed scalars resolve to float32"
//	args: ["1", "0u", "'a'", "3.2f", "false"]
//	expect:
//	  kind: float32
//	  output: "1 0 97 3.2 0"
//
// A scenario that must fail names a substring of the error instead:
//
//	name: packt
//	description: "Strings do not unify with numbers"
//	args: ["1", '"Packt"', "2.0"]
//	expect_error: "no common type"
//
// Unknown fields are rejected, so a typo such as "expected:" is reported
// at load time rather than silently ignored.
//
// # Golden Files
//
// RunWithGolden snapshots the kind, rendering, elements and digest of the
// built container into testdata/golden/{name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/demo.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
