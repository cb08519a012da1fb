// Package request loads named build requests from CUE.
//
// A request file declares argument lists under build.<name>:
//
//	build: demo: {
//	    description: "mixed scalars resolve to float32"
//	    args: [1, "0u", "'a'", "3.2f", false]
//	}
//	build: packt: args: [1, "Packt", 2.0]
//
// Plain CUE numbers and bools map to int, float64 and bool. Strings are
// parsed as literals so that types CUE cannot express ("0u", "3.2f",
// "uint8(7)") are still reachable; a string that is not a literal, like
// "Packt", stays a string and fails to unify when the request is built.
//
// Load accepts a single file or a directory; the files of a directory are
// unified as one CUE package and must share a package clause.
package request
