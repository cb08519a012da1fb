// Package scalar models the closed set of Go scalar kinds that can take part
// in common-type resolution.
//
// The package is the foundational layer: fixed, unify, literal and request
// import scalar; scalar imports nothing internal.
//
// Key rules:
//   - Scalar and Number are type-set constraints, so non-scalar arguments
//     (strings, structs, slices) are rejected by the compiler, not at run time
//   - Common follows the usual arithmetic conversions: identical kinds stay,
//     floats win, narrow integers promote to Int32, then rank and signedness
//     decide
//   - Values are immutable (kind, payload) pairs; Convert never mutates
//   - rune is Int32 and byte is Uint8; Go has no separate character kind
package scalar
