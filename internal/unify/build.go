// Package unify builds fixed-length containers from arguments of different
// scalar types.
//
// Build takes values captured with scalar.Of, so every argument has passed
// the scalar.Scalar constraint at compile time and a common kind exists. The
// zero scalar.Value is the one exception: it has kind Invalid, and Build
// treats it like an argument with no common type. BuildAny is the entry point for values whose types are only known
// at run time (parsed literals, CUE requests); it performs the same check as
// a runtime contract and reports *NoCommonTypeError instead of building.
package unify

import (
	"reflect"

	"github.com/roach88/buildarray/internal/scalar"
)

// Build resolves the common kind of args and returns a container holding
// every argument converted to it, in argument order. Zero arguments yield an
// empty container of kind Invalid, and so does any argument list holding a
// zero scalar.Value: no elements are materialized without a common kind.
func Build(args ...scalar.Value) Container {
	kind := scalar.CommonOf(args...)
	if !kind.Valid() {
		return Container{}
	}

	elems := make([]scalar.Value, len(args))
	for i, a := range args {
		elems[i] = scalar.Convert(a, kind)
	}
	return Container{kind: kind, elems: elems}
}

// BuildAny is Build for dynamically typed arguments. Every argument must hold
// a Go scalar (or a scalar.Value); the first one that does not aborts the
// build with a *NoCommonTypeError and no container is produced.
func BuildAny(args ...any) (Container, error) {
	vals := make([]scalar.Value, len(args))
	for i, a := range args {
		v, ok := scalar.FromAny(a)
		if !ok {
			return Container{}, &NoCommonTypeError{
				Index: i,
				Type:  typeName(a),
				Seen:  kindsOf(vals[:i]),
			}
		}
		vals[i] = v
	}
	return Build(vals...), nil
}

func kindsOf(vals []scalar.Value) []scalar.Kind {
	ks := make([]scalar.Kind, len(vals))
	for i, v := range vals {
		ks[i] = v.Kind()
	}
	return ks
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
