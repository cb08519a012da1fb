// Package fixed provides an immutable, fixed-length array whose element type
// is a Go type parameter.
//
// Of relies on Go's own type inference to unify its arguments: untyped
// constants of different kinds resolve to the last of int, rune, float in
// that order, so fixed.Of(1, 'a', 3.2) is an Array[float64], while
// fixed.Of(1, "Packt", 2.0) and fixed.Of(int8(1), uint(2)) do not compile.
package fixed

import (
	"iter"
	"slices"
	"strings"

	"github.com/roach88/buildarray/internal/scalar"
)

// Array is an ordered, contiguous sequence of scalars whose length is fixed
// when it is built. The zero Array is empty.
type Array[T scalar.Scalar] struct {
	elems []T
}

// Of builds an Array holding vals in argument order. vals is copied, so the
// caller's slice may be reused.
func Of[T scalar.Scalar](vals ...T) Array[T] {
	return Array[T]{elems: slices.Clone(vals)}
}

// Len returns the number of elements.
func (a Array[T]) Len() int { return len(a.elems) }

// At returns the i'th element. It panics if i is out of range.
func (a Array[T]) At(i int) T { return a.elems[i] }

// All iterates over index/element pairs in order.
func (a Array[T]) All() iter.Seq2[int, T] { return slices.All(a.elems) }

// Values iterates over the elements in order.
func (a Array[T]) Values() iter.Seq[T] { return slices.Values(a.elems) }

// Slice returns a copy of the elements.
func (a Array[T]) Slice() []T { return slices.Clone(a.elems) }

// Kind returns the scalar kind of T.
func (a Array[T]) Kind() scalar.Kind { return scalar.KindOf[T]() }

// String returns the elements separated by single spaces, each formatted
// like scalar.Value.String.
func (a Array[T]) String() string {
	parts := make([]string, len(a.elems))
	for i, v := range a.elems {
		parts[i] = scalar.Of(v).String()
	}
	return strings.Join(parts, " ")
}
