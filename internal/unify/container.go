package unify

import (
	"iter"
	"slices"
	"strings"

	"github.com/roach88/buildarray/internal/fixed"
	"github.com/roach88/buildarray/internal/scalar"
)

// Container is a fixed-length sequence of scalars that all share one kind.
// It has no mutating methods; copies share storage safely.
type Container struct {
	kind  scalar.Kind
	elems []scalar.Value
}

// Kind returns the common kind of the elements. An empty container reports
// Invalid.
func (c Container) Kind() scalar.Kind { return c.kind }

// Len returns the number of elements.
func (c Container) Len() int { return len(c.elems) }

// At returns the i'th element. It panics if i is out of range.
func (c Container) At(i int) scalar.Value { return c.elems[i] }

// All iterates over index/element pairs in argument order.
func (c Container) All() iter.Seq2[int, scalar.Value] { return slices.All(c.elems) }

// Values iterates over the elements in argument order.
func (c Container) Values() iter.Seq[scalar.Value] { return slices.Values(c.elems) }

// Slice returns a copy of the elements.
func (c Container) Slice() []scalar.Value { return slices.Clone(c.elems) }

// Interfaces returns the elements as Go values of the common type, e.g.
// []any{float32(1), float32(0)}.
func (c Container) Interfaces() []any {
	out := make([]any, len(c.elems))
	for i, v := range c.elems {
		out[i] = v.Interface()
	}
	return out
}

// JSONElements returns the elements boxed for encoding/json. Each entry is
// a scalar.Value, so finite elements encode as numbers or booleans and
// non-finite floats as "inf", "-inf" or "nan".
func (c Container) JSONElements() []any {
	out := make([]any, len(c.elems))
	for i, v := range c.elems {
		out[i] = v
	}
	return out
}

// String returns the elements separated by single spaces.
func (c Container) String() string {
	parts := make([]string, len(c.elems))
	for i, v := range c.elems {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// Typed returns the elements as a fixed.Array[T]. T must have the
// container's kind; otherwise the error wraps ErrKindMismatch. An empty
// container converts to an empty array of any T.
func Typed[T scalar.Scalar](c Container) (fixed.Array[T], error) {
	if len(c.elems) == 0 {
		return fixed.Of[T](), nil
	}
	if want := scalar.KindOf[T](); want != c.kind {
		return fixed.Array[T]{}, &KindMismatchError{Want: want, Have: c.kind}
	}
	out := make([]T, len(c.elems))
	for i, v := range c.elems {
		out[i] = scalar.As[T](v)
	}
	return fixed.Of(out...), nil
}

// MustTyped is like Typed but panics on error.
// Use only when the element type is known to match.
func MustTyped[T scalar.Scalar](c Container) fixed.Array[T] {
	arr, err := Typed[T](c)
	if err != nil {
		panic(err)
	}
	return arr
}

// KindMismatchError is returned by Typed.
type KindMismatchError struct {
	Want scalar.Kind
	Have scalar.Kind
}

func (e *KindMismatchError) Error() string {
	return "container holds " + e.Have.String() + ", not " + e.Want.String()
}

func (e *KindMismatchError) Unwrap() error { return ErrKindMismatch }
