package scalar

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Value is an immutable scalar tagged with its kind.
//
// The payload is kept as raw bits: two's complement for signed kinds and
// Bool, the plain value for unsigned kinds and IEEE 754 binary64 for floats.
// Float32 payloads are rounded to float32 precision before they are widened.
type Value struct {
	kind Kind
	bits uint64
}

// Of captures v together with the kind of its static type.
func Of[S Scalar](v S) Value {
	rv := reflect.ValueOf(v)
	return fromReflectValue(rv)
}

// FromAny captures v if its dynamic type is a scalar type. The second result
// is false for nil and every non-scalar type.
func FromAny(v any) (Value, bool) {
	if v == nil {
		return Value{}, false
	}
	if sv, ok := v.(Value); ok {
		return sv, sv.kind.Valid()
	}
	val := fromReflectValue(reflect.ValueOf(v))
	return val, val.kind.Valid()
}

func fromReflectValue(rv reflect.Value) Value {
	k := fromReflect(rv.Kind())
	switch {
	case k == Bool:
		return BoolValue(rv.Bool())
	case k.IsFloat():
		return FloatValue(k, rv.Float())
	case k.IsSigned():
		return IntValue(k, rv.Int())
	case k.IsUnsigned():
		return UintValue(k, rv.Uint())
	default:
		return Value{}
	}
}

// BoolValue returns a Bool value.
func BoolValue(b bool) Value {
	if b {
		return Value{kind: Bool, bits: 1}
	}
	return Value{kind: Bool}
}

// IntValue returns n converted to kind k.
func IntValue(k Kind, n int64) Value {
	return Convert(Value{kind: Int64, bits: uint64(n)}, k)
}

// UintValue returns n converted to kind k.
func UintValue(k Kind, n uint64) Value {
	return Convert(Value{kind: Uint64, bits: n}, k)
}

// FloatValue returns f converted to kind k.
func FloatValue(k Kind, f float64) Value {
	return Convert(Value{kind: Float64, bits: math.Float64bits(f)}, k)
}

// Kind returns the kind of v. The zero Value has kind Invalid.
func (v Value) Kind() Kind { return v.kind }

// Bool reports whether v is non-zero.
func (v Value) Bool() bool {
	if v.kind.IsFloat() {
		return v.Float() != 0
	}
	return v.bits != 0
}

// Int returns v as an int64, truncating floats toward zero.
func (v Value) Int() int64 {
	if v.kind.IsFloat() {
		return int64(v.Float())
	}
	return int64(v.bits)
}

// Uint returns v as a uint64.
func (v Value) Uint() uint64 {
	if v.kind.IsFloat() {
		f := v.Float()
		if f < 0 {
			return uint64(int64(f))
		}
		return uint64(f)
	}
	return v.bits
}

// Float returns v as a float64.
func (v Value) Float() float64 {
	switch {
	case v.kind.IsFloat():
		return math.Float64frombits(v.bits)
	case v.kind.IsUnsigned():
		return float64(v.bits)
	default:
		return float64(int64(v.bits))
	}
}

// Interface returns v as a value of the Go type named by its kind, for
// example float32(3.2) for a Float32 value. Bool values are returned as bool.
func (v Value) Interface() any {
	switch v.kind {
	case Bool:
		return v.bits != 0
	case Int8:
		return int8(v.bits)
	case Int16:
		return int16(v.bits)
	case Int32:
		return int32(v.bits)
	case Int:
		return int(v.bits)
	case Int64:
		return int64(v.bits)
	case Uint8:
		return uint8(v.bits)
	case Uint16:
		return uint16(v.bits)
	case Uint32:
		return uint32(v.bits)
	case Uint:
		return uint(v.bits)
	case Uint64:
		return v.bits
	case Uintptr:
		return uintptr(v.bits)
	case Float32:
		return float32(math.Float64frombits(v.bits))
	case Float64:
		return math.Float64frombits(v.bits)
	default:
		return nil
	}
}

// String renders v the way a C++ ostream prints the same value with default
// flags: bools as 0/1, integers in decimal and floats with six significant
// digits in the shortest of fixed or exponent notation.
func (v Value) String() string {
	switch {
	case v.kind == Bool:
		if v.bits != 0 {
			return "1"
		}
		return "0"
	case v.kind.IsFloat():
		return formatFloat(v.Float(), v.kind.Size()*8)
	case v.kind.IsUnsigned():
		return strconv.FormatUint(v.bits, 10)
	case v.kind.IsSigned():
		return strconv.FormatInt(int64(v.bits), 10)
	default:
		return "<invalid>"
	}
}

// formatFloat prints non-finite values as inf, -inf and nan, the spelling
// of printf's %g.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	return strconv.FormatFloat(f, 'g', 6, bitSize)
}

// MarshalJSON encodes v as the JSON value of Interface. Non-finite floats,
// which JSON numbers cannot hold, encode as the strings "inf", "-inf" and
// "nan". The zero Value encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind.IsFloat() {
		if f := v.Float(); math.IsInf(f, 0) || math.IsNaN(f) {
			return json.Marshal(v.String())
		}
	}
	return json.Marshal(v.Interface())
}

// GoString renders v as a Go conversion expression, e.g. float32(3.2).
func (v Value) GoString() string {
	if !v.kind.Valid() {
		return "scalar.Value{}"
	}
	if v.kind == Bool {
		return strconv.FormatBool(v.bits != 0)
	}
	return fmt.Sprintf("%s(%v)", v.kind, v.Interface())
}

// As returns v as a T. The payload is converted to T's kind first, so As
// never fails; callers that need an exact match compare kinds beforehand.
func As[T Scalar](v Value) T {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	cv := Convert(v, KindOf[T]())
	switch k := cv.kind; {
	case k == Bool:
		rv.SetBool(cv.bits != 0)
	case k.IsFloat():
		rv.SetFloat(cv.Float())
	case k.IsUnsigned():
		rv.SetUint(cv.bits)
	default:
		rv.SetInt(int64(cv.bits))
	}
	return out
}
