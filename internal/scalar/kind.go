package scalar

import (
	"math/bits"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is satisfied by every Go integer and floating-point type,
// including named types built on them.
type Number interface {
	constraints.Integer | constraints.Float
}

// Scalar is Number plus bool. It is the constraint carried by every
// constructor that accepts statically typed inputs.
type Scalar interface {
	~bool | Number
}

// Kind identifies a scalar type. The zero Kind is Invalid.
type Kind uint8

const (
	Invalid Kind = iota
	Bool
	Int8
	Int16
	Int32
	Int
	Int64
	Uint8
	Uint16
	Uint32
	Uint
	Uint64
	Uintptr
	Float32
	Float64
)

type kindInfo struct {
	name   string
	size   int
	signed bool
	float  bool
	rank   int // integer conversion rank after promotion; 0 for kinds that promote
}

var kinds = [...]kindInfo{
	Invalid: {name: "invalid"},
	Bool:    {name: "bool", size: 1},
	Int8:    {name: "int8", size: 1, signed: true},
	Int16:   {name: "int16", size: 2, signed: true},
	Int32:   {name: "int32", size: 4, signed: true, rank: 1},
	Int:     {name: "int", size: bits.UintSize / 8, signed: true, rank: 2},
	Int64:   {name: "int64", size: 8, signed: true, rank: 3},
	Uint8:   {name: "uint8", size: 1},
	Uint16:  {name: "uint16", size: 2},
	Uint32:  {name: "uint32", size: 4, rank: 1},
	Uint:    {name: "uint", size: bits.UintSize / 8, rank: 2},
	Uint64:  {name: "uint64", size: 8, rank: 3},
	Uintptr: {name: "uintptr", size: bits.UintSize / 8, rank: 2},
	Float32: {name: "float32", size: 4, signed: true, float: true},
	Float64: {name: "float64", size: 8, signed: true, float: true},
}

func (k Kind) info() kindInfo {
	if int(k) >= len(kinds) {
		return kinds[Invalid]
	}
	return kinds[k]
}

// String returns the Go spelling of the kind.
func (k Kind) String() string { return k.info().name }

// Size returns the storage size of one element of this kind in bytes.
func (k Kind) Size() int { return k.info().size }

// Valid reports whether k names a scalar kind.
func (k Kind) Valid() bool { return k > Invalid && int(k) < len(kinds) }

// IsFloat reports whether k is Float32 or Float64.
func (k Kind) IsFloat() bool { return k.info().float }

// IsBool reports whether k is Bool.
func (k Kind) IsBool() bool { return k == Bool }

// IsSigned reports whether k is a signed integer or a float.
func (k Kind) IsSigned() bool { return k.info().signed }

// IsUnsigned reports whether k is an unsigned integer kind. Bool is neither
// signed nor unsigned.
func (k Kind) IsUnsigned() bool {
	return k.Valid() && !k.IsBool() && !k.info().signed
}

// ParseKind maps a Go type name ("int", "float32", "byte", "rune", ...) to its
// kind. The second result is false for anything that is not a scalar type.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "byte":
		return Uint8, true
	case "rune":
		return Int32, true
	}
	for k := Bool; int(k) < len(kinds); k++ {
		if kinds[k].name == name {
			return k, true
		}
	}
	return Invalid, false
}

// KindOf returns the kind of the type argument. Named types report the kind
// of their underlying type.
func KindOf[S Scalar]() Kind {
	return fromReflect(reflect.TypeFor[S]().Kind())
}

func fromReflect(rk reflect.Kind) Kind {
	switch rk {
	case reflect.Bool:
		return Bool
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int:
		return Int
	case reflect.Int64:
		return Int64
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint:
		return Uint
	case reflect.Uint64:
		return Uint64
	case reflect.Uintptr:
		return Uintptr
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		return Invalid
	}
}
