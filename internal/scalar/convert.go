package scalar

import (
	"fmt"
	"math"
)

// Convert returns v converted to kind to with Go conversion semantics:
// integers narrow by two's-complement wrap, floats truncate toward zero when
// converted to integers, and bool converts to 0 or 1 (and back to true for
// any non-zero value). It panics if to is not a valid kind, like a reflect
// conversion to an impossible type.
func Convert(v Value, to Kind) Value {
	if v.kind == to {
		return v
	}
	if !to.Valid() {
		panic(fmt.Sprintf("scalar: convert %s to invalid kind", v.kind))
	}

	switch {
	case to == Bool:
		return BoolValue(v.Bool())
	case to == Float32:
		return Value{kind: Float32, bits: math.Float64bits(float64(toFloat32(v)))}
	case to == Float64:
		return Value{kind: Float64, bits: math.Float64bits(v.Float())}
	case to.IsUnsigned():
		return Value{kind: to, bits: wrapUnsigned(to, v.Uint())}
	default:
		return Value{kind: to, bits: uint64(wrapSigned(to, v.Int()))}
	}
}

// toFloat32 converts straight from the integer payload so that large
// integers round once, as a direct Go conversion would.
func toFloat32(v Value) float32 {
	switch {
	case v.kind.IsFloat():
		return float32(v.Float())
	case v.kind.IsUnsigned():
		return float32(v.bits)
	default:
		return float32(int64(v.bits))
	}
}

func wrapSigned(k Kind, n int64) int64 {
	switch k.Size() {
	case 1:
		return int64(int8(n))
	case 2:
		return int64(int16(n))
	case 4:
		return int64(int32(n))
	default:
		return n
	}
}

func wrapUnsigned(k Kind, n uint64) uint64 {
	switch k.Size() {
	case 1:
		return uint64(uint8(n))
	case 2:
		return uint64(uint16(n))
	case 4:
		return uint64(uint32(n))
	default:
		return n
	}
}
