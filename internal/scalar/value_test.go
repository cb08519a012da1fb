package scalar

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float32

type flag bool

func TestOfCapturesStaticKind(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected Kind
	}{
		{"bool", Of(true), Bool},
		{"int", Of(1), Int},
		{"rune", Of('a'), Int32},
		{"byte", Of(byte(7)), Uint8},
		{"uint32", Of(uint32(0)), Uint32},
		{"uintptr", Of(uintptr(1)), Uintptr},
		{"float32", Of(float32(3.2)), Float32},
		{"float64", Of(3.2), Float64},
		{"named float", Of(celsius(21.5)), Float32},
		{"named bool", Of(flag(true)), Bool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Kind())
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Float32, KindOf[float32]())
	assert.Equal(t, Int32, KindOf[rune]())
	assert.Equal(t, Uint8, KindOf[byte]())
	assert.Equal(t, Bool, KindOf[flag]())
}

func TestFromAny(t *testing.T) {
	v, ok := FromAny(int16(-3))
	require.True(t, ok)
	assert.Equal(t, Int16, v.Kind())
	assert.Equal(t, int64(-3), v.Int())

	_, ok = FromAny("Packt")
	assert.False(t, ok)

	_, ok = FromAny(nil)
	assert.False(t, ok)

	_, ok = FromAny([]int{1})
	assert.False(t, ok)

	same, ok := FromAny(Of(2.5))
	require.True(t, ok)
	assert.Equal(t, Of(2.5), same)

	_, ok = FromAny(Value{})
	assert.False(t, ok)
}

func TestFloat32PayloadIsRounded(t *testing.T) {
	v := Of(float32(3.2))
	assert.Equal(t, float64(float32(3.2)), v.Float())
	assert.Equal(t, float32(3.2), v.Interface())
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{Of(true), "1"},
		{Of(false), "0"},
		{Of(-42), "-42"},
		{Of(uint64(math.MaxUint64)), "18446744073709551615"},
		{Of(float32(3.2)), "3.2"},
		{Of(float32(97)), "97"},
		{Of(1e6), "1e+06"},
		{Of(0.1), "0.1"},
		{Of(1.0 / 3.0), "0.333333"},
		{Of(float32(math.Inf(1))), "inf"},
		{Of(math.Inf(-1)), "-inf"},
		{Of(math.NaN()), "nan"},
		{Value{}, "<invalid>"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestValueMarshalJSON(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{Of(float32(3.2)), `3.2`},
		{Of(-7), `-7`},
		{Of(uint8(255)), `255`},
		{Of(true), `true`},
		{Of(float32(math.Inf(1))), `"inf"`},
		{Of(math.Inf(-1)), `"-inf"`},
		{Of(math.NaN()), `"nan"`},
		{Value{}, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestValueGoString(t *testing.T) {
	assert.Equal(t, "float32(3.2)", Of(float32(3.2)).GoString())
	assert.Equal(t, "int32(97)", Of('a').GoString())
	assert.Equal(t, "false", Of(false).GoString())
	assert.Equal(t, "scalar.Value{}", Value{}.GoString())
}

func TestValueInterface(t *testing.T) {
	assert.Equal(t, int8(-1), Of(int8(-1)).Interface())
	assert.Equal(t, uint16(9), Of(uint16(9)).Interface())
	assert.Equal(t, true, Of(true).Interface())
	assert.Nil(t, Value{}.Interface())
}

func TestAs(t *testing.T) {
	assert.Equal(t, float32(97), As[float32](Of('a')))
	assert.Equal(t, int(3), As[int](Of(3.9)))
	assert.Equal(t, celsius(1), As[celsius](Of(true)))
	assert.Equal(t, flag(true), As[flag](Of(2)))
	assert.Equal(t, uint8(255), As[uint8](Of(-1)))
}
