package unify

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/buildarray/internal/scalar"
)

func demoArgs() []scalar.Value {
	return []scalar.Value{
		scalar.Of(1),
		scalar.Of(uint32(0)),
		scalar.Of('a'),
		scalar.Of(float32(3.2)),
		scalar.Of(false),
	}
}

func TestBuildDemo(t *testing.T) {
	c := Build(demoArgs()...)

	assert.Equal(t, scalar.Float32, c.Kind())
	require.Equal(t, 5, c.Len())
	assert.Equal(t, []any{float32(1), float32(0), float32(97), float32(3.2), float32(0)}, c.Interfaces())
	assert.Equal(t, "1 0 97 3.2 0", c.String())
}

func TestBuildEveryElementHasCommonKind(t *testing.T) {
	c := Build(scalar.Of(int8(-1)), scalar.Of(uint16(7)), scalar.Of(true), scalar.Of(int64(9)))
	require.Equal(t, scalar.Int64, c.Kind())

	for i, v := range c.All() {
		assert.Equal(t, c.Kind(), v.Kind(), "element %d", i)
	}
	assert.Equal(t, []any{int64(-1), int64(7), int64(1), int64(9)}, c.Interfaces())
}

func TestBuildPreservesOrder(t *testing.T) {
	args := []scalar.Value{scalar.Of(3), scalar.Of(uint8(1)), scalar.Of(2.5), scalar.Of(int16(-4))}
	c := Build(args...)

	require.Equal(t, len(args), c.Len())
	for i, a := range args {
		assert.Equal(t, scalar.Convert(a, c.Kind()), c.At(i))
	}
}

func TestBuildSameKindKeepsKind(t *testing.T) {
	c := Build(scalar.Of(true), scalar.Of(false))
	assert.Equal(t, scalar.Bool, c.Kind())
	assert.Equal(t, "1 0", c.String())
}

func TestBuildEmpty(t *testing.T) {
	c := Build()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, scalar.Invalid, c.Kind())
	assert.Equal(t, "", c.String())
	assert.Empty(t, c.Bytes())
}

func TestBuildZeroValueYieldsNoElements(t *testing.T) {
	tests := []struct {
		name string
		args []scalar.Value
	}{
		{"mixed with a scalar", []scalar.Value{scalar.Of(1), {}}},
		{"leading", []scalar.Value{{}, scalar.Of(float32(2))}},
		{"only zero values", []scalar.Value{{}, {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Container
			require.NotPanics(t, func() { c = Build(tt.args...) })
			assert.Equal(t, scalar.Invalid, c.Kind())
			assert.Equal(t, 0, c.Len())
			assert.Equal(t, "", c.String())
		})
	}
}

func TestBuildTraversalIsRepeatable(t *testing.T) {
	c := Build(demoArgs()...)

	first := slices.Collect(c.Values())
	second := slices.Collect(c.Values())
	assert.Equal(t, first, second)
	assert.Equal(t, "1 0 97 3.2 0", c.String())
}

func TestSliceIsACopy(t *testing.T) {
	c := Build(scalar.Of(1), scalar.Of(2))
	s := c.Slice()
	s[0] = scalar.Of(100)
	assert.Equal(t, scalar.Of(1), c.At(0))
}

func TestBuildAny(t *testing.T) {
	c, err := BuildAny(1, uint32(0), 'a', float32(3.2), false)
	require.NoError(t, err)
	assert.Equal(t, scalar.Float32, c.Kind())
	assert.Equal(t, "1 0 97 3.2 0", c.String())
}

func TestBuildAnyAcceptsValues(t *testing.T) {
	c, err := BuildAny(scalar.Of(uint8(2)), int64(3))
	require.NoError(t, err)
	assert.Equal(t, scalar.Int64, c.Kind())
}

func TestBuildAnyEmpty(t *testing.T) {
	c, err := BuildAny()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestBuildAnyRejectsString(t *testing.T) {
	c, err := BuildAny(1, "Packt", 2.0)
	require.Error(t, err)
	assert.Equal(t, 0, c.Len(), "no elements are materialized on failure")

	var nct *NoCommonTypeError
	require.True(t, errors.As(err, &nct))
	assert.Equal(t, 1, nct.Index)
	assert.Equal(t, "string", nct.Type)
	assert.Equal(t, []scalar.Kind{scalar.Int}, nct.Seen)
	assert.Equal(t, "no common type: argument 1 has type string, which does not convert to int", err.Error())
}

func TestBuildAnyRejectsLeadingNonScalar(t *testing.T) {
	_, err := BuildAny(struct{}{}, 1)

	var nct *NoCommonTypeError
	require.ErrorAs(t, err, &nct)
	assert.Equal(t, 0, nct.Index)
	assert.Equal(t, "no common type: argument 0 has type struct {}, which is not a scalar", err.Error())
}

func TestBuildAnyRejectsNil(t *testing.T) {
	_, err := BuildAny(1.5, nil)

	var nct *NoCommonTypeError
	require.ErrorAs(t, err, &nct)
	assert.Equal(t, "nil", nct.Type)
}

func TestTyped(t *testing.T) {
	c := Build(demoArgs()...)

	arr, err := Typed[float32](c)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 97, 3.2, 0}, arr.Slice())

	_, err = Typed[float64](c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.Equal(t, "container holds float32, not float64", err.Error())
}

func TestTypedEmpty(t *testing.T) {
	arr, err := Typed[int](Build())
	require.NoError(t, err)
	assert.Equal(t, 0, arr.Len())
}

func TestMustTyped(t *testing.T) {
	c := Build(scalar.Of(int32(1)), scalar.Of(uint32(2)))
	assert.Equal(t, []uint32{1, 2}, MustTyped[uint32](c).Slice())
	assert.Panics(t, func() { MustTyped[int32](c) })
}
