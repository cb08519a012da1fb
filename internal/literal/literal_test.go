package literal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text     string
		expected any
	}{
		{"true", true},
		{"false", false},
		{"  false ", false},

		{"1", 1},
		{"-7", -7},
		{"0x2A", 42},
		{"0b101", 5},
		{"0o17", 15},
		{"1_000", 1000},

		{"0u", uint32(0)},
		{"42U", uint32(42)},
		{"42l", int64(42)},
		{"42ll", int64(42)},
		{"42ul", uint64(42)},
		{"42LLU", uint64(42)},
		{"0xffu", uint32(255)},
		{"1lu", uint64(1)},
		{"1llu", uint64(1)},
		{"-1u", uint32(4294967295)},
		{"-1ul", uint64(18446744073709551615)},
		{"+2u", uint32(2)},

		{"3.2", 3.2},
		{"1e6", 1e6},
		{".5", 0.5},
		{"0x1p-2", 0.25},
		{"3.2f", float32(3.2)},
		{"1e3F", float32(1000)},

		{"'a'", 'a'},
		{`'\n'`, '\n'},
		{"'é'", 'é'},
		{"'e\u0301'", 'é'}, // decomposed

		{"uint8(7)", uint8(7)},
		{"byte(300)", uint8(44)},
		{"float32(1)", float32(1)},
		{"int(3.9)", 3},
		{"rune('a')", 'a'},

		{`"Packt"`, "Packt"},
		{"`raw`", "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		text   string
		reason string
	}{
		{"", "empty"},
		{"   ", "empty"},
		{"'ab'", "malformed character"},
		{"'", "malformed character"},
		{`"open`, "malformed string"},
		{"1f", "f suffix requires a floating-point literal"},
		{"3.2u", `suffix "u" is not valid on a floating-point literal`},
		{"1uu", `unknown suffix "uu"`},
		{"1lll", `unknown suffix "lll"`},
		{"1lul", `unknown suffix "lul"`},
		{"1ulu", `unknown suffix "ulu"`},
		{"--1u", "bad unsigned integer"},
		{"4294967296u", "bad unsigned integer"},
		{"Packt", "bad integer"},
		{"string(1)", "string is not a scalar type"},
		{`int("x")`, "cannot convert string to int"},
		{"int(zz)", "bad operand"},
		{"float32(1e300)", "1e300 overflows float32"},
		{"float32(-1e300)", "-1e300 overflows float32"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)

			var litErr *Error
			require.True(t, errors.As(err, &litErr))
			assert.Equal(t, tt.reason, litErr.Reason)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Parse("1f")
	assert.EqualError(t, err, `invalid literal "1f": f suffix requires a floating-point literal`)
}

func TestParseAll(t *testing.T) {
	vals, err := ParseAll([]string{"1", "0u", "'a'", "3.2f", "false"})
	require.NoError(t, err)
	assert.Equal(t, []any{1, uint32(0), 'a', float32(3.2), false}, vals)
}

func TestParseAllReportsPosition(t *testing.T) {
	_, err := ParseAll([]string{"1", "2", "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument 2: ")

	var litErr *Error
	assert.ErrorAs(t, err, &litErr)
}

func TestParseAllEmpty(t *testing.T) {
	vals, err := ParseAll(nil)
	require.NoError(t, err)
	assert.Empty(t, vals)
}
