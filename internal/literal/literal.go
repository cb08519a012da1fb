// Package literal parses source-style scalar literals into Go values.
//
// The accepted forms mirror what a programmer would write in an argument
// list:
//
//	true, false                 bool
//	'a', '\n', 'é'              rune (int32)
//	42, 0x2A, 0b101, 1_000      int
//	42u, 42l, 42ul, 42llu       uint32, int64, uint64
//	-1u                         uint32 4294967295 (sign wraps)
//	3.2, 1e6                    float64
//	3.2f                        float32
//	uint8(7), float32(1)        the named scalar type
//	"Packt", `raw`              string
//
// Strings parse successfully: rejecting them is the builder's job, since a
// string is a valid literal that simply has no common type with numbers.
package literal

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/buildarray/internal/scalar"
)

// Error reports a token that is not a literal.
type Error struct {
	Text   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid literal %q: %s: %v", e.Text, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid literal %q: %s", e.Text, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

var conversionRe = regexp.MustCompile(`^([a-z][a-z0-9]*)\((.*)\)$`)

// Parse parses a single literal. Surrounding whitespace is ignored.
func Parse(text string) (any, error) {
	tok := strings.TrimSpace(text)
	if tok == "" {
		return nil, &Error{Text: text, Reason: "empty"}
	}

	switch tok {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	switch tok[0] {
	case '\'':
		return parseRune(text, tok)
	case '"', '`':
		s, err := strconv.Unquote(tok)
		if err != nil {
			return nil, &Error{Text: text, Reason: "malformed string", Err: err}
		}
		return s, nil
	}

	if m := conversionRe.FindStringSubmatch(tok); m != nil {
		return parseConversion(text, m[1], m[2])
	}

	return parseNumber(text, tok)
}

// ParseAll parses every token, stopping at the first error. The error names
// the zero-based position of the failing token.
func ParseAll(texts []string) ([]any, error) {
	out := make([]any, len(texts))
	for i, s := range texts {
		v, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseRune accepts exactly one code point after NFC normalization, so a
// decomposed "é" (e + U+0301) is one character.
func parseRune(text, tok string) (any, error) {
	s, err := strconv.Unquote(norm.NFC.String(tok))
	if err != nil {
		return nil, &Error{Text: text, Reason: "malformed character", Err: err}
	}
	r := []rune(s)
	if len(r) != 1 {
		return nil, &Error{Text: text, Reason: "character literal must hold exactly one character"}
	}
	return r[0], nil
}

func parseConversion(text, typeName, inner string) (any, error) {
	kind, ok := scalar.ParseKind(typeName)
	if !ok {
		return nil, &Error{Text: text, Reason: fmt.Sprintf("%s is not a scalar type", typeName)}
	}
	v, err := Parse(inner)
	if err != nil {
		return nil, &Error{Text: text, Reason: "bad operand", Err: err}
	}
	sv, ok := scalar.FromAny(v)
	if !ok {
		return nil, &Error{Text: text, Reason: fmt.Sprintf("cannot convert %T to %s", v, typeName)}
	}
	cv := scalar.Convert(sv, kind)
	if kind.IsFloat() && !isInf(sv) && isInf(cv) {
		return nil, &Error{Text: text, Reason: fmt.Sprintf("%s overflows %s", inner, typeName)}
	}
	return cv.Interface(), nil
}

func isInf(v scalar.Value) bool {
	return v.Kind().IsFloat() && math.IsInf(v.Float(), 0)
}

func parseNumber(text, tok string) (any, error) {
	digits := strings.TrimLeft(tok, "+-")
	hex := strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X")

	body := strings.TrimRight(tok, "uUlL")
	suffix := strings.ToLower(tok[len(body):])

	isFloat := func(s string) bool {
		if hex {
			return strings.ContainsAny(s, "pP")
		}
		return strings.ContainsAny(s, ".eE")
	}

	if suffix == "" && !hex && (strings.HasSuffix(body, "f") || strings.HasSuffix(body, "F")) {
		inner := body[:len(body)-1]
		if !isFloat(inner) {
			return nil, &Error{Text: text, Reason: "f suffix requires a floating-point literal"}
		}
		f, err := strconv.ParseFloat(inner, 32)
		if err != nil {
			return nil, &Error{Text: text, Reason: "bad float", Err: err}
		}
		return float32(f), nil
	}

	if isFloat(body) {
		if suffix != "" {
			return nil, &Error{Text: text, Reason: fmt.Sprintf("suffix %q is not valid on a floating-point literal", suffix)}
		}
		f, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return nil, &Error{Text: text, Reason: "bad float", Err: err}
		}
		return f, nil
	}

	form, ok := integerSuffixes[suffix]
	if !ok {
		return nil, &Error{Text: text, Reason: fmt.Sprintf("unknown suffix %q", suffix)}
	}

	switch {
	case form.unsigned:
		// A sign applies to the unsigned value, as unary minus does in C.
		neg := strings.HasPrefix(body, "-")
		mag := strings.TrimPrefix(strings.TrimPrefix(body, "-"), "+")
		bitSize := 32
		if form.long > 0 {
			bitSize = 64
		}
		n, err := strconv.ParseUint(mag, 0, bitSize)
		if err != nil {
			return nil, &Error{Text: text, Reason: "bad unsigned integer", Err: err}
		}
		if neg {
			n = -n
		}
		if bitSize == 32 {
			return uint32(n), nil
		}
		return n, nil
	case form.long > 0:
		n, err := strconv.ParseInt(body, 0, 64)
		if err != nil {
			return nil, &Error{Text: text, Reason: "bad integer", Err: err}
		}
		return n, nil
	default:
		n, err := strconv.ParseInt(body, 0, strconv.IntSize)
		if err != nil {
			return nil, &Error{Text: text, Reason: "bad integer", Err: err}
		}
		return int(n), nil
	}
}

type integerSuffix struct {
	unsigned bool
	long     int // number of l's
}

// integerSuffixes lists the C integer suffixes, lower-cased.
var integerSuffixes = map[string]integerSuffix{
	"":    {},
	"u":   {unsigned: true},
	"l":   {long: 1},
	"ll":  {long: 2},
	"ul":  {unsigned: true, long: 1},
	"lu":  {unsigned: true, long: 1},
	"ull": {unsigned: true, long: 2},
	"llu": {unsigned: true, long: 2},
}
