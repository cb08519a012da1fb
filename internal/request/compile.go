package request

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/buildarray/internal/literal"
	"github.com/roach88/buildarray/internal/unify"
)

// Request is one named argument list declared under build.<name>.
type Request struct {
	Name        string
	Description string
	Args        []any
	Pos         token.Pos
}

// Build unifies the request's arguments. Arguments that are not scalars make
// the build fail with *unify.NoCommonTypeError.
func (r *Request) Build() (unify.Container, error) {
	return unify.BuildAny(r.Args...)
}

// CompileRequest converts a CUE value into a Request.
//
// The value should be the request struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`build: demo: args: [1, "0u", "'a'", "3.2f", false]`)
//	req, err := CompileRequest(v.LookupPath(cue.ParsePath("build.demo")))
//
// CUE ints become int, floats float64 and bools bool. Strings are parsed
// with the literal package; a string that is not a literal stays a Go
// string. Lists and structs are decoded as-is. Neither of the last two has a
// common type with numbers, which Build reports.
func CompileRequest(v cue.Value) (*Request, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	req := &Request{Pos: v.Pos()}
	if sels := v.Path().Selectors(); len(sels) > 0 {
		req.Name = sels[len(sels)-1].String()
	}

	if descVal := v.LookupPath(cue.ParsePath("description")); descVal.Exists() {
		desc, err := descVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		req.Description = desc
	}

	argsVal := v.LookupPath(cue.ParsePath("args"))
	if !argsVal.Exists() {
		return nil, &CompileError{Field: "args", Message: "args is required (use [] for no arguments)", Pos: v.Pos()}
	}
	iter, err := argsVal.List()
	if err != nil {
		return nil, &CompileError{Field: "args", Message: "args must be a list", Pos: argsVal.Pos()}
	}

	req.Args = []any{}
	for i := 0; iter.Next(); i++ {
		arg, err := compileArg(iter.Value())
		if err != nil {
			return nil, &CompileError{
				Field:   "args",
				Message: fmt.Sprintf("args[%d]: %v", i, err),
				Pos:     iter.Value().Pos(),
			}
		}
		req.Args = append(req.Args, arg)
	}

	return req, nil
}

func compileArg(v cue.Value) (any, error) {
	switch v.Kind() {
	case cue.IntKind:
		n, err := v.Int64()
		if err != nil {
			return nil, err
		}
		return int(n), nil
	case cue.FloatKind:
		return v.Float64()
	case cue.BoolKind:
		return v.Bool()
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return nil, err
		}
		if lit, err := literal.Parse(s); err == nil {
			return lit, nil
		}
		return s, nil
	case cue.ListKind, cue.StructKind:
		var out any
		if err := v.Decode(&out); err != nil {
			return nil, err
		}
		return out, nil
	case cue.NullKind:
		return nil, nil
	default:
		return nil, fmt.Errorf("value is not concrete")
	}
}

// CompileError represents a request error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	if positions := errors.Positions(first); len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
