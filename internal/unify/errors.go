package unify

import (
	"errors"
	"fmt"

	"github.com/roach88/buildarray/internal/scalar"
)

// ErrKindMismatch is returned by Typed when the requested element type is not
// the container's kind.
var ErrKindMismatch = errors.New("kind mismatch")

// NoCommonTypeError reports an argument with no conversion to any scalar
// kind, so no common type can be deduced for the argument list.
type NoCommonTypeError struct {
	Index int           // zero-based position of the offending argument
	Type  string        // Go type of the offending argument
	Seen  []scalar.Kind // kinds of the arguments before it
}

func (e *NoCommonTypeError) Error() string {
	if len(e.Seen) == 0 {
		return fmt.Sprintf("no common type: argument %d has type %s, which is not a scalar", e.Index, e.Type)
	}
	return fmt.Sprintf("no common type: argument %d has type %s, which does not convert to %s",
		e.Index, e.Type, scalar.Common(e.Seen...))
}
