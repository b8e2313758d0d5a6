package zeroarg

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrMalformedNamedBody reports a "--", "+" or bare compound body with an
// empty component, or with "=" anywhere but in its final component.
var ErrMalformedNamedBody = errors.New("malformed named option body")

// ErrMalformedShortBody reports a "-" body containing "+", a second "=", or
// "=" with no name character before it.
var ErrMalformedShortBody = errors.New("malformed short option run")

// ErrEmptyBody reports an option prefix with nothing after it.
var ErrEmptyBody = errors.New("empty option body")

// ArgumentError identifies the argument that stopped a classification run.
// It wraps one of the Err sentinels above, so errors.Is can distinguish the
// failure kinds and errors.As recovers the index and raw text.
type ArgumentError struct {
	// Index is the position of the argument in the classified sequence.
	Index int
	// Arg is the raw argument text.
	Arg string

	cause error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %d %q: %v", e.Index, e.Arg, e.cause)
}

func (e *ArgumentError) Unwrap() error {
	return e.cause
}
