package game

import (
	"errors"
	"fmt"
)

// Contract violations. They indicate a bug in a Board implementation and are
// reported by panicking with an error that wraps one of these.
var (
	ErrOppositionViolated = errors.New("opposition invariant violated")
	ErrForeignMove        = errors.New("move belongs to another game")
	ErrUnknownMove        = errors.New("unrecognized move kind")
	ErrIllegalMove        = errors.New("move is not legal in this position")
)

// Violation panics with err wrapped in a formatted message.
func Violation(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}
