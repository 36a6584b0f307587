package practice

import (
	"errors"
	"fmt"
)

// InvalidStateKind classifies why an operation was rejected.
type InvalidStateKind string

const (
	KindNoSession       InvalidStateKind = "no-session"
	KindSessionComplete InvalidStateKind = "session-complete"
	KindUnknownQuestion InvalidStateKind = "unknown-question"
	KindAtBounds        InvalidStateKind = "at-bounds"
	KindBadArgument     InvalidStateKind = "bad-argument"
)

// InvalidStateError reports a command issued against the wrong session state.
// The presentation layer swallows these (the user-visible behavior stays a
// no-op); tests and logs get a distinguishable error instead of silence.
type InvalidStateError struct {
	Op   string
	Kind InvalidStateKind
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// IsInvalidState reports whether err is an InvalidStateError, optionally of a
// specific kind (empty kind matches any).
func IsInvalidState(err error, kind InvalidStateKind) bool {
	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		return false
	}
	return kind == "" || ise.Kind == kind
}

func invalidState(op string, kind InvalidStateKind) error {
	return &InvalidStateError{Op: op, Kind: kind}
}
