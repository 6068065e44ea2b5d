package resources

import (
	"errors"
	"fmt"
)

// ErrorKind tags the failure classes surfaced by this module.
type ErrorKind int

const (
	// Unimplemented means the platform has no accounting facility for the
	// request. Callers should treat the target as permanently unavailable
	// on this platform.
	Unimplemented ErrorKind = iota

	// PlatformUnavailable means the host could not be classified at
	// construction time.
	PlatformUnavailable

	// ReadFailure wraps a failed OS accounting read.
	ReadFailure

	// InvalidCoreCount means the requested core count was zero or exceeded
	// the number of physical cores.
	InvalidCoreCount
)

func (k ErrorKind) String() string {
	switch k {
	case Unimplemented:
		return "unimplemented"
	case PlatformUnavailable:
		return "platform unavailable"
	case ReadFailure:
		return "read failure"
	case InvalidCoreCount:
		return "invalid core count"
	default:
		return "unknown"
	}
}

// Error carries a failure kind alongside the operation that failed and the
// underlying cause, if any.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error with no underlying cause.
func NewError(kind ErrorKind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// WrapError creates an Error wrapping an underlying OS error.
func WrapError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the ErrorKind from err, if it carries one.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsUnimplemented reports whether err indicates a missing platform facility.
func IsUnimplemented(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == Unimplemented
}
