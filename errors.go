package people

import (
	"errors"
	"fmt"
)

// Kind classifies an [Error] so callers can decide how to react (retry,
// surface to a user, fix their input) without parsing messages.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindCreation        Kind = "creation"
	KindUnknown         Kind = "unknown"
	KindProtocol        Kind = "protocol"
	KindFile            Kind = "file"
	KindTransport       Kind = "transport"
)

// Sentinel errors for use with errors.Is. Every [Error] matches the sentinel
// of its own kind.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "not found"}
	ErrCreation        = &Error{Kind: KindCreation, Message: "creation failed"}
	ErrUnknown         = &Error{Kind: KindUnknown, Message: "unknown error"}
	ErrProtocol        = &Error{Kind: KindProtocol, Message: "protocol error"}
	ErrFile            = &Error{Kind: KindFile, Message: "file error"}
	ErrTransport       = &Error{Kind: KindTransport, Message: "transport error"}
)

// Error is the error type returned by every [Client] operation.
type Error struct {
	Kind       Kind
	Op         string
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}

	if e.Op == "" {
		if e.Cause != nil {
			return fmt.Sprintf("[%s] %s: %v", e.Kind, msg, e.Cause)
		}
		return fmt.Sprintf("[%s] %s", e.Kind, msg)
	}

	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Kind, e.Op, msg, e.Cause)
	}

	return fmt.Sprintf("[%s:%s] %s", e.Kind, e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind. Only the kind is
// compared, so errors.Is(err, ErrNotFound) holds for any not-found error.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// IsKind checks whether any error in the chain is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var target *Error
	if errors.As(err, &target) {
		return target.Kind == kind
	}
	return false
}

func newError(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

func wrapError(kind Kind, op, message string, err error) *Error {
	if err == nil {
		return nil
	}

	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	return &Error{Kind: kind, Op: op, Message: message, Cause: err}
}

func statusError(kind Kind, op, message string, statusCode int) *Error {
	return &Error{Kind: kind, Op: op, Message: message, StatusCode: statusCode}
}
