package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a calculation was refused.
type ErrorKind int

const (
	NonPositiveValue ErrorKind = iota + 1
	NotNumeric
	Unexpected
)

func (k ErrorKind) String() string {
	switch k {
	case NonPositiveValue:
		return "non_positive_value"
	case NotNumeric:
		return "not_numeric"
	default:
		return "unexpected"
	}
}

// Message is the text shown to the client for this kind.
func (k ErrorKind) Message() string {
	switch k {
	case NonPositiveValue:
		return "All values must be greater than zero"
	case NotNumeric:
		return "Please enter valid numeric values"
	default:
		return "An error occurred during calculation"
	}
}

// ValidationError is the failure outcome of a calculation. Err carries the
// internal cause for logs and is never sent to the client.
type ValidationError struct {
	Kind ErrorKind
	Err  error
}

var (
	ErrNonPositiveValue = &ValidationError{Kind: NonPositiveValue}
	ErrNotNumeric       = &ValidationError{Kind: NotNumeric}
	ErrUnexpected       = &ValidationError{Kind: Unexpected}
)

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is matches any ValidationError of the same kind, so callers can use
// errors.Is(err, ErrNotNumeric).
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Message returns the user-visible text.
func (e *ValidationError) Message() string { return e.Kind.Message() }

func newError(kind ErrorKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the kind of err. Errors that are not a ValidationError are
// Unexpected.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return Unexpected
}
