// Package domainerrors carries coded errors across layers. Services decide the
// code; callers branch on it with HasCode instead of matching message text.
package domainerrors

import "errors"

// Code classifies a domain error.
type Code string

const (
	// CodeValidation: input parsed fine but broke a business rule.
	CodeValidation Code = "validation"
	// CodeBadRequest: input could not be interpreted at all (wrong type or format).
	CodeBadRequest Code = "bad_request"
	// CodeInvalidInput: a domain primitive rejected its raw representation.
	CodeInvalidInput Code = "invalid_input"
	// CodeInvariantViolation: an entity refused a write that would break it.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInvalidState: the operation is not allowed in the current state.
	CodeInvalidState Code = "invalid_state"
	// CodeInternal: something that should not happen did.
	CodeInternal Code = "internal"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return e.Message + ": " + e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error without a cause.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to err. A nil err yields nil.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the code of the outermost coded error in the chain, or ""
// when err carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// HasCode reports whether the outermost coded error in the chain has code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// Message returns the message of the outermost coded error without its cause,
// falling back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return err.Error()
}
