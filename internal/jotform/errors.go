package jotform

import (
	"errors"
	"fmt"
)

// Error taxonomy for the data client. Callers match with errors.Is:
//
//	ErrAuth      invalid credentials; terminal, never retried
//	ErrNotFound  unknown form ID; terminal, never retried
//	ErrTransient connectivity failure, timeout, or server error; retryable
//	ErrSchema    a response that does not match the expected shape
//
// Schema errors are surfaced verbatim rather than coerced: a silently
// mis-parsed field would corrupt the advocacy dataset.
var (
	ErrAuth      = errors.New("jotform: authentication failed")
	ErrNotFound  = errors.New("jotform: form not found")
	ErrTransient = errors.New("jotform: transient network error")
	ErrSchema    = errors.New("jotform: unexpected response schema")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func (e *wrapError) Error() string {
	msg := e.underlying.Error() + ": " + e.msg
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *wrapError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.underlying}
	}
	return []error{e.underlying, e.cause}
}

func authErr(msg string) error {
	return &wrapError{underlying: ErrAuth, msg: msg}
}

func notFoundErr(msg string) error {
	return &wrapError{underlying: ErrNotFound, msg: msg}
}

func transientErr(msg string, cause error) error {
	return &wrapError{underlying: ErrTransient, msg: msg, cause: cause}
}

func schemaErr(msg string, cause error) error {
	return &wrapError{underlying: ErrSchema, msg: msg, cause: cause}
}

func schemaErrf(format string, args ...any) error {
	return &wrapError{underlying: ErrSchema, msg: fmt.Sprintf(format, args...)}
}

// UserMessage renders a client error as a sentence suitable for the
// dashboard's error state.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrAuth):
		return "The JotForm API rejected the configured credentials. Check the API key."
	case errors.Is(err, ErrNotFound):
		return "The configured form was not found. Check the form ID."
	case errors.Is(err, ErrTransient):
		return "The JotForm API could not be reached. Try refreshing in a moment."
	case errors.Is(err, ErrSchema):
		return "The form's responses no longer match the expected shape: " + err.Error()
	default:
		return "Fetching submissions failed: " + err.Error()
	}
}
