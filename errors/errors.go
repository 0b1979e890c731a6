// Package errors provides the structured error type shared by the graph
// loader, the anagram search and the command-line and HTTP front ends.
//
// Every error carries a machine-readable Code so callers can tell a fatal
// load failure apart from a recoverable query problem:
//
//	g, err := dawg.Load(path)
//	if errors.Is(err, errors.ErrCodeFormat) {
//	    // the file is not a valid graph
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes.
const (
	// Load-time errors. Both are fatal: no graph is returned.
	ErrCodeIO     Code = "IO_ERROR"
	ErrCodeFormat Code = "FORMAT_ERROR"

	// Query errors. The caller recovers and no search is performed.
	ErrCodeInputTooLong Code = "INPUT_TOO_LONG"
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// ErrCodeAllocation is returned when a result collector cannot grow.
	ErrCodeAllocation Code = "ALLOCATION_FAILURE"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
