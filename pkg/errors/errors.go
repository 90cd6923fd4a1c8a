// Package errors provides structured error types for flapboard.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP API and the library
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - UNKNOWN_*: Names missing from the configured palette
//   - CONFIGURATION: Content the layout engine does not recognize
//   - OVERFLOW: A row wider than the column budget
//   - INTERNAL_*: Bugs, never user-recoverable
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownColor, "unknown color %q", name)
//	if errors.Is(err, errors.ErrCodeUnknownColor) {
//	    // Handle authoring error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "failed to read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidTemplate Code = "INVALID_TEMPLATE"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeTooManyRows     Code = "TOO_MANY_ROWS"

	// Authoring errors raised by the layout engine
	ErrCodeConfiguration    Code = "CONFIGURATION"
	ErrCodeOverflow         Code = "OVERFLOW"
	ErrCodeUnknownColor     Code = "UNKNOWN_COLOR"
	ErrCodeUnknownSymbol    Code = "UNKNOWN_SYMBOL"
	ErrCodeUnknownCharacter Code = "UNKNOWN_CHARACTER"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal  Code = "INTERNAL_ERROR"
	ErrCodeInvariant Code = "INTERNAL_INVARIANT"
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

// coded is implemented by typed errors that carry extra fields but still
// belong to a code category, such as [OverflowError].
type coded interface {
	error
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for the outermost coded error.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case coded:
			return e.Code()
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// OverflowError reports a row whose fixed-width content exceeds the column
// budget. Amount is always positive.
type OverflowError struct {
	Row    int // Zero-based row index, or -1 when unknown
	Width  int // Occupied width excluding fill space
	Budget int // Column budget of the board
	Amount int // Width - Budget
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("row %d overflows by %d (%d/%d columns)", e.Row+1, e.Amount, e.Width, e.Budget)
	}
	return fmt.Sprintf("row overflows by %d (%d/%d columns)", e.Amount, e.Width, e.Budget)
}

// Code returns the error code for this error type.
func (e *OverflowError) Code() Code {
	return ErrCodeOverflow
}

// NewOverflow builds an OverflowError for a row of the given width.
func NewOverflow(width, budget int) *OverflowError {
	return &OverflowError{Row: -1, Width: width, Budget: budget, Amount: width - budget}
}

// AsOverflow returns the OverflowError in err's chain, if any.
func AsOverflow(err error) (*OverflowError, bool) {
	var oe *OverflowError
	if errors.As(err, &oe) {
		return oe, true
	}
	return nil, false
}
