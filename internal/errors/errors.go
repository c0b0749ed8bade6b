// Package apperrors defines the application error types and exit codes. It
// separates user mistakes (configuration, coefficient text) from solve
// failures and server faults while keeping the underlying cause reachable
// through errors.Is and errors.As.
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes.
const (
	ExitSuccess          = 0   // Successful execution.
	ExitErrorGeneric     = 1   // Unclassified failure.
	ExitErrorTimeout     = 2   // The execution limit was reached.
	ExitErrorUnsupported = 3   // The polynomial degree has no closed-form finder.
	ExitErrorConfig      = 4   // Invalid flags or environment.
	ExitErrorInput       = 5   // Coefficient text could not be parsed or was rejected.
	ExitErrorCanceled    = 130 // Interrupted (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as an invalid flag
// value. The application cannot proceed.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InputError reports coefficient text that could not be turned into a
// polynomial: a token that is not a number, a non-finite value, or too many
// coefficients.
type InputError struct {
	// Input is the offending text, possibly a single token.
	Input string
	// Cause is the underlying parse error, if any.
	Cause error
}

// Error returns a message naming the rejected input.
func (e InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input %q: %v", e.Input, e.Cause)
	}
	return fmt.Sprintf("invalid input %q", e.Input)
}

// Unwrap returns the underlying parse error.
func (e InputError) Unwrap() error { return e.Cause }

// NewInputError creates an InputError for input with an optional cause.
func NewInputError(input string, cause error) error {
	return InputError{Input: input, Cause: cause}
}

// SolveError wraps a failure of the root-finding core together with the
// polynomial that triggered it.
type SolveError struct {
	// Polynomial is the human-readable form of the input, when known.
	Polynomial string
	// Cause is the error returned by the core.
	Cause error
}

// Error returns the cause message prefixed by the polynomial.
func (e SolveError) Error() string {
	if e.Polynomial == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("solving %s: %v", e.Polynomial, e.Cause)
}

// Unwrap returns the core error.
func (e SolveError) Unwrap() error { return e.Cause }

// ServerError represents errors that occur in the HTTP server component.
type ServerError struct {
	// Message is a descriptive message about the server error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the message and, if present, the cause.
func (e ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e ServerError) Unwrap() error { return e.Cause }

// NewServerError creates a new ServerError with a message and optional cause.
func NewServerError(message string, cause error) error {
	return ServerError{Message: message, Cause: cause}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError reports whether err is a cancellation or deadline error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ValidationError represents invalid API or configuration input tied to a
// named field.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message describes why validation failed.
	Message string
	// Value is the invalid value (optional, may be nil).
	Value any
}

// Error returns the error message for a ValidationError.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string, value any) error {
	return ValidationError{Field: field, Message: message, Value: value}
}
