package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess        = 0   // Indicates successful execution.
	ExitErrorGeneric   = 1   // Indicates a generic error.
	ExitErrorInput     = 2   // Indicates rejected operands or parameters.
	ExitErrorOperation = 3   // Indicates an operation the models decline to score.
	ExitErrorConfig    = 4   // Indicates a configuration error.
	ExitErrorCanceled  = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
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

// InvalidInputError reports an operand or parameter that is rejected before
// any simulation begins: a radix below 2, a negative cache size, or a value
// outside a model's domain (e.g. factorising zero). No partial state is
// mutated when this error is returned.
type InvalidInputError struct {
	// Field is the name of the rejected parameter.
	Field string
	// Message explains why the value was rejected.
	Message string
}

// Error returns a formatted message identifying the rejected field.
func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %q: %s", e.Field, e.Message)
}

// NewInvalidInputError creates an InvalidInputError for the given field.
func NewInvalidInputError(field, format string, a ...any) error {
	return InvalidInputError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// InvalidOperationError reports an operand combination the manual algorithm
// does not define, such as subtracting a larger number from a smaller one.
// It is raised before any column is processed.
type InvalidOperationError struct {
	// Operation is the name of the declined operation (e.g. "difference").
	Operation string
	// Message explains the constraint that was violated.
	Message string
}

// Error returns a formatted message describing the declined operation.
func (e InvalidOperationError) Error() string {
	return fmt.Sprintf("operation %q not defined: %s", e.Operation, e.Message)
}

// NewInvalidOperationError creates an InvalidOperationError.
func NewInvalidOperationError(operation, format string, a ...any) error {
	return InvalidOperationError{Operation: operation, Message: fmt.Sprintf(format, a...)}
}

// UnsupportedOperationError reports an operation the models decline rather
// than approximate, such as a long division with a nonzero remainder.
// Callers needing such cases must pre-filter their inputs.
type UnsupportedOperationError struct {
	// Operation is the name of the declined operation (e.g. "long division").
	Operation string
	// Message explains what the model refuses to estimate.
	Message string
}

// Error returns a formatted message describing the unsupported operation.
func (e UnsupportedOperationError) Error() string {
	return fmt.Sprintf("operation %q unsupported: %s", e.Operation, e.Message)
}

// NewUnsupportedOperationError creates an UnsupportedOperationError.
func NewUnsupportedOperationError(operation, format string, a ...any) error {
	return UnsupportedOperationError{Operation: operation, Message: fmt.Sprintf(format, a...)}
}

// CacheStoreError reports a failure to read or write the prime-cache backing
// store. It preserves the underlying cause. Factorisation continues in memory
// after this error; it is reported, never fatal.
type CacheStoreError struct {
	// Op is the store operation that failed ("load" or "save").
	Op string
	// Path is the backing-store location, when known.
	Path string
	// Cause is the underlying I/O or decoding error.
	Cause error
}

// Error returns a formatted message describing the store failure.
func (e CacheStoreError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("prime cache %s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("prime cache %s failed for %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying cause, allowing for error chain inspection
// (e.g., using errors.Is or errors.As).
func (e CacheStoreError) Unwrap() error { return e.Cause }

// NewCacheStoreError creates a CacheStoreError wrapping cause.
func NewCacheStoreError(op, path string, cause error) error {
	return CacheStoreError{Op: op, Path: path, Cause: cause}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
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

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the application exit code used by the CLI.
// Unknown error types map to the generic failure code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, new(ConfigError)):
		return ExitErrorConfig
	case errors.As(err, new(InvalidInputError)):
		return ExitErrorInput
	case errors.As(err, new(InvalidOperationError)), errors.As(err, new(UnsupportedOperationError)):
		return ExitErrorOperation
	default:
		return ExitErrorGeneric
	}
}
