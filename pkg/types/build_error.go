package types

import (
	"errors"
	"fmt"
)

// ErrorCode classifies resolution failures
type ErrorCode string

const (
	// ErrCodeMissingURI means the required livy.uri key was absent.
	ErrCodeMissingURI ErrorCode = "missing_uri"
	// ErrCodeInvalidURI means livy.uri was present but unparsable.
	ErrCodeInvalidURI ErrorCode = "invalid_uri"
	// ErrCodeNoFactory means no client factory was registered at resolution
	// time. This is fatal and non-retryable: registration happens at process
	// start and cannot change afterwards.
	ErrCodeNoFactory ErrorCode = "no_factory"
	// ErrCodeUnsupportedURI means every registered factory declined the URI.
	// The message carries the redacted form of the URI.
	ErrCodeUnsupportedURI ErrorCode = "unsupported_uri"
	// ErrCodeFactory wraps an error raised by a factory. Resolution aborted
	// without consulting the remaining factories.
	ErrCodeFactory ErrorCode = "factory"
)

// BuildError is the classified error returned when client resolution fails
type BuildError struct {
	Code        ErrorCode // Categorized failure
	Message     string    // Human-readable message; any embedded URI is redacted
	Factory     string    // Name of the factory that failed (ErrCodeFactory only)
	OriginalErr error     // Wrapped underlying error, if any
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.Factory != "" {
		return fmt.Sprintf("[%s] %s (code=%s)", e.Factory, e.Message, e.Code)
	}
	return fmt.Sprintf("%s (code=%s)", e.Message, e.Code)
}

// Unwrap returns the original error for errors.Is/As
func (e *BuildError) Unwrap() error {
	return e.OriginalErr
}

// WithFactory sets the factory name and returns the error for chaining
func (e *BuildError) WithFactory(name string) *BuildError {
	e.Factory = name
	return e
}

// WithOriginalErr sets the original error and returns the error for chaining
func (e *BuildError) WithOriginalErr(err error) *BuildError {
	e.OriginalErr = err
	return e
}

// NewBuildError creates a new BuildError
func NewBuildError(code ErrorCode, message string) *BuildError {
	return &BuildError{Code: code, Message: message}
}

// ErrorCodeOf extracts the ErrorCode from err, unwrapping as needed.
// ok is false when err carries no BuildError.
func ErrorCodeOf(err error) (ErrorCode, bool) {
	var be *BuildError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
