package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// InvalidPath errors - scan root missing or not a directory
	ErrorTypeInvalidPath ErrorType = iota
	// InvalidRepository errors - a path that is not a usable git repository
	ErrorTypeInvalidRepository
	// GitOperation errors - an underlying git command failed
	ErrorTypeGitOperation
	// Configuration errors - missing or invalid configuration
	ErrorTypeConfiguration
	// Request errors - a single AI provider call failed
	ErrorTypeRequest
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Is checks if this error matches the target error type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// DetailedString returns a detailed error message with context
func (e *Error) DetailedString() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", typeString(e.Type), e.Message))

	if e.Cause != nil {
		sb.WriteString(fmt.Sprintf("Caused by: %v\n", e.Cause))
	}

	if len(e.Context) > 0 {
		sb.WriteString("Context:\n")
		for k, v := range e.Context {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", k, v))
		}
	}

	return sb.String()
}

func typeString(t ErrorType) string {
	switch t {
	case ErrorTypeInvalidPath:
		return "INVALID_PATH"
	case ErrorTypeInvalidRepository:
		return "INVALID_REPOSITORY"
	case ErrorTypeGitOperation:
		return "GIT_OPERATION"
	case ErrorTypeConfiguration:
		return "CONFIGURATION"
	case ErrorTypeRequest:
		return "REQUEST"
	default:
		return "UNKNOWN"
	}
}

// New creates a new error with the given type and message
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// Convenience constructors for common error types

// InvalidPathError creates an invalid-path error
func InvalidPathError(message string) *Error {
	return New(ErrorTypeInvalidPath, message)
}

// InvalidPathErrorf creates an invalid-path error with formatting
func InvalidPathErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeInvalidPath, fmt.Sprintf(format, args...))
}

// InvalidRepositoryError wraps an error as an invalid-repository error
func InvalidRepositoryError(err error, message string) *Error {
	if err == nil {
		return New(ErrorTypeInvalidRepository, message)
	}
	return Wrap(err, ErrorTypeInvalidRepository, message)
}

// InvalidRepositoryErrorf creates an invalid-repository error with formatting
func InvalidRepositoryErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeInvalidRepository, fmt.Sprintf(format, args...))
}

// GitOperationError wraps a git command failure
func GitOperationError(err error, message string) *Error {
	return Wrap(err, ErrorTypeGitOperation, message)
}

// GitOperationErrorf wraps a git command failure with formatting
func GitOperationErrorf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, ErrorTypeGitOperation, fmt.Sprintf(format, args...))
}

// ConfigurationError creates a configuration error
func ConfigurationError(message string) *Error {
	return New(ErrorTypeConfiguration, message)
}

// ConfigurationErrorf creates a configuration error with formatting
func ConfigurationErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeConfiguration, fmt.Sprintf(format, args...))
}

// RequestError creates a provider-tagged request error. The provider name is
// kept in the message and in context so callers can distinguish which variant
// failed without unwrapping.
func RequestError(provider, message string) *Error {
	return New(ErrorTypeRequest, fmt.Sprintf("[%s] %s", provider, message)).
		WithContext("provider", provider)
}

// RequestErrorf creates a provider-tagged request error with formatting
func RequestErrorf(provider, format string, args ...interface{}) *Error {
	return RequestError(provider, fmt.Sprintf(format, args...))
}

// WrapRequestError wraps a transport-level failure as a request error
func WrapRequestError(err error, provider, message string) *Error {
	if err == nil {
		return nil
	}
	e := Wrap(err, ErrorTypeRequest, fmt.Sprintf("[%s] %s", provider, message))
	return e.WithContext("provider", provider)
}

// IsType checks whether err (or anything it wraps) carries the given type
func IsType(err error, t ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == t
}
