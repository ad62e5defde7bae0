package domain

import "fmt"

// ErrorCode is a machine-readable error category
type ErrorCode string

const (
	ErrCodeInvalidInput      ErrorCode = "invalid_input"
	ErrCodeAnalysisError     ErrorCode = "analysis_error"
	ErrCodeConfigError       ErrorCode = "config_error"
	ErrCodeOutputError       ErrorCode = "output_error"
	ErrCodeUnsupportedFormat ErrorCode = "unsupported_format"
)

// DomainError is the error type returned across service boundaries
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface
func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e DomainError) Unwrap() error {
	return e.Cause
}

// NewAnalysisError creates an error for comparison/extraction failures
func NewAnalysisError(message string, cause error) error {
	return DomainError{Code: ErrCodeAnalysisError, Message: message, Cause: cause}
}

// NewConfigError creates an error for configuration problems
func NewConfigError(message string, cause error) error {
	return DomainError{Code: ErrCodeConfigError, Message: message, Cause: cause}
}

// NewOutputError creates an error for report writing failures
func NewOutputError(message string, cause error) error {
	return DomainError{Code: ErrCodeOutputError, Message: message, Cause: cause}
}

// NewUnsupportedFormatError creates an error for unknown output formats
func NewUnsupportedFormatError(format string) error {
	return DomainError{
		Code:    ErrCodeUnsupportedFormat,
		Message: fmt.Sprintf("unsupported format: %s", format),
	}
}

// NewValidationError creates an error for malformed input shapes
func NewValidationError(message string) error {
	return DomainError{Code: ErrCodeInvalidInput, Message: message}
}
