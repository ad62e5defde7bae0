package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	err := DomainError{Code: ErrCodeAnalysisError, Message: "comparison failed"}
	if err.Error() != "comparison failed" {
		t.Errorf("Expected 'comparison failed', got %q", err.Error())
	}
}

func TestDomainError_ErrorWithCause(t *testing.T) {
	cause := fmt.Errorf("broken pipe")
	err := DomainError{Code: ErrCodeOutputError, Message: "write failed", Cause: cause}

	if !strings.Contains(err.Error(), "write failed") || !strings.Contains(err.Error(), "broken pipe") {
		t.Errorf("Expected message and cause in error string, got %q", err.Error())
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := NewAnalysisError("wrapper", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		err      error
		expected ErrorCode
	}{
		{NewAnalysisError("x", nil), ErrCodeAnalysisError},
		{NewConfigError("x", nil), ErrCodeConfigError},
		{NewOutputError("x", nil), ErrCodeOutputError},
		{NewUnsupportedFormatError("csv"), ErrCodeUnsupportedFormat},
		{NewValidationError("x"), ErrCodeInvalidInput},
	}

	for _, tc := range tests {
		var domainErr DomainError
		if !errors.As(tc.err, &domainErr) {
			t.Fatalf("Expected DomainError, got %T", tc.err)
		}
		if domainErr.Code != tc.expected {
			t.Errorf("Expected code %s, got %s", tc.expected, domainErr.Code)
		}
	}
}

func TestNewUnsupportedFormatError_NamesFormat(t *testing.T) {
	err := NewUnsupportedFormatError("csv")
	if !strings.Contains(err.Error(), "csv") {
		t.Errorf("Expected format name in message, got %q", err.Error())
	}
}
