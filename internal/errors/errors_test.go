package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeTimeout, "timeout"},
		{ErrorTypeConfiguration, "configuration"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.errorType.String(); got != tt.expected {
				t.Errorf("String() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestNewConfigurationError(t *testing.T) {
	err := NewConfigurationError("active clock", "real-time mode requires an active clock")

	if !err.IsType(ErrorTypeConfiguration) {
		t.Errorf("expected configuration error type, got %v", err.Type)
	}
	if err.Code != "CONFIGURATION_ERROR" {
		t.Errorf("expected CONFIGURATION_ERROR code, got %q", err.Code)
	}
	component, ok := err.GetContext("component")
	if !ok || component != "active clock" {
		t.Errorf("expected component context 'active clock', got %v", component)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := NewDatabaseError("save state", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NewValidationError("start must not be after end", nil)
	wrapped := fmt.Errorf("commit bounds: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if !got.IsType(ErrorTypeValidation) {
		t.Errorf("expected validation type, got %v", got.Type)
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Error("expected AsAppError to fail for plain error")
	}
}

func TestIsErrorType(t *testing.T) {
	err := NewNotFoundError("view", "night-pass")

	if !IsErrorType(err, ErrorTypeNotFound) {
		t.Error("expected not_found type match")
	}
	if IsErrorType(err, ErrorTypeValidation) {
		t.Error("did not expect validation type match")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeNotFound) {
		t.Error("plain errors should not match any type")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation errors pass through",
			err:      NewValidationError("start must not be after end", nil),
			expected: "start must not be after end",
		},
		{
			name:     "database errors are masked",
			err:      NewDatabaseError("save state", errors.New("disk full")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "plain errors pass through",
			err:      errors.New("something odd"),
			expected: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetUserMessage(tt.err)
			if got != tt.expected {
				t.Errorf("GetUserMessage() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	if ShouldLogError(NewValidationError("bad bounds", nil)) {
		t.Error("validation errors should not be logged")
	}
	if !ShouldLogError(NewConfigurationError("active clock", "missing")) {
		t.Error("configuration errors should be logged")
	}
	if !ShouldLogError(errors.New("plain")) {
		t.Error("unknown errors should be logged")
	}
}
