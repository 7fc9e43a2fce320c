package cli

import (
	"errors"
	"testing"

	apperrors "time-conductor/internal/errors"
	"time-conductor/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "set bounds",
			err:       apperrors.NewValidationError("start must not be after end", nil),
			expected:  "failed to set bounds: start must not be after end",
		},
		{
			name:      "Not found error",
			operation: "load view",
			err:       apperrors.NewNotFoundError("view", "night-pass"),
			expected:  "failed to load view: view not found: night-pass",
		},
		{
			name:      "Configuration error",
			operation: "set mode",
			err:       apperrors.NewConfigurationError("active clock", "real-time mode requires an active clock"),
			expected:  "failed to set mode: configuration error in active clock: real-time mode requires an active clock",
		},
		{
			name:      "Database error",
			operation: "save view",
			err:       apperrors.NewDatabaseError("insert", errors.New("timeout")),
			expected:  "failed to save view: A database error occurred. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_HandleFieldErrors(t *testing.T) {
	eh := NewErrorHandler()

	validationErr := validation.NewValidationError()
	validationErr.AddInvalidValueError("minutes", 75, "must be between 0 and 59")

	result := eh.Handle("set offset", validationErr)
	if result == nil {
		t.Fatal("expected an error")
	}
	if got := result.Error(); got == "" {
		t.Errorf("expected a user-friendly message, got empty string")
	}
}

func TestErrorHandler_Predicates(t *testing.T) {
	eh := NewErrorHandler()

	if !eh.IsValidationError(apperrors.NewValidationError("bad", nil)) {
		t.Error("expected validation error to be detected")
	}
	if !eh.IsNotFoundError(apperrors.NewNotFoundError("view", "x")) {
		t.Error("expected not-found error to be detected")
	}
	if !eh.IsConfigurationError(apperrors.NewConfigurationError("active clock", "missing")) {
		t.Error("expected configuration error to be detected")
	}
	if eh.IsConfigurationError(errors.New("plain")) {
		t.Error("plain error must not be a configuration error")
	}
}
