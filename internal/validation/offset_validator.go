package validation

import (
	"fmt"

	"time-conductor/internal/domain"
)

// OffsetValidator provides validation for offset entry. Components are
// rejected at the field level: negative values and values beyond the
// HH:MM:SS field limits never reach committed state, and there is no
// rollover normalization.
type OffsetValidator struct {
	validator *Validator
}

// NewOffsetValidator creates a new offset validator
func NewOffsetValidator() *OffsetValidator {
	return &OffsetValidator{
		validator: NewValidator(),
	}
}

// NewOffsetValidatorWith creates an offset validator sharing a base validator
func NewOffsetValidatorWith(v *Validator) *OffsetValidator {
	return &OffsetValidator{validator: v}
}

// ValidateOffset validates a complete offset
func (ov *OffsetValidator) ValidateOffset(offset domain.Offset) error {
	validationError := NewValidationError()

	if !ov.validator.IsValidOffsetComponent(offset.Hours, domain.MaxOffsetHours) {
		validationError.AddInvalidValueError("hours", offset.Hours, rangeReason(domain.MaxOffsetHours))
	}
	if !ov.validator.IsValidOffsetComponent(offset.Minutes, domain.MaxOffsetMinutes) {
		validationError.AddInvalidValueError("minutes", offset.Minutes, rangeReason(domain.MaxOffsetMinutes))
	}
	if !ov.validator.IsValidOffsetComponent(offset.Seconds, domain.MaxOffsetSeconds) {
		validationError.AddInvalidValueError("seconds", offset.Seconds, rangeReason(domain.MaxOffsetSeconds))
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateEdit validates the fields present in a partial offset edit
// without applying it. Unset components are not checked.
func (ov *OffsetValidator) ValidateEdit(edit domain.OffsetEdit) error {
	validationError := NewValidationError()

	if edit.Hours != nil && !ov.validator.IsValidOffsetComponent(*edit.Hours, domain.MaxOffsetHours) {
		validationError.AddInvalidValueError("hours", *edit.Hours, rangeReason(domain.MaxOffsetHours))
	}
	if edit.Minutes != nil && !ov.validator.IsValidOffsetComponent(*edit.Minutes, domain.MaxOffsetMinutes) {
		validationError.AddInvalidValueError("minutes", *edit.Minutes, rangeReason(domain.MaxOffsetMinutes))
	}
	if edit.Seconds != nil && !ov.validator.IsValidOffsetComponent(*edit.Seconds, domain.MaxOffsetSeconds) {
		validationError.AddInvalidValueError("seconds", *edit.Seconds, rangeReason(domain.MaxOffsetSeconds))
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

func rangeReason(max int) string {
	return fmt.Sprintf("must be between 0 and %d", max)
}
