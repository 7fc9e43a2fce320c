package validation

import (
	"time"

	"time-conductor/internal/domain"
)

// BoundsValidator provides validation for fixed-bounds edits. Edits are
// checked pairwise: a candidate start is validated against the committed
// end and vice versa, so a UI can flag one field invalid while the other
// is being completed, but committed bounds never hold start > end.
type BoundsValidator struct {
	validator *Validator
}

// NewBoundsValidator creates a new bounds validator
func NewBoundsValidator() *BoundsValidator {
	return &BoundsValidator{
		validator: NewValidator(),
	}
}

// NewBoundsValidatorWith creates a bounds validator sharing a base validator
func NewBoundsValidatorWith(v *Validator) *BoundsValidator {
	return &BoundsValidator{validator: v}
}

// ValidateBounds validates a committed bounds pair
func (bv *BoundsValidator) ValidateBounds(bounds domain.Bounds) error {
	validationError := NewValidationError()

	if !bv.validator.IsSetTimestamp(bounds.Start) {
		validationError.AddRequiredError("start")
	}
	if !bv.validator.IsSetTimestamp(bounds.End) {
		validationError.AddRequiredError("end")
	}

	if !validationError.HasErrors() {
		if !bv.validator.IsValidBoundsPair(bounds.Start, bounds.End) {
			validationError.AddInvalidRangeError("bounds", bounds, "start must not be after end")
		} else if !bv.validator.IsValidWindowSpan(bounds.Span()) {
			validationError.AddInvalidRangeError("bounds", bounds, "window span exceeds the configured maximum")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateStartEdit validates a candidate start field value against the
// committed end. Returns the parsed timestamp on success.
func (bv *BoundsValidator) ValidateStartEdit(candidate string, committedEnd time.Time) (time.Time, error) {
	validationError := NewValidationError()

	parsed, err := bv.validator.ParseTimestamp(candidate)
	if err != nil {
		validationError.AddInvalidFormatError("start", candidate, domain.TimestampLayout)
		return time.Time{}, validationError
	}

	if bv.validator.IsSetTimestamp(committedEnd) && !bv.validator.IsValidBoundsPair(parsed, committedEnd) {
		validationError.AddInvalidRangeError("start", candidate, "start must not be after end")
		return time.Time{}, validationError
	}

	return parsed, nil
}

// ValidateEndEdit validates a candidate end field value against the
// committed start. Returns the parsed timestamp on success.
func (bv *BoundsValidator) ValidateEndEdit(candidate string, committedStart time.Time) (time.Time, error) {
	validationError := NewValidationError()

	parsed, err := bv.validator.ParseTimestamp(candidate)
	if err != nil {
		validationError.AddInvalidFormatError("end", candidate, domain.TimestampLayout)
		return time.Time{}, validationError
	}

	if bv.validator.IsSetTimestamp(committedStart) && !bv.validator.IsValidBoundsPair(committedStart, parsed) {
		validationError.AddInvalidRangeError("end", candidate, "end must not be before start")
		return time.Time{}, validationError
	}

	return parsed, nil
}

// ValidateBoundsStrings validates a full pair of candidate field values
// and returns the parsed bounds. Both fields are parsed before the pair
// is checked, so a single call reports every invalid field.
func (bv *BoundsValidator) ValidateBoundsStrings(startStr, endStr string) (domain.Bounds, error) {
	validationError := NewValidationError()

	start, startErr := bv.validator.ParseTimestamp(startStr)
	if startErr != nil {
		validationError.AddInvalidFormatError("start", startStr, domain.TimestampLayout)
	}
	end, endErr := bv.validator.ParseTimestamp(endStr)
	if endErr != nil {
		validationError.AddInvalidFormatError("end", endStr, domain.TimestampLayout)
	}

	if validationError.HasErrors() {
		return domain.Bounds{}, validationError
	}

	bounds := domain.NewBounds(start, end)
	if err := bv.ValidateBounds(bounds); err != nil {
		return domain.Bounds{}, err
	}
	return bounds, nil
}
