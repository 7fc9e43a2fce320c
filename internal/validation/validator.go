package validation

import (
	"time"

	"time-conductor/internal/config"
	"time-conductor/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// ParseTimestamp parses a date-field timestamp string
func (v *Validator) ParseTimestamp(s string) (time.Time, error) {
	return domain.ParseTimestamp(s)
}

// IsValidBoundsPair checks that start does not exceed end. Equal endpoints
// are valid.
func (v *Validator) IsValidBoundsPair(start, end time.Time) bool {
	return !start.After(end)
}

// IsSetTimestamp checks that a timestamp carries a value
func (v *Validator) IsSetTimestamp(t time.Time) bool {
	return !t.IsZero()
}

// IsValidWindowSpan checks that a window width is within the configured limit
func (v *Validator) IsValidWindowSpan(span time.Duration) bool {
	return span >= 0 && span <= v.getMaxWindowSpan()
}

// IsValidOffsetComponent checks a single offset component against its
// field limit
func (v *Validator) IsValidOffsetComponent(value, max int) bool {
	return value >= 0 && value <= max
}

// getMaxWindowSpan returns configured maximum window span or default
func (v *Validator) getMaxWindowSpan() time.Duration {
	if v.config != nil {
		return v.config.Validation.MaxWindowSpan
	}
	return 10 * 365 * 24 * time.Hour // Default maximum
}
