package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the timestamp format used by the date entry fields,
// e.g. "2024-06-01 12:30:00.000Z".
const TimestampLayout = "2006-01-02 15:04:05.000Z07:00"

// Bounds is the (start, end) pair defining the current viewing window.
// Both endpoints are inclusive.
type Bounds struct {
	Start time.Time
	End   time.Time
}

// NewBounds creates a Bounds from two instants.
func NewBounds(start, end time.Time) Bounds {
	return Bounds{Start: start, End: end}
}

// IsValid checks that both endpoints are set and start does not exceed end.
// Equal endpoints are a valid (instantaneous) window.
func (b Bounds) IsValid() bool {
	if b.Start.IsZero() || b.End.IsZero() {
		return false
	}
	return !b.Start.After(b.End)
}

// Span returns the width of the window.
func (b Bounds) Span() time.Duration {
	return b.End.Sub(b.Start)
}

// Contains reports whether t falls within the window.
func (b Bounds) Contains(t time.Time) bool {
	return !t.Before(b.Start) && !t.After(b.End)
}

// Equal reports whether two bounds describe the same window.
func (b Bounds) Equal(other Bounds) bool {
	return b.Start.Equal(other.Start) && b.End.Equal(other.End)
}

// String renders the window in the date-field timestamp layout.
func (b Bounds) String() string {
	return fmt.Sprintf("%s - %s", b.Start.UTC().Format(TimestampLayout), b.End.UTC().Format(TimestampLayout))
}

// ParseTimestamp parses a date-field timestamp. The primary layout is
// TimestampLayout; RFC3339 is accepted as a fallback so shared URLs and
// stored values round-trip.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp: %q", s)
}
