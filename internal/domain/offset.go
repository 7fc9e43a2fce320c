package domain

import (
	"fmt"
	"time"
)

// Offset component limits. Minutes and seconds follow the HH:MM:SS entry
// fields (0-59, no rollover); hours are capped at two display digits.
const (
	MaxOffsetHours   = 99
	MaxOffsetMinutes = 59
	MaxOffsetSeconds = 59
)

// Offset is a non-negative duration expressed as hours, minutes and
// seconds, applied relative to "now" in real-time mode.
type Offset struct {
	Hours   int
	Minutes int
	Seconds int
}

// Duration converts the offset to a single duration.
func (o Offset) Duration() time.Duration {
	return time.Duration(o.Hours)*time.Hour +
		time.Duration(o.Minutes)*time.Minute +
		time.Duration(o.Seconds)*time.Second
}

// IsValid checks that every component is within its field limits.
func (o Offset) IsValid() bool {
	if o.Hours < 0 || o.Hours > MaxOffsetHours {
		return false
	}
	if o.Minutes < 0 || o.Minutes > MaxOffsetMinutes {
		return false
	}
	return o.Seconds >= 0 && o.Seconds <= MaxOffsetSeconds
}

// IsZero reports whether all components are zero.
func (o Offset) IsZero() bool {
	return o.Hours == 0 && o.Minutes == 0 && o.Seconds == 0
}

// String renders the offset as zero-padded HH:MM:SS for display.
func (o Offset) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", o.Hours, o.Minutes, o.Seconds)
}

// OffsetFromDuration splits a duration into offset components. Negative
// durations and sub-second remainders are truncated to zero.
func OffsetFromDuration(d time.Duration) Offset {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return Offset{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// OffsetEdit is a partial offset entry: nil components keep their current
// value, so editing minutes does not reset previously entered seconds.
type OffsetEdit struct {
	Hours   *int
	Minutes *int
	Seconds *int
}

// ApplyTo merges the edit into an existing offset.
func (e OffsetEdit) ApplyTo(o Offset) Offset {
	if e.Hours != nil {
		o.Hours = *e.Hours
	}
	if e.Minutes != nil {
		o.Minutes = *e.Minutes
	}
	if e.Seconds != nil {
		o.Seconds = *e.Seconds
	}
	return o
}

// IsEmpty reports whether the edit changes nothing.
func (e OffsetEdit) IsEmpty() bool {
	return e.Hours == nil && e.Minutes == nil && e.Seconds == nil
}

// OffsetKind selects which window edge an offset applies to. The start
// offset looks backward from now, the end offset forward.
type OffsetKind int

const (
	OffsetStart OffsetKind = iota
	OffsetEnd
)

// String returns the edge name.
func (k OffsetKind) String() string {
	switch k {
	case OffsetStart:
		return "start"
	case OffsetEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ParseOffsetKind parses an edge name.
func ParseOffsetKind(s string) (OffsetKind, error) {
	switch s {
	case "start":
		return OffsetStart, nil
	case "end":
		return OffsetEnd, nil
	default:
		return OffsetStart, fmt.Errorf("unknown offset edge: %q (expected start or end)", s)
	}
}
