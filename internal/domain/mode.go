package domain

import "fmt"

// Mode selects how the viewing window is defined: two absolute timestamps
// (fixed) or a live clock plus offsets (real-time).
type Mode int

const (
	ModeFixed Mode = iota
	ModeRealTime
)

// String returns the mode name used in displays and navigation state.
func (m Mode) String() string {
	switch m {
	case ModeFixed:
		return "fixed"
	case ModeRealTime:
		return "real-time"
	default:
		return "unknown"
	}
}

// IsValid checks if the mode is a known variant.
func (m Mode) IsValid() bool {
	return m == ModeFixed || m == ModeRealTime
}

// ParseMode parses a mode name. Accepts the canonical forms "fixed" and
// "real-time" plus the common "realtime" spelling.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "fixed":
		return ModeFixed, nil
	case "real-time", "realtime":
		return ModeRealTime, nil
	default:
		return ModeFixed, fmt.Errorf("unknown mode: %q (expected fixed or real-time)", s)
	}
}
