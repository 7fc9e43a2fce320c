package domain

import "time"

// ConductorState is the complete serializable state of the bounds
// controller: mode, committed bounds, both offsets and the active clock
// key. Offsets are carried in both modes so mode switches never lose them.
type ConductorState struct {
	Mode        Mode
	Bounds      Bounds
	StartOffset Offset
	EndOffset   Offset
	ClockKey    string
}

// IsValid checks the state invariants: a known mode, valid committed
// bounds and in-range offsets.
func (s ConductorState) IsValid() bool {
	return s.Mode.IsValid() && s.Bounds.IsValid() && s.StartOffset.IsValid() && s.EndOffset.IsValid()
}

// View is a named, shareable saved window. The token is the stable
// reference embedded in shared URLs.
type View struct {
	ID        int64
	Name      string
	Token     string
	State     ConductorState
	CreatedAt time.Time
}

// IsValid checks if the view has valid data.
func (v View) IsValid() bool {
	return v.Name != "" && v.State.IsValid()
}
