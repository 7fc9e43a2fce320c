package sqlite

import "time"

// State is the persisted conductor state row. A single row (id = 1) holds
// the current viewing window so it survives process restarts. Offsets are
// stored as delta milliseconds, matching the navigation-state encoding.
type State struct {
	ID           int64
	Mode         string
	StartTime    time.Time
	EndTime      time.Time
	StartDeltaMS int64
	EndDeltaMS   int64
	ClockKey     string
	UpdatedAt    time.Time
}

// View is a saved, named viewing window. The token is the stable reference
// used in shared URLs.
type View struct {
	ID           int64
	Name         string
	Token        string
	Mode         string
	StartTime    time.Time
	EndTime      time.Time
	StartDeltaMS int64
	EndDeltaMS   int64
	ClockKey     string
	CreatedAt    time.Time
}
