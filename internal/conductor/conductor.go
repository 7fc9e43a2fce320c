// Package conductor owns the viewing window of a telemetry display: the
// current mode (fixed timespan or real-time), the committed bounds and
// the start/end offsets. All mutations are validated before commit, so
// the committed window never holds start > end, and offsets survive
// every mode switch.
package conductor

import (
	"net/url"
	"time"

	"time-conductor/internal/clock"
	"time-conductor/internal/config"
	"time-conductor/internal/domain"
	"time-conductor/internal/errors"
	"time-conductor/internal/logging"
	"time-conductor/internal/navigation"
	"time-conductor/internal/validation"
)

// DefaultLookback is the start offset of a fresh conductor.
const DefaultLookback = 30 * time.Minute

// ListenerFunc receives the committed bounds after every change.
type ListenerFunc func(bounds domain.Bounds)

// Conductor maintains the current time bounds, mode and offsets. It is
// owned by a single session and driven by discrete events (field edits,
// mode switches, clock ticks); it never polls the clock itself.
type Conductor struct {
	clock           clock.Clock // nil when no active clock is configured
	boundsValidator *validation.BoundsValidator
	offsetValidator *validation.OffsetValidator

	mode        domain.Mode
	bounds      domain.Bounds
	startOffset domain.Offset
	endOffset   domain.Offset

	listeners      map[int]ListenerFunc
	nextListenerID int
}

// New creates a conductor in fixed mode. With a clock attached the
// initial window is the default lookback ending at now; without one the
// bounds stay unset until the first edit or restore.
func New(clk clock.Clock) *Conductor {
	return NewWithConfig(clk, nil)
}

// NewWithConfig creates a conductor whose validators honor the given
// configuration.
func NewWithConfig(clk clock.Clock, cfg *config.Config) *Conductor {
	validator := validation.NewValidator()
	if cfg != nil {
		validator = validation.NewValidatorWithConfig(cfg)
	}

	c := &Conductor{
		clock:           clk,
		boundsValidator: validation.NewBoundsValidatorWith(validator),
		offsetValidator: validation.NewOffsetValidatorWith(validator),
		mode:            domain.ModeFixed,
		startOffset:     domain.OffsetFromDuration(DefaultLookback),
		listeners:       make(map[int]ListenerFunc),
	}

	if clk != nil {
		now := clk.Now()
		c.bounds = domain.NewBounds(now.Add(-c.startOffset.Duration()), now)
	}

	return c
}

// Mode returns the current mode.
func (c *Conductor) Mode() domain.Mode {
	return c.mode
}

// Bounds returns the committed bounds.
func (c *Conductor) Bounds() domain.Bounds {
	return c.bounds
}

// Offset returns the offset for the given window edge.
func (c *Conductor) Offset(kind domain.OffsetKind) domain.Offset {
	if kind == domain.OffsetStart {
		return c.startOffset
	}
	return c.endOffset
}

// ClockKey returns the active clock key, or empty when no clock is
// attached.
func (c *Conductor) ClockKey() string {
	if c.clock == nil {
		return ""
	}
	return c.clock.Key()
}

// SetMode switches between fixed and real-time mode. Entering real-time
// recomputes the bounds from now plus the stored offsets immediately;
// entering fixed freezes the bounds at their last computed value. Stored
// offsets are never discarded. Requesting real-time without an active
// clock is a configuration error, not a silent fallback.
func (c *Conductor) SetMode(mode domain.Mode) error {
	if !mode.IsValid() {
		return errors.NewInvalidInputError("mode", mode, "expected fixed or real-time")
	}

	if mode == domain.ModeRealTime {
		if c.clock == nil {
			return errors.NewConfigurationError("active clock", "real-time mode requires an active clock")
		}
		c.mode = domain.ModeRealTime
		c.recompute(c.clock.Now())
		return nil
	}

	// Fixed mode freezes whatever the window currently shows.
	c.mode = domain.ModeFixed
	return nil
}

// SetFixedBounds validates and commits an absolute bounds pair. On
// validation failure the previously committed bounds are retained.
func (c *Conductor) SetFixedBounds(start, end time.Time) error {
	candidate := domain.NewBounds(start, end)
	if err := c.boundsValidator.ValidateBounds(candidate); err != nil {
		return err
	}
	c.commit(candidate)
	return nil
}

// SetFixedBoundsStrings parses and commits bounds from the date entry
// fields.
func (c *Conductor) SetFixedBoundsStrings(startStr, endStr string) error {
	bounds, err := c.boundsValidator.ValidateBoundsStrings(startStr, endStr)
	if err != nil {
		return err
	}
	c.commit(bounds)
	return nil
}

// ValidateStartEdit checks a candidate start field value against the
// committed end without committing anything. Lets a UI flag one field
// invalid while the user finishes the other.
func (c *Conductor) ValidateStartEdit(candidate string) error {
	_, err := c.boundsValidator.ValidateStartEdit(candidate, c.bounds.End)
	return err
}

// ValidateEndEdit checks a candidate end field value against the
// committed start without committing anything.
func (c *Conductor) ValidateEndEdit(candidate string) error {
	_, err := c.boundsValidator.ValidateEndEdit(candidate, c.bounds.Start)
	return err
}

// SetOffset merges a partial offset edit into the stored offset for the
// given edge. Unset components keep their prior values. In real-time
// mode the bounds are recomputed immediately.
func (c *Conductor) SetOffset(kind domain.OffsetKind, edit domain.OffsetEdit) error {
	if err := c.offsetValidator.ValidateEdit(edit); err != nil {
		return err
	}

	merged := edit.ApplyTo(c.Offset(kind))
	if err := c.offsetValidator.ValidateOffset(merged); err != nil {
		return err
	}

	if kind == domain.OffsetStart {
		c.startOffset = merged
	} else {
		c.endOffset = merged
	}
	logging.Debugf("conductor: %s offset set to %s\n", kind, merged)

	if c.mode == domain.ModeRealTime {
		c.recompute(c.clock.Now())
	}
	return nil
}

// DisplayOffset formats the offset for the given edge as zero-padded
// HH:MM:SS.
func (c *Conductor) DisplayOffset(kind domain.OffsetKind) string {
	return c.Offset(kind).String()
}

// Tick recomputes the bounds from the supplied instant. Delivered by the
// external clock signal; a tick in fixed mode is a no-op.
func (c *Conductor) Tick(now time.Time) {
	if c.mode != domain.ModeRealTime {
		return
	}
	c.recompute(now)
}

// Subscribe registers a listener for committed bounds changes and
// returns its unsubscribe function. Unsubscribing twice is harmless.
func (c *Conductor) Subscribe(fn ListenerFunc) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn

	return func() {
		delete(c.listeners, id)
	}
}

// State snapshots the full conductor state for persistence or sharing.
func (c *Conductor) State() domain.ConductorState {
	return domain.ConductorState{
		Mode:        c.mode,
		Bounds:      c.bounds,
		StartOffset: c.startOffset,
		EndOffset:   c.endOffset,
		ClockKey:    c.ClockKey(),
	}
}

// NavigationState serializes the current state into shareable query
// parameters: startDelta/endDelta milliseconds in real-time mode,
// absolute start/end milliseconds in fixed mode.
func (c *Conductor) NavigationState() url.Values {
	return navigation.Encode(c.State())
}

// Restore replaces the conductor state with a previously captured
// snapshot. Restoring a real-time snapshot recomputes the bounds from
// the attached clock and therefore requires one.
func (c *Conductor) Restore(state domain.ConductorState) error {
	if !state.Mode.IsValid() {
		return errors.NewInvalidInputError("mode", state.Mode, "expected fixed or real-time")
	}
	if err := c.offsetValidator.ValidateOffset(state.StartOffset); err != nil {
		return err
	}
	if err := c.offsetValidator.ValidateOffset(state.EndOffset); err != nil {
		return err
	}

	c.startOffset = state.StartOffset
	c.endOffset = state.EndOffset

	if state.Mode == domain.ModeRealTime {
		if c.clock == nil {
			return errors.NewConfigurationError("active clock", "cannot restore a real-time window without an active clock")
		}
		c.mode = domain.ModeRealTime
		c.recompute(c.clock.Now())
		return nil
	}

	if err := c.boundsValidator.ValidateBounds(state.Bounds); err != nil {
		return err
	}
	c.mode = domain.ModeFixed
	c.commit(state.Bounds)
	return nil
}

// recompute derives the real-time window from an instant: the start
// offset looks backward from now, the end offset forward.
func (c *Conductor) recompute(now time.Time) {
	c.commit(domain.NewBounds(
		now.Add(-c.startOffset.Duration()),
		now.Add(c.endOffset.Duration()),
	))
}

// commit stores the bounds and notifies listeners when they changed.
func (c *Conductor) commit(bounds domain.Bounds) {
	if c.bounds.Equal(bounds) {
		return
	}
	c.bounds = bounds
	for _, fn := range c.listeners {
		fn(bounds)
	}
}
