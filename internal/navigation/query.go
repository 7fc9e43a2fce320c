// Package navigation encodes the conductor state into shareable query
// parameters and restores it from them. Real-time windows travel as delta
// milliseconds (startDelta, endDelta) so a shared URL keeps following the
// clock; fixed windows travel as absolute epoch milliseconds.
package navigation

import (
	"net/url"
	"strconv"
	"time"

	"time-conductor/internal/domain"
	"time-conductor/internal/errors"
)

// Query parameter names.
const (
	ParamMode       = "mode"
	ParamStart      = "start"
	ParamEnd        = "end"
	ParamStartDelta = "startDelta"
	ParamEndDelta   = "endDelta"
	ParamClock      = "clock"
)

// Encode serializes conductor state into navigation query parameters.
func Encode(state domain.ConductorState) url.Values {
	values := url.Values{}
	values.Set(ParamMode, state.Mode.String())

	switch state.Mode {
	case domain.ModeRealTime:
		values.Set(ParamStartDelta, strconv.FormatInt(state.StartOffset.Duration().Milliseconds(), 10))
		values.Set(ParamEndDelta, strconv.FormatInt(state.EndOffset.Duration().Milliseconds(), 10))
		if state.ClockKey != "" {
			values.Set(ParamClock, state.ClockKey)
		}
	default:
		values.Set(ParamStart, strconv.FormatInt(state.Bounds.Start.UnixMilli(), 10))
		values.Set(ParamEnd, strconv.FormatInt(state.Bounds.End.UnixMilli(), 10))
	}

	return values
}

// Decode restores conductor state from navigation query parameters.
// Real-time parameters restore the offsets; bounds are recomputed by the
// conductor once a clock is attached. Fixed parameters restore the bounds
// directly.
func Decode(values url.Values) (domain.ConductorState, error) {
	mode, err := domain.ParseMode(values.Get(ParamMode))
	if err != nil {
		return domain.ConductorState{}, errors.NewInvalidInputError(ParamMode, values.Get(ParamMode), "expected fixed or real-time")
	}

	state := domain.ConductorState{Mode: mode}

	switch mode {
	case domain.ModeRealTime:
		startDelta, err := parseDelta(values.Get(ParamStartDelta), ParamStartDelta)
		if err != nil {
			return domain.ConductorState{}, err
		}
		endDelta, err := parseDelta(values.Get(ParamEndDelta), ParamEndDelta)
		if err != nil {
			return domain.ConductorState{}, err
		}
		state.StartOffset = domain.OffsetFromDuration(startDelta)
		state.EndOffset = domain.OffsetFromDuration(endDelta)
		state.ClockKey = values.Get(ParamClock)
	default:
		start, err := parseEpochMilli(values.Get(ParamStart), ParamStart)
		if err != nil {
			return domain.ConductorState{}, err
		}
		end, err := parseEpochMilli(values.Get(ParamEnd), ParamEnd)
		if err != nil {
			return domain.ConductorState{}, err
		}
		bounds := domain.NewBounds(start, end)
		if !bounds.IsValid() {
			return domain.ConductorState{}, errors.NewValidationError("start must not be after end", nil)
		}
		state.Bounds = bounds
	}

	return state, nil
}

// BuildURL renders a complete shareable URL for the given state.
func BuildURL(base string, state domain.ConductorState) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", errors.NewInvalidInputError("base URL", base, "must be a valid URL")
	}

	query := u.Query()
	for key, vals := range Encode(state) {
		for _, v := range vals {
			query.Set(key, v)
		}
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}

func parseDelta(raw, param string) (time.Duration, error) {
	if raw == "" {
		return 0, errors.NewInvalidInputError(param, raw, "missing delta parameter")
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ms < 0 {
		return 0, errors.NewInvalidInputError(param, raw, "must be a non-negative integer of milliseconds")
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func parseEpochMilli(raw, param string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.NewInvalidInputError(param, raw, "missing bound parameter")
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError(param, raw, "must be an integer of epoch milliseconds")
	}
	return time.UnixMilli(ms).UTC(), nil
}
