package cli

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"time-conductor/internal/api"
	"time-conductor/internal/conductor"
	"time-conductor/internal/domain"
	"time-conductor/internal/errors"
	"time-conductor/internal/navigation"
)

var mockNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// mockAPI implements the API interface for testing
type mockAPI struct {
	state      domain.ConductorState
	views      map[string]*domain.View
	nextViewID int64
	hasClock   bool
}

// newMockAPI creates a new mock API instance
func newMockAPI() *mockAPI {
	return &mockAPI{
		state: domain.ConductorState{
			Mode:        domain.ModeFixed,
			Bounds:      domain.NewBounds(mockNow.Add(-30*time.Minute), mockNow),
			StartOffset: domain.Offset{Minutes: 30},
			ClockKey:    "mock",
		},
		views:      make(map[string]*domain.View),
		nextViewID: 1,
		hasClock:   true,
	}
}

var _ api.API = (*mockAPI)(nil)

func (m *mockAPI) Show(ctx context.Context) (domain.ConductorState, error) {
	return m.state, nil
}

func (m *mockAPI) SetMode(ctx context.Context, mode domain.Mode) (domain.ConductorState, error) {
	if !mode.IsValid() {
		return domain.ConductorState{}, errors.NewInvalidInputError("mode", mode, "expected fixed or real-time")
	}
	if mode == domain.ModeRealTime && !m.hasClock {
		return domain.ConductorState{}, errors.NewConfigurationError("active clock", "real-time mode requires an active clock")
	}
	m.state.Mode = mode
	if mode == domain.ModeRealTime {
		m.state.Bounds = domain.NewBounds(
			mockNow.Add(-m.state.StartOffset.Duration()),
			mockNow.Add(m.state.EndOffset.Duration()),
		)
	}
	return m.state, nil
}

func (m *mockAPI) SetFixedBounds(ctx context.Context, startStr, endStr string) (domain.ConductorState, error) {
	start, err := domain.ParseTimestamp(startStr)
	if err != nil {
		return domain.ConductorState{}, errors.NewInvalidInputError("start", startStr, "invalid timestamp")
	}
	end, err := domain.ParseTimestamp(endStr)
	if err != nil {
		return domain.ConductorState{}, errors.NewInvalidInputError("end", endStr, "invalid timestamp")
	}
	if start.After(end) {
		return domain.ConductorState{}, errors.NewValidationError("start must not be after end", nil)
	}
	m.state.Mode = domain.ModeFixed
	m.state.Bounds = domain.NewBounds(start, end)
	return m.state, nil
}

func (m *mockAPI) SetOffset(ctx context.Context, kind domain.OffsetKind, edit domain.OffsetEdit) (domain.ConductorState, error) {
	if edit.IsEmpty() {
		return domain.ConductorState{}, errors.NewInvalidInputError("offset", edit, "at least one component is required")
	}
	if kind == domain.OffsetStart {
		m.state.StartOffset = edit.ApplyTo(m.state.StartOffset)
	} else {
		m.state.EndOffset = edit.ApplyTo(m.state.EndOffset)
	}
	return m.state, nil
}

func (m *mockAPI) ShareURL(ctx context.Context) (string, error) {
	return navigation.BuildURL("https://telemetry.local/view", m.state)
}

func (m *mockAPI) OpenURL(ctx context.Context, rawURL string) (domain.ConductorState, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return domain.ConductorState{}, errors.NewInvalidInputError("url", rawURL, "must be a valid URL")
	}
	state, err := navigation.Decode(u.Query())
	if err != nil {
		return domain.ConductorState{}, err
	}
	if state.Mode == domain.ModeRealTime {
		if !m.hasClock {
			return domain.ConductorState{}, errors.NewConfigurationError("active clock", "real-time mode requires an active clock")
		}
		state.Bounds = domain.NewBounds(
			mockNow.Add(-state.StartOffset.Duration()),
			mockNow.Add(state.EndOffset.Duration()),
		)
		state.ClockKey = "mock"
	}
	m.state = state
	return m.state, nil
}

func (m *mockAPI) SaveView(ctx context.Context, name string) (*domain.View, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewInvalidInputError("name", name, "name is required")
	}
	if _, exists := m.views[name]; exists {
		return nil, errors.NewDatabaseError("create view", fmt.Errorf("view %q already exists", name))
	}
	view := &domain.View{
		ID:        m.nextViewID,
		Name:      name,
		Token:     fmt.Sprintf("token-%d", m.nextViewID),
		State:     m.state,
		CreatedAt: mockNow,
	}
	m.views[name] = view
	m.nextViewID++
	return view, nil
}

func (m *mockAPI) LoadView(ctx context.Context, nameOrToken string) (domain.ConductorState, error) {
	if view, exists := m.views[nameOrToken]; exists {
		m.state = view.State
		return m.state, nil
	}
	for _, view := range m.views {
		if view.Token == nameOrToken {
			m.state = view.State
			return m.state, nil
		}
	}
	return domain.ConductorState{}, errors.NewNotFoundError("view", nameOrToken)
}

func (m *mockAPI) ListViews(ctx context.Context) ([]domain.View, error) {
	views := make([]domain.View, 0, len(m.views))
	for _, view := range m.views {
		views = append(views, *view)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}

func (m *mockAPI) DeleteView(ctx context.Context, name string) error {
	if _, exists := m.views[name]; !exists {
		return errors.NewNotFoundError("view", name)
	}
	delete(m.views, name)
	return nil
}

func (m *mockAPI) Follow(ctx context.Context, fn conductor.ListenerFunc) error {
	if !m.hasClock {
		return errors.NewConfigurationError("active clock", "following requires an active clock")
	}
	if _, err := m.SetMode(ctx, domain.ModeRealTime); err != nil {
		return err
	}
	fn(m.state.Bounds)
	<-ctx.Done()
	return nil
}

// setupTestAppWithMockAPI creates an App backed by the mock API
func setupTestAppWithMockAPI() (*App, *mockAPI) {
	mock := newMockAPI()
	return NewApp(mock), mock
}
