package cli

import (
	"fmt"
	"strings"
	"time"

	"time-conductor/internal/api"
	"time-conductor/internal/config"
	"time-conductor/internal/domain"
)

// App represents the main CLI application
type App struct {
	api    api.API
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API) *App {
	return &App{
		api:    apiInstance,
		config: config.NewConfig(),
	}
}

// NewAppWithConfig creates a CLI application with an explicit configuration
func NewAppWithConfig(apiInstance api.API, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

// formatTime renders a timestamp in the configured display format
func (a *App) formatTime(t time.Time) string {
	return t.Format(a.config.Time.DisplayFormat)
}

// renderState renders the full window state for display
func (a *App) renderState(state domain.ConductorState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mode:         %s\n", state.Mode)
	fmt.Fprintf(&b, "Start:        %s\n", a.formatTime(state.Bounds.Start))
	fmt.Fprintf(&b, "End:          %s\n", a.formatTime(state.Bounds.End))
	fmt.Fprintf(&b, "Start offset: %s\n", state.StartOffset)
	fmt.Fprintf(&b, "End offset:   %s\n", state.EndOffset)
	if state.ClockKey != "" {
		fmt.Fprintf(&b, "Clock:        %s\n", state.ClockKey)
	}
	return b.String()
}
