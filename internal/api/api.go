// Package api exposes the conductor operations to front ends. Each call
// loads the persisted window state, applies the operation through the
// conductor and commits the result, so the viewing window survives
// across invocations.
package api

import (
	"context"
	stderrors "errors"
	"net/url"
	"strings"
	"time"

	"time-conductor/internal/clock"
	"time-conductor/internal/conductor"
	"time-conductor/internal/config"
	"time-conductor/internal/domain"
	"time-conductor/internal/errors"
	"time-conductor/internal/navigation"
	"time-conductor/internal/repository/sqlite"
	"time-conductor/internal/validation"

	"github.com/google/uuid"
)

// API defines the interface for all conductor operations.
type API interface {
	// Window state operations
	Show(ctx context.Context) (domain.ConductorState, error)
	SetMode(ctx context.Context, mode domain.Mode) (domain.ConductorState, error)
	SetFixedBounds(ctx context.Context, startStr, endStr string) (domain.ConductorState, error)
	SetOffset(ctx context.Context, kind domain.OffsetKind, edit domain.OffsetEdit) (domain.ConductorState, error)

	// Sharing
	ShareURL(ctx context.Context) (string, error)
	OpenURL(ctx context.Context, rawURL string) (domain.ConductorState, error)

	// Saved view operations
	SaveView(ctx context.Context, name string) (*domain.View, error)
	LoadView(ctx context.Context, nameOrToken string) (domain.ConductorState, error)
	ListViews(ctx context.Context) ([]domain.View, error)
	DeleteView(ctx context.Context, name string) error

	// Live following
	Follow(ctx context.Context, fn conductor.ListenerFunc) error
}

type apiImpl struct {
	repo   sqlite.Repository
	clock  clock.Clock
	cfg    *config.Config
	mapper *domain.Mapper
}

// New creates a new API instance. The clock may be nil when no active
// clock is configured; real-time operations will then fail with a
// configuration error.
func New(repo sqlite.Repository, clk clock.Clock, cfg *config.Config) API {
	return &apiImpl{
		repo:   repo,
		clock:  clk,
		cfg:    cfg,
		mapper: domain.NewMapper(),
	}
}

// loadConductor builds a conductor from the persisted state. A missing
// state row means a fresh session and falls back to the defaults.
func (a *apiImpl) loadConductor(ctx context.Context) (*conductor.Conductor, error) {
	c := conductor.NewWithConfig(a.clock, a.cfg)

	dbState, err := a.repo.GetState(ctx)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return c, nil
		}
		return nil, err
	}

	state, err := a.mapper.State.FromDatabase(*dbState)
	if err != nil {
		return nil, err
	}
	if err := c.Restore(state); err != nil {
		return nil, err
	}
	return c, nil
}

// commit persists the conductor state.
func (a *apiImpl) commit(ctx context.Context, c *conductor.Conductor) error {
	dbState := a.mapper.State.ToDatabase(c.State())
	return a.repo.SaveState(ctx, &dbState)
}

func (a *apiImpl) Show(ctx context.Context) (domain.ConductorState, error) {
	c, err := a.loadConductor(ctx)
	if err != nil {
		return domain.ConductorState{}, err
	}
	return c.State(), nil
}

func (a *apiImpl) SetMode(ctx context.Context, mode domain.Mode) (domain.ConductorState, error) {
	c, err := a.loadConductor(ctx)
	if err != nil {
		return domain.ConductorState{}, err
	}
	if err := c.SetMode(mode); err != nil {
		return domain.ConductorState{}, err
	}
	if err := a.commit(ctx, c); err != nil {
		return domain.ConductorState{}, err
	}
	return c.State(), nil
}

func (a *apiImpl) SetFixedBounds(ctx context.Context, startStr, endStr string) (domain.ConductorState, error) {
	c, err := a.loadConductor(ctx)
	if err != nil {
		return domain.ConductorState{}, err
	}

	// Entering explicit bounds implies fixed mode.
	if err := c.SetMode(domain.ModeFixed); err != nil {
		return domain.ConductorState{}, err
	}
	if err := c.SetFixedBoundsStrings(startStr, endStr); err != nil {
		return domain.ConductorState{}, err
	}
	if err := a.commit(ctx, c); err != nil {
		return domain.ConductorState{}, err
	}
	return c.State(), nil
}

func (a *apiImpl) SetOffset(ctx context.Context, kind domain.OffsetKind, edit domain.OffsetEdit) (domain.ConductorState, error) {
	if edit.IsEmpty() {
		return domain.ConductorState{}, errors.NewInvalidInputError("offset", edit, "at least one of hours, minutes or seconds is required")
	}

	c, err := a.loadConductor(ctx)
	if err != nil {
		return domain.ConductorState{}, err
	}
	if err := c.SetOffset(kind, edit); err != nil {
		return domain.ConductorState{}, err
	}
	if err := a.commit(ctx, c); err != nil {
		return domain.ConductorState{}, err
	}
	return c.State(), nil
}

func (a *apiImpl) ShareURL(ctx context.Context) (string, error) {
	c, err := a.loadConductor(ctx)
	if err != nil {
		return "", err
	}
	return navigation.BuildURL(a.baseURL(), c.State())
}

// OpenURL restores the window from the navigation parameters of a shared
// URL. The parameters are consumed on load: real-time deltas become the
// stored offsets and the bounds are recomputed from the local clock,
// fixed bounds are committed directly.
func (a *apiImpl) OpenURL(ctx context.Context, rawURL string) (domain.ConductorState, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return domain.ConductorState{}, errors.NewInvalidInputError("url", rawURL, "must be a valid URL")
	}

	state, err := navigation.Decode(u.Query())
	if err != nil {
		return domain.ConductorState{}, err
	}

	c := conductor.NewWithConfig(a.clock, a.cfg)
	if err := c.Restore(state); err != nil {
		return domain.ConductorState{}, err
	}
	if err := a.commit(ctx, c); err != nil {
		return domain.ConductorState{}, err
	}
	return c.State(), nil
}

func (a *apiImpl) SaveView(ctx context.Context, name string) (*domain.View, error) {
	if err := validateViewName(name); err != nil {
		return nil, err
	}

	c, err := a.loadConductor(ctx)
	if err != nil {
		return nil, err
	}

	view := domain.View{
		Name:  strings.TrimSpace(name),
		Token: uuid.NewString(),
		State: c.State(),
	}
	dbView := a.mapper.View.ToDatabase(view)
	if err := a.repo.CreateView(ctx, &dbView); err != nil {
		return nil, err
	}

	saved, err := a.mapper.View.FromDatabase(dbView)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// LoadView restores a saved view into the current window. The argument
// is resolved as a view name first, then as a share token, so pasted
// tokens from shared URLs work directly.
func (a *apiImpl) LoadView(ctx context.Context, nameOrToken string) (domain.ConductorState, error) {
	if err := validateViewName(nameOrToken); err != nil {
		return domain.ConductorState{}, err
	}

	dbView, err := a.repo.GetViewByName(ctx, strings.TrimSpace(nameOrToken))
	if err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return domain.ConductorState{}, err
		}
		dbView, err = a.repo.GetViewByToken(ctx, strings.TrimSpace(nameOrToken))
		if err != nil {
			return domain.ConductorState{}, err
		}
	}

	view, err := a.mapper.View.FromDatabase(*dbView)
	if err != nil {
		return domain.ConductorState{}, err
	}

	c := conductor.NewWithConfig(a.clock, a.cfg)
	if err := c.Restore(view.State); err != nil {
		return domain.ConductorState{}, err
	}
	if err := a.commit(ctx, c); err != nil {
		return domain.ConductorState{}, err
	}
	return c.State(), nil
}

func (a *apiImpl) ListViews(ctx context.Context) ([]domain.View, error) {
	dbViews, err := a.repo.ListViews(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.View.FromDatabaseSlice(dbViews)
}

func (a *apiImpl) DeleteView(ctx context.Context, name string) error {
	if err := validateViewName(name); err != nil {
		return err
	}
	return a.repo.DeleteView(ctx, strings.TrimSpace(name))
}

// Follow drives the window from clock ticks until the context ends. The
// window is switched to real-time mode, the listener receives every
// committed bounds change, and the final window is persisted on exit.
func (a *apiImpl) Follow(ctx context.Context, fn conductor.ListenerFunc) error {
	if a.clock == nil {
		return errors.NewConfigurationError("active clock", "following requires an active clock")
	}

	c, err := a.loadConductor(ctx)
	if err != nil {
		return err
	}
	if err := c.SetMode(domain.ModeRealTime); err != nil {
		return err
	}
	if err := a.commit(ctx, c); err != nil {
		return err
	}

	unsubscribe := c.Subscribe(fn)
	defer unsubscribe()
	fn(c.Bounds())

	ticker := clock.NewTicker(a.clock, a.tickInterval())
	runErr := ticker.Run(ctx, c.Tick)

	if err := a.commit(context.WithoutCancel(ctx), c); err != nil {
		return err
	}
	if stderrors.Is(runErr, context.Canceled) || stderrors.Is(runErr, context.DeadlineExceeded) {
		return nil
	}
	return runErr
}

func (a *apiImpl) baseURL() string {
	if a.cfg != nil && a.cfg.Navigation.BaseURL != "" {
		return a.cfg.Navigation.BaseURL
	}
	return config.NewConfig().Navigation.BaseURL
}

func (a *apiImpl) tickInterval() time.Duration {
	if a.cfg != nil && a.cfg.Clock.TickInterval > 0 {
		return a.cfg.Clock.TickInterval
	}
	return config.NewConfig().Clock.TickInterval
}

func validateViewName(name string) error {
	validationError := validation.NewValidationError()
	if strings.TrimSpace(name) == "" {
		validationError.AddRequiredError("name")
		return validationError
	}
	return nil
}
