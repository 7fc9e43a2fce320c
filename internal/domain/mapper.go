package domain

import (
	"time"

	"time-conductor/internal/repository/sqlite"
)

// StateMapper handles conversion between the domain conductor state and
// its database row. Offsets cross the boundary as delta milliseconds, the
// same representation used in shareable navigation state.
type StateMapper struct{}

// NewStateMapper creates a new StateMapper instance.
func NewStateMapper() *StateMapper {
	return &StateMapper{}
}

// ToDatabase converts a domain ConductorState to a database State.
func (m *StateMapper) ToDatabase(state ConductorState) sqlite.State {
	return sqlite.State{
		Mode:         state.Mode.String(),
		StartTime:    state.Bounds.Start,
		EndTime:      state.Bounds.End,
		StartDeltaMS: state.StartOffset.Duration().Milliseconds(),
		EndDeltaMS:   state.EndOffset.Duration().Milliseconds(),
		ClockKey:     state.ClockKey,
	}
}

// FromDatabase converts a database State to a domain ConductorState.
func (m *StateMapper) FromDatabase(dbState sqlite.State) (ConductorState, error) {
	mode, err := ParseMode(dbState.Mode)
	if err != nil {
		return ConductorState{}, err
	}
	return ConductorState{
		Mode:        mode,
		Bounds:      NewBounds(dbState.StartTime, dbState.EndTime),
		StartOffset: OffsetFromDuration(time.Duration(dbState.StartDeltaMS) * time.Millisecond),
		EndOffset:   OffsetFromDuration(time.Duration(dbState.EndDeltaMS) * time.Millisecond),
		ClockKey:    dbState.ClockKey,
	}, nil
}

// ViewMapper handles conversion between domain and database View models.
type ViewMapper struct {
	state *StateMapper
}

// NewViewMapper creates a new ViewMapper instance.
func NewViewMapper() *ViewMapper {
	return &ViewMapper{state: NewStateMapper()}
}

// ToDatabase converts a domain View to a database View.
func (m *ViewMapper) ToDatabase(view View) sqlite.View {
	dbState := m.state.ToDatabase(view.State)
	return sqlite.View{
		ID:           view.ID,
		Name:         view.Name,
		Token:        view.Token,
		Mode:         dbState.Mode,
		StartTime:    dbState.StartTime,
		EndTime:      dbState.EndTime,
		StartDeltaMS: dbState.StartDeltaMS,
		EndDeltaMS:   dbState.EndDeltaMS,
		ClockKey:     dbState.ClockKey,
		CreatedAt:    view.CreatedAt,
	}
}

// FromDatabase converts a database View to a domain View.
func (m *ViewMapper) FromDatabase(dbView sqlite.View) (View, error) {
	state, err := m.state.FromDatabase(sqlite.State{
		Mode:         dbView.Mode,
		StartTime:    dbView.StartTime,
		EndTime:      dbView.EndTime,
		StartDeltaMS: dbView.StartDeltaMS,
		EndDeltaMS:   dbView.EndDeltaMS,
		ClockKey:     dbView.ClockKey,
	})
	if err != nil {
		return View{}, err
	}
	return View{
		ID:        dbView.ID,
		Name:      dbView.Name,
		Token:     dbView.Token,
		State:     state,
		CreatedAt: dbView.CreatedAt,
	}, nil
}

// FromDatabaseSlice converts a slice of database Views to domain Views.
func (m *ViewMapper) FromDatabaseSlice(dbViews []*sqlite.View) ([]View, error) {
	views := make([]View, 0, len(dbViews))
	for _, dbView := range dbViews {
		view, err := m.FromDatabase(*dbView)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	State *StateMapper
	View  *ViewMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		State: NewStateMapper(),
		View:  NewViewMapper(),
	}
}
