package sqlite

import (
	"context"
	"database/sql"
	"time"

	"time-conductor/internal/errors"
	"time-conductor/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// stateRowID is the fixed id of the single conductor state row.
const stateRowID = 1

// Repository defines the interface for database operations
type Repository interface {
	// Conductor state
	GetState(ctx context.Context) (*State, error)
	SaveState(ctx context.Context, state *State) error

	// Saved views
	CreateView(ctx context.Context, view *View) error
	GetViewByName(ctx context.Context, name string) (*View, error)
	GetViewByToken(ctx context.Context, token string) (*View, error)
	ListViews(ctx context.Context) ([]*View, error)
	DeleteView(ctx context.Context, name string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// GetState retrieves the current conductor state. Returns a not-found
// error when no state has been committed yet.
func (r *SQLiteRepository) GetState(ctx context.Context) (*State, error) {
	query := `
	SELECT id, mode, start_time, end_time, start_delta_ms, end_delta_ms, clock_key, updated_at
	FROM conductor_state
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanState, "conductor state", "current", stateRowID)
}

// SaveState upserts the single conductor state row
func (r *SQLiteRepository) SaveState(ctx context.Context, state *State) error {
	query := `
	INSERT INTO conductor_state (id, mode, start_time, end_time, start_delta_ms, end_delta_ms, clock_key, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		mode = excluded.mode,
		start_time = excluded.start_time,
		end_time = excluded.end_time,
		start_delta_ms = excluded.start_delta_ms,
		end_delta_ms = excluded.end_delta_ms,
		clock_key = excluded.clock_key,
		updated_at = excluded.updated_at`

	state.ID = stateRowID
	state.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		state.ID,
		state.Mode,
		FormatTimeForDB(state.StartTime),
		FormatTimeForDB(state.EndTime),
		state.StartDeltaMS,
		state.EndDeltaMS,
		state.ClockKey,
		FormatTimeForDB(state.UpdatedAt),
	)
	if err != nil {
		return HandleDatabaseError("save conductor state", err)
	}
	return nil
}

// CreateView creates a new saved view
func (r *SQLiteRepository) CreateView(ctx context.Context, view *View) error {
	query := `
	INSERT INTO views (name, token, mode, start_time, end_time, start_delta_ms, end_delta_ms, clock_key, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if view.CreatedAt.IsZero() {
		view.CreatedAt = time.Now()
	}

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		view.Name,
		view.Token,
		view.Mode,
		FormatTimeForDB(view.StartTime),
		FormatTimeForDB(view.EndTime),
		view.StartDeltaMS,
		view.EndDeltaMS,
		view.ClockKey,
		FormatTimeForDB(view.CreatedAt),
	)
	if err != nil {
		return err
	}

	view.ID = id
	return nil
}

// GetViewByName retrieves a saved view by its name
func (r *SQLiteRepository) GetViewByName(ctx context.Context, name string) (*View, error) {
	query := `
	SELECT id, name, token, mode, start_time, end_time, start_delta_ms, end_delta_ms, clock_key, created_at
	FROM views
	WHERE name = ?`

	return QuerySingle(ctx, r.db, query, ScanView, "view", name, name)
}

// GetViewByToken retrieves a saved view by its share token
func (r *SQLiteRepository) GetViewByToken(ctx context.Context, token string) (*View, error) {
	query := `
	SELECT id, name, token, mode, start_time, end_time, start_delta_ms, end_delta_ms, clock_key, created_at
	FROM views
	WHERE token = ?`

	return QuerySingle(ctx, r.db, query, ScanView, "view", token, token)
}

// ListViews retrieves all saved views ordered by name
func (r *SQLiteRepository) ListViews(ctx context.Context) ([]*View, error) {
	query := `
	SELECT id, name, token, mode, start_time, end_time, start_delta_ms, end_delta_ms, clock_key, created_at
	FROM views
	ORDER BY name ASC`

	return QueryMultiple(ctx, r.db, query, ScanViews, "views")
}

// DeleteView deletes a saved view by name
func (r *SQLiteRepository) DeleteView(ctx context.Context, name string) error {
	query := `DELETE FROM views WHERE name = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "view", name, name)
}
