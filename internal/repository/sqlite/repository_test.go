package sqlite

import (
	"context"
	"testing"
	"time"

	"time-conductor/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testState() *State {
	return &State{
		Mode:         "real-time",
		StartTime:    time.Date(2024, 6, 1, 11, 29, 37, 0, time.UTC),
		EndTime:      time.Date(2024, 6, 1, 12, 0, 1, 0, time.UTC),
		StartDeltaMS: 1823000,
		EndDeltaMS:   1000,
		ClockKey:     "local",
	}
}

func testView(name, token string) *View {
	return &View{
		Name:      name,
		Token:     token,
		Mode:      "fixed",
		StartTime: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC),
		ClockKey:  "local",
	}
}

func TestRepository_GetStateWhenEmpty(t *testing.T) {
	repo := setupTestRepository(t)

	_, err := repo.GetState(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestRepository_SaveAndGetState(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	state := testState()
	require.NoError(t, repo.SaveState(ctx, state))

	got, err := repo.GetState(ctx)
	require.NoError(t, err)

	assert.Equal(t, "real-time", got.Mode)
	assert.True(t, state.StartTime.Equal(got.StartTime))
	assert.True(t, state.EndTime.Equal(got.EndTime))
	assert.Equal(t, int64(1823000), got.StartDeltaMS)
	assert.Equal(t, int64(1000), got.EndDeltaMS)
	assert.Equal(t, "local", got.ClockKey)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestRepository_SaveStateUpserts(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveState(ctx, testState()))

	updated := testState()
	updated.Mode = "fixed"
	updated.StartDeltaMS = 0
	updated.EndDeltaMS = 0
	require.NoError(t, repo.SaveState(ctx, updated))

	got, err := repo.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fixed", got.Mode)
	assert.Equal(t, int64(1), got.ID, "state must stay a single row")
}

func TestRepository_CreateAndGetView(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	view := testView("night-pass", "token-1")
	require.NoError(t, repo.CreateView(ctx, view))
	assert.NotZero(t, view.ID)

	byName, err := repo.GetViewByName(ctx, "night-pass")
	require.NoError(t, err)
	assert.Equal(t, view.ID, byName.ID)
	assert.Equal(t, "token-1", byName.Token)

	byToken, err := repo.GetViewByToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "night-pass", byToken.Name)
}

func TestRepository_CreateViewRejectsDuplicateName(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateView(ctx, testView("pass", "token-1")))

	err := repo.CreateView(ctx, testView("pass", "token-2"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
}

func TestRepository_ListViews(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateView(ctx, testView("beta", "token-b")))
	require.NoError(t, repo.CreateView(ctx, testView("alpha", "token-a")))

	views, err := repo.ListViews(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "alpha", views[0].Name, "views should be ordered by name")
	assert.Equal(t, "beta", views[1].Name)
}

func TestRepository_DeleteView(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateView(ctx, testView("pass", "token-1")))
	require.NoError(t, repo.DeleteView(ctx, "pass"))

	_, err := repo.GetViewByName(ctx, "pass")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = repo.DeleteView(ctx, "pass")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestFormatters_RoundTrip(t *testing.T) {
	instant := time.Date(2024, 6, 1, 12, 30, 0, 250000000, time.UTC)

	formatted := FormatTimeForDB(instant)
	parsed, err := ParseTimeFromDB(formatted)
	require.NoError(t, err)
	assert.True(t, instant.Equal(parsed))
}
