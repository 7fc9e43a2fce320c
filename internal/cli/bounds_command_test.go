package cli

import (
	"context"
	"testing"
	"time"

	"time-conductor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsCommand_Execute(t *testing.T) {
	app, mock := setupTestAppWithMockAPI()
	cmd := NewBoundsCommand(app)
	ctx := context.Background()

	t.Run("commits a valid pair", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"2024-06-01 10:00:00.000Z", "2024-06-01 11:00:00.000Z"})
		require.NoError(t, err)

		assert.Equal(t, domain.ModeFixed, mock.state.Mode)
		assert.True(t, mock.state.Bounds.Start.Equal(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("rejects inverted pair and keeps prior bounds", func(t *testing.T) {
		prior := mock.state.Bounds

		err := cmd.Execute(ctx, []string{"2024-06-01 12:00:00.000Z", "2024-06-01 11:00:00.000Z"})
		assert.Error(t, err)
		assert.True(t, mock.state.Bounds.Equal(prior))
	})

	t.Run("rejects malformed timestamp", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"noon", "2024-06-01 11:00:00.000Z"})
		assert.Error(t, err)
	})

	t.Run("rejects wrong argument count", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"2024-06-01 10:00:00.000Z"})
		assert.Error(t, err)
	})
}
