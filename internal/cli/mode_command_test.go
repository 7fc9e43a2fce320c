package cli

import (
	"context"
	"testing"

	"time-conductor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeCommand_Execute(t *testing.T) {
	app, mock := setupTestAppWithMockAPI()
	cmd := NewModeCommand(app)
	ctx := context.Background()

	t.Run("switches to real-time", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"real-time"})
		assert.NoError(t, err)
		assert.Equal(t, domain.ModeRealTime, mock.state.Mode)
	})

	t.Run("switches back to fixed", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"fixed"})
		assert.NoError(t, err)
		assert.Equal(t, domain.ModeFixed, mock.state.Mode)
	})

	t.Run("accepts realtime spelling", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"realtime"})
		assert.NoError(t, err)
		assert.Equal(t, domain.ModeRealTime, mock.state.Mode)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"frozen"})
		assert.Error(t, err)
	})

	t.Run("shows current mode without argument", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{})
		assert.NoError(t, err)
	})

	t.Run("reports missing clock", func(t *testing.T) {
		mock.hasClock = false
		defer func() { mock.hasClock = true }()
		require.NoError(t, cmd.Execute(ctx, []string{"fixed"}))

		err := cmd.Execute(ctx, []string{"real-time"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "set mode")
	})
}
