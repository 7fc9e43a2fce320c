package cli

import (
	"context"
	"testing"

	"time-conductor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func TestOffsetCommand_Execute(t *testing.T) {
	app, mock := setupTestAppWithMockAPI()
	cmd := NewOffsetCommand(app)
	ctx := context.Background()

	t.Run("sets start offset components", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"start"}, OffsetFlags{Minutes: intPtr(30), Seconds: intPtr(23)})
		require.NoError(t, err)
		assert.Equal(t, domain.Offset{Minutes: 30, Seconds: 23}, mock.state.StartOffset)
	})

	t.Run("merges a partial edit", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"start"}, OffsetFlags{Hours: intPtr(1)})
		require.NoError(t, err)
		assert.Equal(t, domain.Offset{Hours: 1, Minutes: 30, Seconds: 23}, mock.state.StartOffset)
	})

	t.Run("sets end offset", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"end"}, OffsetFlags{Seconds: intPtr(1)})
		require.NoError(t, err)
		assert.Equal(t, domain.Offset{Seconds: 1}, mock.state.EndOffset)
	})

	t.Run("rejects unknown edge", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"middle"}, OffsetFlags{Seconds: intPtr(1)})
		assert.Error(t, err)
	})

	t.Run("rejects empty edit", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"start"}, OffsetFlags{})
		assert.Error(t, err)
	})

	t.Run("rejects missing argument", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{}, OffsetFlags{Seconds: intPtr(1)})
		assert.Error(t, err)
	})
}
