package cli

import (
	"context"
	"fmt"

	"time-conductor/internal/api"
	"time-conductor/internal/domain"
)

// FollowCommand handles the follow command
type FollowCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewFollowCommand creates a new follow command handler
func NewFollowCommand(app *App) *FollowCommand {
	return &FollowCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the follow command. The window switches to real-time mode
// and each recomputed window is printed until the context ends.
func (c *FollowCommand) Execute(ctx context.Context, args []string) error {
	err := c.api.Follow(ctx, func(bounds domain.Bounds) {
		fmt.Printf("%s .. %s\n", c.app.formatTime(bounds.Start), c.app.formatTime(bounds.End))
	})
	if err != nil {
		return c.errorHandler.Handle("follow window", err)
	}
	return nil
}
