package cli

import (
	"context"
	"fmt"

	"time-conductor/internal/api"
	"time-conductor/internal/errors"
)

// BoundsCommand handles the bounds command
type BoundsCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewBoundsCommand creates a new bounds command handler
func NewBoundsCommand(app *App) *BoundsCommand {
	return &BoundsCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the bounds command
func (c *BoundsCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "bounds", "usage: tc bounds <start> <end>")
	}

	state, err := c.api.SetFixedBounds(ctx, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("set bounds", err)
	}

	fmt.Printf("Window fixed: %s .. %s\n", c.app.formatTime(state.Bounds.Start), c.app.formatTime(state.Bounds.End))
	return nil
}
