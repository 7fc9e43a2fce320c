package cli

import (
	"context"
	"fmt"

	"time-conductor/internal/api"
	"time-conductor/internal/domain"
	"time-conductor/internal/errors"
)

// ModeCommand handles the mode command
type ModeCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewModeCommand creates a new mode command handler
func NewModeCommand(app *App) *ModeCommand {
	return &ModeCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the mode command. Without an argument the current mode is
// shown; with one the window switches to it.
func (c *ModeCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		state, err := c.api.Show(ctx)
		if err != nil {
			return c.errorHandler.Handle("show mode", err)
		}
		fmt.Printf("Mode: %s\n", state.Mode)
		return nil
	}
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "mode", "usage: tc mode [fixed|real-time]")
	}

	mode, err := domain.ParseMode(args[0])
	if err != nil {
		return c.errorHandler.Handle("set mode", err)
	}

	state, err := c.api.SetMode(ctx, mode)
	if err != nil {
		return c.errorHandler.Handle("set mode", err)
	}

	fmt.Printf("Mode set to %s\n", state.Mode)
	fmt.Printf("Window: %s .. %s\n", c.app.formatTime(state.Bounds.Start), c.app.formatTime(state.Bounds.End))
	return nil
}
