package cli

import (
	"context"
	"fmt"

	"time-conductor/internal/api"
	"time-conductor/internal/errors"
)

// OpenCommand handles the open command
type OpenCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewOpenCommand creates a new open command handler
func NewOpenCommand(app *App) *OpenCommand {
	return &OpenCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the open command. The argument is a shared URL; its
// navigation parameters become the current window.
func (c *OpenCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "open", "usage: tc open <url>")
	}

	state, err := c.api.OpenURL(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("open shared URL", err)
	}

	fmt.Print(c.app.renderState(state))
	return nil
}
