package cli

import (
	"context"
	"fmt"

	"time-conductor/internal/api"
)

// ShowCommand handles the show command
type ShowCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	state, err := c.api.Show(ctx)
	if err != nil {
		return c.errorHandler.Handle("show window", err)
	}

	fmt.Print(c.app.renderState(state))
	return nil
}
