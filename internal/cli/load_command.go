package cli

import (
	"context"
	"fmt"
	"strings"

	"time-conductor/internal/api"
	"time-conductor/internal/errors"
)

// LoadCommand handles the load command
type LoadCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewLoadCommand creates a new load command handler
func NewLoadCommand(app *App) *LoadCommand {
	return &LoadCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the load command. The argument is a saved view name or a
// share token from a shared URL.
func (c *LoadCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "load", "usage: tc load <name or token>")
	}
	nameOrToken := strings.Join(args, " ")

	state, err := c.api.LoadView(ctx, nameOrToken)
	if err != nil {
		return c.errorHandler.Handle("load view", err)
	}

	fmt.Print(c.app.renderState(state))
	return nil
}
