package cli

import (
	"context"
	"fmt"
	"strings"

	"time-conductor/internal/api"
	"time-conductor/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: tc delete <name>")
	}
	name := strings.Join(args, " ")

	if err := c.api.DeleteView(ctx, name); err != nil {
		return c.errorHandler.Handle("delete view", err)
	}

	fmt.Printf("Deleted view %q\n", name)
	return nil
}
