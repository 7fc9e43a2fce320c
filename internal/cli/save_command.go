package cli

import (
	"context"
	"fmt"
	"strings"

	"time-conductor/internal/api"
	"time-conductor/internal/errors"
)

// SaveCommand handles the save command
type SaveCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewSaveCommand creates a new save command handler
func NewSaveCommand(app *App) *SaveCommand {
	return &SaveCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the save command
func (c *SaveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "save", "usage: tc save <name>")
	}
	name := strings.Join(args, " ")

	view, err := c.api.SaveView(ctx, name)
	if err != nil {
		return c.errorHandler.Handle("save view", err)
	}

	fmt.Printf("Saved view %q (token %s)\n", view.Name, view.Token)
	return nil
}
