package cli

import (
	"context"
	"fmt"

	"time-conductor/internal/api"
)

// URLCommand handles the url command
type URLCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewURLCommand creates a new url command handler
func NewURLCommand(app *App) *URLCommand {
	return &URLCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the url command
func (c *URLCommand) Execute(ctx context.Context, args []string) error {
	url, err := c.api.ShareURL(ctx)
	if err != nil {
		return c.errorHandler.Handle("build share URL", err)
	}

	fmt.Println(url)
	return nil
}
