package cli

import (
	"context"
	"fmt"

	"time-conductor/internal/api"
)

// ViewsCommand handles the views command
type ViewsCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewViewsCommand creates a new views command handler
func NewViewsCommand(app *App) *ViewsCommand {
	return &ViewsCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the views command
func (c *ViewsCommand) Execute(ctx context.Context, args []string) error {
	views, err := c.api.ListViews(ctx)
	if err != nil {
		return c.errorHandler.Handle("list views", err)
	}

	if len(views) == 0 {
		fmt.Println("No saved views")
		return nil
	}

	for _, view := range views {
		fmt.Printf("%-20s %-10s %s .. %s\n",
			view.Name,
			view.State.Mode,
			c.app.formatTime(view.State.Bounds.Start),
			c.app.formatTime(view.State.Bounds.End),
		)
	}
	return nil
}
