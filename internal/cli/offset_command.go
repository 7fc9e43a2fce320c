package cli

import (
	"context"
	"fmt"

	"time-conductor/internal/api"
	"time-conductor/internal/domain"
	"time-conductor/internal/errors"
)

// OffsetCommand handles the offset command
type OffsetCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewOffsetCommand creates a new offset command handler
func NewOffsetCommand(app *App) *OffsetCommand {
	return &OffsetCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// OffsetFlags carries the offset component flags. Nil components are
// left untouched by the edit.
type OffsetFlags struct {
	Hours   *int
	Minutes *int
	Seconds *int
}

// Execute runs the offset command
func (c *OffsetCommand) Execute(ctx context.Context, args []string, flags OffsetFlags) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "offset", "usage: tc offset <start|end> [--hours N] [--minutes N] [--seconds N]")
	}

	kind, err := domain.ParseOffsetKind(args[0])
	if err != nil {
		return c.errorHandler.Handle("set offset", err)
	}

	edit := domain.OffsetEdit{
		Hours:   flags.Hours,
		Minutes: flags.Minutes,
		Seconds: flags.Seconds,
	}
	state, err := c.api.SetOffset(ctx, kind, edit)
	if err != nil {
		return c.errorHandler.Handle("set offset", err)
	}

	fmt.Printf("Start offset: %s\n", state.StartOffset)
	fmt.Printf("End offset:   %s\n", state.EndOffset)
	return nil
}
