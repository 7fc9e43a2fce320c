package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"time-conductor/internal/api"
	"time-conductor/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tc",
		Short: "A command-line controller for telemetry viewing windows",
		Long: `Time Conductor (tc) manages the time bounds of a telemetry viewing window.

FEATURES:
  • Fixed windows with explicit start and end timestamps
  • Real-time windows that follow a clock through start/end offsets
  • Offsets entered as hours, minutes and seconds (HH:MM:SS)
  • Shareable window URLs carrying relative deltas in milliseconds
  • Named saved views with share tokens
  • Fully configurable via environment variables and command-line flags

EXAMPLES:
  tc show                                        # Show the current window
  tc mode real-time                              # Follow the clock
  tc mode fixed                                  # Freeze the window
  tc bounds "2024-06-01 10:00:00.000Z" "2024-06-01 11:00:00.000Z"
  tc offset start --minutes 30 --seconds 23      # Look back 00:30:23
  tc offset end --seconds 1                      # Look ahead 00:00:01
  tc url                                         # Print a shareable URL
  tc open "https://host/view?mode=fixed&..."     # Open a shared URL
  tc save night-pass                             # Save the window as a view
  tc load night-pass                             # Restore a saved view
  tc follow                                      # Print the window as it moves

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TC_DB_DIR                              Database directory (default: ~/.tc)
    TC_DB_FILENAME                         Database filename (default: tc.db)
    TC_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    TC_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Clock Configuration:
    TC_CLOCK_KEY                           Active clock key (default: local)
    TC_CLOCK_TICK_INTERVAL                 Tick interval for follow (default: 1s)

  Display Configuration:
    TC_TIME_DISPLAY_FORMAT                 Time format (default: 2006-01-02 15:04:05.000Z07:00)

  Validation Configuration:
    TC_VALIDATION_MAX_WINDOW_SPAN          Max window span (default: 87600h)

  Navigation Configuration:
    TC_NAV_BASE_URL                        Base URL for shared windows

  Application Configuration:
    TC_APP_TIMEOUT                         Application timeout (default: 60s)
    TC_APP_VERBOSE                         Enable verbose output (default: false)

TIMESTAMP FORMAT:
  Bounds are entered as "2006-01-02 15:04:05.000Z07:00" or RFC 3339.

GETTING HELP:
  tc [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TC_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TC_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TC_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TC_DB_WRITE_TIMEOUT)")

	// Clock configuration
	flags.String("clock-key", "", "Active clock key (overrides TC_CLOCK_KEY)")
	flags.Duration("tick-interval", 0, "Tick interval for follow (overrides TC_CLOCK_TICK_INTERVAL)")

	// Time configuration
	flags.String("time-format", "", "Time display format (overrides TC_TIME_DISPLAY_FORMAT)")

	// Validation configuration
	flags.Duration("max-window-span", 0, "Maximum window span (overrides TC_VALIDATION_MAX_WINDOW_SPAN)")

	// Navigation configuration
	flags.String("base-url", "", "Base URL for shared windows (overrides TC_NAV_BASE_URL)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TC_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TC_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Show command
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current viewing window",
		Long:  "Display the current mode, bounds, offsets and clock of the viewing window.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			showHandler := NewShowCommand(NewAppWithConfig(r.api, r.config))
			return showHandler.Execute(ctx, args)
		},
	}

	// Mode command
	modeCmd := &cobra.Command{
		Use:   "mode [fixed|real-time]",
		Short: "Show or switch the window mode",
		Long: `Show the current mode, or switch the viewing window between fixed and
real-time mode.

In real-time mode the window follows the active clock: the start offset
looks backward from now and the end offset looks ahead. Switching to
fixed mode freezes the window at its last computed bounds. Offsets are
kept across mode switches.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			modeHandler := NewModeCommand(NewAppWithConfig(r.api, r.config))
			return modeHandler.Execute(ctx, args)
		},
	}

	// Bounds command
	boundsCmd := &cobra.Command{
		Use:   "bounds <start> <end>",
		Short: "Set fixed window bounds",
		Long: `Set explicit start and end timestamps for the viewing window.
The window switches to fixed mode. Start must not be after end; a
rejected pair leaves the committed window untouched.

Example:
  tc bounds "2024-06-01 10:00:00.000Z" "2024-06-01 11:00:00.000Z"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			boundsHandler := NewBoundsCommand(NewAppWithConfig(r.api, r.config))
			return boundsHandler.Execute(ctx, args)
		},
	}

	// Offset command
	offsetCmd := &cobra.Command{
		Use:   "offset <start|end>",
		Short: "Set the start or end offset",
		Long: `Set the offset for one edge of a real-time window. Components not
given on the command line keep their current values, so the offset can
be edited one field at a time.

Examples:
  tc offset start --minutes 30 --seconds 23   # 00:30:23 lookback
  tc offset start --hours 1                   # becomes 01:30:23
  tc offset end --seconds 1                   # 00:00:01 lookahead`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			var flags OffsetFlags
			if cmd.Flags().Changed("hours") {
				v, _ := cmd.Flags().GetInt("hours")
				flags.Hours = &v
			}
			if cmd.Flags().Changed("minutes") {
				v, _ := cmd.Flags().GetInt("minutes")
				flags.Minutes = &v
			}
			if cmd.Flags().Changed("seconds") {
				v, _ := cmd.Flags().GetInt("seconds")
				flags.Seconds = &v
			}

			offsetHandler := NewOffsetCommand(NewAppWithConfig(r.api, r.config))
			return offsetHandler.Execute(ctx, args, flags)
		},
	}
	offsetCmd.Flags().Int("hours", 0, "Offset hours (0-99)")
	offsetCmd.Flags().Int("minutes", 0, "Offset minutes (0-59)")
	offsetCmd.Flags().Int("seconds", 0, "Offset seconds (0-59)")

	// URL command
	urlCmd := &cobra.Command{
		Use:   "url",
		Short: "Print a shareable URL for the current window",
		Long: `Print a URL that reproduces the current viewing window. Real-time
windows are encoded as startDelta/endDelta milliseconds so the shared
window keeps following the clock; fixed windows are encoded as absolute
epoch milliseconds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			urlHandler := NewURLCommand(NewAppWithConfig(r.api, r.config))
			return urlHandler.Execute(ctx, args)
		},
	}

	// Open command
	openCmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Open a shared window URL",
		Long: `Restore the viewing window from a shared URL. Real-time deltas become
the window offsets and the bounds are recomputed from the local clock;
fixed bounds are restored as given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			openHandler := NewOpenCommand(NewAppWithConfig(r.api, r.config))
			return openHandler.Execute(ctx, args)
		},
	}

	// Save command
	saveCmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the current window as a named view",
		Long:  "Save the current viewing window under a name, with a share token for URLs.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			saveHandler := NewSaveCommand(NewAppWithConfig(r.api, r.config))
			return saveHandler.Execute(ctx, args)
		},
	}

	// Load command
	loadCmd := &cobra.Command{
		Use:   "load <name or token>",
		Short: "Restore a saved view",
		Long:  "Restore a saved view into the current window, by name or by share token.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			loadHandler := NewLoadCommand(NewAppWithConfig(r.api, r.config))
			return loadHandler.Execute(ctx, args)
		},
	}

	// Views command
	viewsCmd := &cobra.Command{
		Use:   "views",
		Short: "List saved views",
		Long:  "List all saved views with their modes and bounds, ordered by name.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			viewsHandler := NewViewsCommand(NewAppWithConfig(r.api, r.config))
			return viewsHandler.Execute(ctx, args)
		},
	}

	// Delete command
	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved view",
		Long:  "Delete a saved view by name. This operation cannot be undone.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			deleteHandler := NewDeleteCommand(NewAppWithConfig(r.api, r.config))
			return deleteHandler.Execute(ctx, args)
		},
	}

	// Follow command
	followCmd := &cobra.Command{
		Use:   "follow",
		Short: "Follow the window in real time",
		Long: `Switch the window to real-time mode and print the bounds on every
change until interrupted with Ctrl-C. The final window is persisted on
exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Runs until interrupted, so no application timeout here.
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			followHandler := NewFollowCommand(NewAppWithConfig(r.api, r.config))
			return followHandler.Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		showCmd,
		modeCmd,
		boundsCmd,
		offsetCmd,
		urlCmd,
		openCmd,
		saveCmd,
		loadCmd,
		viewsCmd,
		deleteCmd,
		followCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Database configuration
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}

	// Clock configuration
	if clockKey, _ := flags.GetString("clock-key"); clockKey != "" {
		r.config.Clock.Key = clockKey
	}
	if tickInterval, _ := flags.GetDuration("tick-interval"); tickInterval > 0 {
		r.config.Clock.TickInterval = tickInterval
	}

	// Time configuration
	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.config.Time.DisplayFormat = timeFormat
	}

	// Validation configuration
	if maxWindowSpan, _ := flags.GetDuration("max-window-span"); maxWindowSpan > 0 {
		r.config.Validation.MaxWindowSpan = maxWindowSpan
	}

	// Navigation configuration
	if baseURL, _ := flags.GetString("base-url"); baseURL != "" {
		r.config.Navigation.BaseURL = baseURL
	}

	// Application configuration
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}

// PreRun sets up configuration overrides from flags before running commands
func (r *RootCommand) PreRun() error {
	return r.getConfigFromFlags()
}
