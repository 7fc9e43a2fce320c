package cli

import (
	"testing"
	"time"

	"time-conductor/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRootCommand() (*RootCommand, *mockAPI) {
	mock := newMockAPI()
	return NewRootCommand(mock, config.NewConfig()), mock
}

func TestNewRootCommand_RegistersSubcommands(t *testing.T) {
	root, _ := setupTestRootCommand()

	expected := []string{"show", "mode", "bounds", "offset", "url", "open", "save", "load", "views", "delete", "follow"}
	registered := make(map[string]bool)
	for _, cmd := range root.cmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "expected subcommand %q to be registered", name)
	}
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	root, _ := setupTestRootCommand()

	flags := root.cmd.PersistentFlags()
	require.NoError(t, flags.Set("db-dir", "/tmp/tc-test"))
	require.NoError(t, flags.Set("clock-key", "mission"))
	require.NoError(t, flags.Set("tick-interval", "250ms"))
	require.NoError(t, flags.Set("base-url", "https://ops.example.com/view"))
	require.NoError(t, flags.Set("app-timeout", "5s"))

	require.NoError(t, root.PreRun())

	assert.Equal(t, "/tmp/tc-test", root.config.Database.Dir)
	assert.Equal(t, "mission", root.config.Clock.Key)
	assert.Equal(t, 250*time.Millisecond, root.config.Clock.TickInterval)
	assert.Equal(t, "https://ops.example.com/view", root.config.Navigation.BaseURL)
	assert.Equal(t, 5*time.Second, root.config.Application.Timeout)
	assert.Equal(t, 5*time.Second, root.getAppTimeout())
}

func TestRootCommand_ExecuteShow(t *testing.T) {
	root, _ := setupTestRootCommand()
	root.cmd.SetArgs([]string{"show"})

	err := root.cmd.Execute()
	assert.NoError(t, err)
}
