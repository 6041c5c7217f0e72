package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trypinnacle/pinnacle-go/internal/constants"
)

func TestUsageError(t *testing.T) {
	t.Parallel()

	app, err := New()
	require.NoError(t, err)

	app.cmd.SilenceUsage = true
	assert.False(t, app.UsageError())

	app.cmd.SilenceUsage = false
	assert.True(t, app.UsageError())
}

func TestRootCmd(t *testing.T) {
	t.Parallel()

	app, err := New()
	require.NoError(t, err)

	cmd := app.RootCmd()
	require.NotNil(t, cmd, "Returned root cmd should not be nil")
	assert.Equal(t, constants.CmdName, cmd.Name())
}

func TestNewClientWithoutKey(t *testing.T) {
	app, err := New()
	require.NoError(t, err)
	t.Setenv("PINNACLE_API_KEY", "")
	app.config.ConfigDir = t.TempDir()

	_, err = app.newClient()
	require.Error(t, err, "newClient should fail without any API key")
	assert.Contains(t, err.Error(), "auth set-key", "The error should tell how to save a key")
}

func TestNewClientPrefersEnvironment(t *testing.T) {
	app, err := New()
	require.NoError(t, err)
	t.Setenv("PINNACLE_API_KEY", "pk_env")
	// An unreadable credentials directory is not looked at.
	app.config.ConfigDir = "/nonexistent/pinnacle"

	c, err := app.newClient()
	require.NoError(t, err, "newClient should use the environment")
	require.NotNil(t, c)
}
