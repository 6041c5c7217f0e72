package daemon

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/trypinnacle/pinnacle-go/internal/server/shared/config"
	"gopkg.in/yaml.v3"
)

type AppConfig = appConfig

// Config returns the configuration of the app.
func (a *App) Config() AppConfig {
	return a.config
}

// SetArgs sets the arguments of the root command.
func (a *App) SetArgs(args ...string) {
	a.cmd.SetArgs(args)
}

// GenerateReceiversConfig writes conf as the receivers configuration of the daemon and returns its path.
func GenerateReceiversConfig(t *testing.T, conf config.Conf) string {
	t.Helper()

	d, err := json.Marshal(conf)
	require.NoError(t, err, "Setup: failed to marshal receivers config")
	p := filepath.Join(t.TempDir(), "receivers.json")
	require.NoError(t, os.WriteFile(p, d, 0600), "Setup: failed to write receivers config")
	return p
}

// GenerateTestConfig writes conf as the YAML configuration of the app and returns its path.
func GenerateTestConfig(t *testing.T, conf map[string]any) string {
	t.Helper()

	d, err := yaml.Marshal(conf)
	require.NoError(t, err, "Setup: failed to marshal config")
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, d, 0600), "Setup: failed to write config")
	return p
}

// RootCmd returns the root command.
func (a *App) RootCmd() *cobra.Command {
	return a.cmd
}
