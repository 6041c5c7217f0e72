package daemon_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trypinnacle/pinnacle-go/cmd/ingest-service/daemon"
	"github.com/trypinnacle/pinnacle-go/internal/server/shared/config"
	"github.com/trypinnacle/pinnacle-go/internal/testutils"
)

// unreachableDB points to a port nothing listens on.
var unreachableDB = []string{"--db-host", "127.0.0.1", "--db-port", "1", "--db-user", "ingest", "--db-name", "events"}

func TestFlags(t *testing.T) {
	t.Parallel()

	a, err := daemon.New()
	require.NoError(t, err, "Setup: New should not fail")
	cmd := a.RootCmd()

	tests := map[string]testutils.FlagCase{
		"verbose":       {Name: "verbose", Shorthand: "v", Persistent: true, Default: "0"},
		"json-logs":     {Name: "json-logs", Persistent: true, Default: "false"},
		"config":        {Name: "config", Persistent: true, Filename: true},
		"db-host":       {Name: "db-host", Persistent: true},
		"db-port":       {Name: "db-port", Shorthand: "p", Persistent: true, Default: "5432"},
		"db-user":       {Name: "db-user", Shorthand: "u", Persistent: true},
		"db-password":   {Name: "db-password", Shorthand: "P", Persistent: true},
		"db-name":       {Name: "db-name", Shorthand: "n", Persistent: true},
		"db-sslmode":    {Name: "db-sslmode", Shorthand: "s", Persistent: true},
		"daemon-config": {Name: "daemon-config", Shorthand: "c", Filename: true, Default: "/etc/pinnacle/receivers.json"},
		"spool-dir":     {Name: "spool-dir", Dirname: true, Default: "/var/lib/pinnacle/spool"},
		"poll-interval": {Name: "poll-interval", Default: "2s"},
		"metrics-port":  {Name: "metrics-port", Default: "2113"},
	}

	for name, fc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			testutils.AssertFlag(t, cmd, fc)
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	notADir := filepath.Join(dir, "000001_fake.up.sql")
	require.NoError(t, os.WriteFile(notADir, []byte(""), 0600), "Setup: failed to write fake migration")
	receivers := daemon.GenerateReceiversConfig(t, config.Conf{AllowList: []string{"main"}})

	tests := map[string]struct {
		args []string

		wantUsageErr bool
	}{
		"Unknown flag":                       {args: []string{"--unknown"}, wantUsageErr: true},
		"Unexpected argument":                {args: []string{"extra"}, wantUsageErr: true},
		"Bad flag value":                     {args: []string{"--poll-interval", "often"}, wantUsageErr: true},
		"Migrate with too many arguments":    {args: []string{"migrate", dir, dir}, wantUsageErr: true},
		"Migrate with a missing directory":   {args: []string{"migrate", filepath.Join(dir, "missing")}, wantUsageErr: true},
		"Migrate with a file instead of dir": {args: []string{"migrate", notADir}, wantUsageErr: true},

		"Missing receivers config":        {args: []string{"--daemon-config", filepath.Join(dir, "missing.json")}},
		"Unreachable database":            {args: append([]string{"--daemon-config", receivers}, unreachableDB...)},
		"Migrate on unreachable database": {args: append([]string{"migrate"}, unreachableDB...)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a, err := daemon.New()
			require.NoError(t, err, "Setup: New should not fail")
			a.SetArgs(tc.args...)

			require.Error(t, a.Run(), "Run should fail")
			assert.Equal(t, tc.wantUsageErr, a.UsageError(), "Unexpected usage error state")
		})
	}
}

func TestQuitWithoutDaemon(t *testing.T) {
	t.Parallel()

	a, err := daemon.New()
	require.NoError(t, err, "Setup: New should not fail")
	a.SetArgs("--daemon-config", filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, a.Run(), "Run should fail without receivers configuration")

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Quit()
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "Quit should return once Run failed")
	}
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	a, err := daemon.New()
	require.NoError(t, err, "Setup: New should not fail")
	conf := daemon.GenerateTestConfig(t, map[string]any{
		"verbosity":    2,
		"spooldir":     "/srv/spool",
		"pollinterval": "7s",
		"dbconfig":     map[string]any{"host": "db.internal", "dbname": "events"},
	})
	a.SetArgs("version", "--config", conf)

	require.NoError(t, a.Run(), "Run should not fail")
	got := a.Config()
	assert.Equal(t, 2, got.Verbosity, "Verbosity should be read from the file")
	assert.Equal(t, "/srv/spool", got.SpoolDir, "Spool directory should be read from the file")
	assert.Equal(t, 7*time.Second, got.PollInterval, "Durations should be decoded")
	assert.Equal(t, "db.internal", got.DBconfig.Host, "Database settings should be read from the file")
	assert.Equal(t, "events", got.DBconfig.DBName, "Database settings should be read from the file")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	a, err := daemon.New()
	require.NoError(t, err, "Setup: New should not fail")
	out := &strings.Builder{}
	a.RootCmd().SetOut(out)
	a.SetArgs("version")

	require.NoError(t, a.Run(), "version should not fail")
	assert.Contains(t, out.String(), "pinnacle-ingest-service\t", "version should print the command name")
}
