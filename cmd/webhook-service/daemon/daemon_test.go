package daemon_test

import (
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trypinnacle/pinnacle-go/cmd/webhook-service/daemon"
	"github.com/trypinnacle/pinnacle-go/internal/server/shared/config"
	"github.com/trypinnacle/pinnacle-go/internal/testutils"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle"
)

const typingEvent = `{"type":"USER.TYPING","startedAt":"2025-06-01T10:00:00Z","conversation":{"id":"conv_1","from":"+14155550100","to":"agent_1"}}`

func TestFlags(t *testing.T) {
	t.Parallel()

	a, err := daemon.New()
	require.NoError(t, err, "Setup: New should not fail")
	cmd := a.RootCmd()

	tests := map[string]testutils.FlagCase{
		"verbose":        {Name: "verbose", Shorthand: "v", Persistent: true, Default: "0"},
		"json-logs":      {Name: "json-logs", Persistent: true, Default: "false"},
		"config":         {Name: "config", Persistent: true, Filename: true},
		"daemon-config":  {Name: "daemon-config", Filename: true, Default: "/etc/pinnacle/receivers.json"},
		"spool-dir":      {Name: "spool-dir", Dirname: true, Default: "/var/lib/pinnacle/spool"},
		"listen-port":    {Name: "listen-port", Default: "8080"},
		"metrics-port":   {Name: "metrics-port", Default: "2112"},
		"read-timeout":   {Name: "read-timeout", Default: "5s"},
		"max-body-bytes": {Name: "max-body-bytes", Default: "1048576"},
	}

	for name, fc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			testutils.AssertFlag(t, cmd, fc)
		})
	}
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args []string

		wantUsageErr bool
	}{
		"Unknown flag":        {args: []string{"--unknown"}, wantUsageErr: true},
		"Unexpected argument": {args: []string{"extra"}, wantUsageErr: true},
		"Bad flag value":      {args: []string{"--listen-port", "http"}, wantUsageErr: true},

		"Invalid configuration file": {args: []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}},
		"Missing receivers config":   {args: []string{"--daemon-config", filepath.Join(t.TempDir(), "missing.json")}},
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

func TestConfigFile(t *testing.T) {
	t.Parallel()

	a, err := daemon.New()
	require.NoError(t, err, "Setup: New should not fail")
	conf := daemon.GenerateTestConfig(t, map[string]any{
		"verbosity": 1,
		"daemon":    map[string]any{"maxbodybytes": 4096, "requesttimeout": "7s"},
	})
	a.SetArgs("version", "--config", conf)

	require.NoError(t, a.Run(), "Run should not fail")
	got := a.Config()
	assert.Equal(t, 1, got.Verbosity, "Verbosity should be read from the file")
	assert.Equal(t, 4096, got.Daemon.MaxBodyBytes, "Daemon settings should be read from the file")
	assert.Equal(t, 7*time.Second, got.Daemon.RequestTimeout, "Durations should be decoded")
	assert.Equal(t, 10*time.Second, got.Daemon.WriteTimeout, "Flag defaults should be kept")
}

func TestRunAndQuit(t *testing.T) {
	t.Parallel()

	spool := t.TempDir()
	receivers := daemon.GenerateReceiversConfig(t, config.Conf{
		AllowList: []string{"main"},
		Secrets:   map[string]string{"main": "s3cret"},
	})

	a, err := daemon.New()
	require.NoError(t, err, "Setup: New should not fail")
	a.SetArgs("--daemon-config", receivers, "--spool-dir", spool,
		"--listen-host", "localhost", "--listen-port", "0", "--metrics-host", "localhost", "--metrics-port", "0")

	runErr := make(chan error, 1)
	go func() {
		defer close(runErr)
		runErr <- a.Run()
	}()

	var addr string
	require.Eventually(t, func() bool {
		addr = a.Addr()
		return addr != ""
	}, 5*time.Second, 20*time.Millisecond, "Daemon should start listening")

	req, err := http.NewRequest(http.MethodPost, "http://"+addr+"/webhooks/main", strings.NewReader(typingEvent))
	require.NoError(t, err, "Setup: failed to create request")
	req.Header.Set(pinnacle.SigningSecretHeader, "s3cret")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err, "Delivery should reach the daemon")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "Delivery should be accepted")

	a.Quit()
	select {
	case err := <-runErr:
		require.NoError(t, err, "Run should not fail after Quit")
	case <-time.After(5 * time.Second):
		require.Fail(t, "Run should have returned after Quit")
	}

	files, err := testutils.GetDirContents(t, spool, 2)
	require.NoError(t, err, "Failed to read spool")
	require.Len(t, files, 1, "The delivery should be spooled")
	for _, content := range files {
		assert.Equal(t, typingEvent, content)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	a, err := daemon.New()
	require.NoError(t, err, "Setup: New should not fail")
	cmd := a.RootCmd()
	out := &strings.Builder{}
	cmd.SetOut(out)
	a.SetArgs("version")

	require.NoError(t, a.Run(), "version should not fail")
	assert.Contains(t, out.String(), "pinnacle-webhook-service\t", "version should print the command name")
}
