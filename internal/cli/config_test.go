package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trypinnacle/pinnacle-go/internal/cli"
	"github.com/trypinnacle/pinnacle-go/internal/testutils"
)

type testConfig struct {
	Verbosity int
	Daemon    struct {
		SpoolDir   string
		ListenPort int
	}
}

func TestInitViperConfig(t *testing.T) {
	tests := map[string]struct {
		file string
		env  map[string]string

		want    testConfig
		wantErr bool
	}{
		"No configuration file": {},
		"Reads YAML file": {
			file: "verbosity: 2\ndaemon:\n  spooldir: /var/spool\n  listenport: 9000\n",
			want: testConfig{Verbosity: 2, Daemon: struct {
				SpoolDir   string
				ListenPort int
			}{SpoolDir: "/var/spool", ListenPort: 9000}},
		},
		"Environment overrides nested keys": {
			file: "daemon:\n  listenport: 9000\n",
			env:  map[string]string{"PINNACLE_TEST_DAEMON_LISTENPORT": "9100", "PINNACLE_TEST_VERBOSITY": "1"},
			want: testConfig{Verbosity: 1, Daemon: struct {
				SpoolDir   string
				ListenPort int
			}{ListenPort: 9100}},
		},

		"Error on invalid file": {file: "daemon: [", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cmd := &cobra.Command{Use: "pinnacle-test"}
			cli.InstallConfigFlag(cmd)
			var args []string
			if tc.file != "" {
				p := filepath.Join(t.TempDir(), "conf.yaml")
				require.NoError(t, os.WriteFile(p, []byte(tc.file), 0600), "Setup: failed to write config file")
				args = []string{"--config", p}
			} else {
				t.Chdir(t.TempDir())
			}
			require.NoError(t, cmd.ParseFlags(args), "Setup: failed to parse flags")

			vip := viper.New()
			err := cli.InitViperConfig("pinnacle-test", cmd, vip)
			if tc.wantErr {
				require.Error(t, err, "InitViperConfig should fail")
				return
			}
			require.NoError(t, err, "InitViperConfig should not fail")

			var got testConfig
			require.NoError(t, vip.Unmarshal(&got), "Unmarshal should not fail")
			assert.Equal(t, tc.want, got, "Unexpected configuration")
		})
	}
}

func TestInstallConfigFlag(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "pinnacle-test"}
	cli.InstallConfigFlag(cmd)

	testutils.AssertFlag(t, cmd, testutils.FlagCase{Name: "config", Persistent: true, Filename: true})
	assert.Equal(t, "PINNACLE_WEBHOOK_SERVICE", cli.EnvPrefix("pinnacle-webhook-service"))
}
