package credentials_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trypinnacle/pinnacle-go/internal/credentials"
	"github.com/trypinnacle/pinnacle-go/internal/testutils"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
		noFile  bool

		want         credentials.Credentials
		wantNotFound bool
		wantErr      bool
		wantWarns    uint
	}{
		"Key only":         {content: `api_key = "pk_live_123456789"`, want: credentials.Credentials{APIKey: "pk_live_123456789"}},
		"Key and base URL": {content: "api_key = \"k\"\nbase_url = \"http://localhost:8080\"", want: credentials.Credentials{APIKey: "k", BaseURL: "http://localhost:8080"}},
		"Warns on unknown": {content: "api_key = \"k\"\nregion = \"eu\"", want: credentials.Credentials{APIKey: "k"}, wantWarns: 1},

		"Error on missing file": {noFile: true, wantNotFound: true, wantErr: true},
		"Error on empty key":    {content: `api_key = "  "`, wantErr: true},
		"Error on invalid TOML": {content: `api_key = `, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if !tc.noFile {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.toml"), []byte(tc.content), 0600), "Setup: failed to write credentials")
			}

			l := testutils.NewMockHandler(slog.LevelInfo)
			got, err := credentials.New(slog.New(&l), dir).Load()
			if tc.wantErr {
				require.Error(t, err, "Load should return an error")
				if tc.wantNotFound {
					require.ErrorIs(t, err, credentials.ErrNotFound, "Load should report missing credentials")
				} else {
					require.NotErrorIs(t, err, credentials.ErrNotFound, "Load should not report missing credentials")
				}
				return
			}
			require.NoError(t, err, "Load should not return an error")
			assert.Equal(t, tc.want, got, "Unexpected credentials")
			assert.Equal(t, tc.wantWarns, l.GetLevels()[slog.LevelWarn], "Unexpected number of warnings")
		})
	}
}

func TestSave(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "pinnacle")
	s := credentials.New(nil, dir)

	require.Error(t, s.Save(credentials.Credentials{APIKey: " "}), "Saving an empty key should fail")
	assert.NoFileExists(t, s.Path(), "No file should be written for an empty key")

	require.NoError(t, s.Save(credentials.Credentials{APIKey: " first "}), "Save should create the file")
	require.NoError(t, s.Save(credentials.Credentials{APIKey: "second", BaseURL: "http://localhost"}), "Save should replace the file")

	got, err := s.Load()
	require.NoError(t, err, "Load should read the saved credentials")
	assert.Equal(t, credentials.Credentials{APIKey: "second", BaseURL: "http://localhost"}, got, "Unexpected credentials")

	info, err := os.Stat(s.Path())
	require.NoError(t, err, "Stat should not fail")
	assert.True(t, info.Mode().IsRegular(), "The credentials should be a regular file")
}

func TestMask(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		key  string
		want string
	}{
		"Empty":     {},
		"Short key": {key: "pk_12345", want: "********"},
		"Long key":  {key: "pk_live_abcdefgh1234", want: "pk_l************1234"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, credentials.Mask(tc.key))
		})
	}
}
