package constants

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseDirs(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		dir func() (string, error)

		want string
	}{
		"Returns the directory": {dir: func() (string, error) { return "abc/def", nil }, want: "abc/def"},
		"Empty on error":        {dir: func() (string, error) { return "", errors.New("error") }},
		"Empty on error with a partial result": {
			dir: func() (string, error) { return "abc", errors.New("error") },
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, userConfigDir(tc.dir), "userConfigDir should match")
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Parallel()

	dir := func() (string, error) { return "/home/u/.config", nil }

	assert.Equal(t, filepath.Join("/home/u/.config", DefaultAppFolder), GetDefaultConfigPath(WithBaseDir(dir)))
	assert.Equal(t, DefaultAppFolder, GetDefaultConfigPath(WithBaseDir(func() (string, error) { return "", errors.New("no home") })))
}
