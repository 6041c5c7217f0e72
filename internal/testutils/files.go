// Package testutils provides helpers shared by the tests of the module.
package testutils

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// GetDirContents returns the regular files under dir, keyed by their slash separated path relative to dir.
// Line endings of the contents are normalized. Walking deeper than maxDepth is an error.
func GetDirContents(t *testing.T, dir string, maxDepth uint) (map[string]string, error) {
	t.Helper()

	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		if depth := uint(strings.Count(filepath.ToSlash(relPath), "/") + 1); depth > maxDepth {
			return fmt.Errorf("max depth %d exceeded at %s", maxDepth, relPath)
		}

		if !d.Type().IsRegular() {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(relPath)] = string(bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n")))
		return nil
	})

	return files, err
}

// WriteFiles creates the files under dir, keyed by their slash separated path relative to dir.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0750), "Setup: failed to create directory")
		require.NoError(t, os.WriteFile(p, []byte(content), 0600), "Setup: failed to write file")
	}
}
