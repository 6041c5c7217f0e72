// Package fileutils provides helpers to read and write files safely.
package fileutils

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// AtomicWrite writes data to path through a temporary file renamed in place, replacing any
// existing file. The new file is only readable by its owner. Not atomic on Windows.
func AtomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "tmp-*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file: %v", err)
	}
	defer func() {
		_ = tmp.Close()
		if err := os.Remove(tmp.Name()); err != nil && !os.IsNotExist(err) {
			slog.Warn("Failed to remove temporary file", "file", tmp.Name(), "error", err)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("could not write to temporary file: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary file: %v", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not rename temporary file: %v", err)
	}
	return nil
}

// MoveToDir moves the file at path into dir, creating dir if needed, and returns its new path.
// A file of the same name in dir is replaced.
func MoveToDir(path, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("could not create directory %q: %v", dir, err)
	}

	dst := filepath.Join(dir, filepath.Base(path))
	if err := os.Rename(path, dst); err != nil {
		return "", fmt.Errorf("could not move %q to %q: %v", path, dir, err)
	}
	return dst, nil
}

// ParseJSON unmarshals the whole content of r into v.
func ParseJSON(r io.Reader, v any) error {
	// Reading everything first reports trailing garbage after a valid value.
	buf, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading from io.Reader: %v", err)
	}

	if err := json.Unmarshal(buf, v); err != nil {
		return fmt.Errorf("couldn't parse JSON: %v", err)
	}
	return nil
}
