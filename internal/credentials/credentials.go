// Package credentials stores the API key used by the command line tool.
package credentials

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trypinnacle/pinnacle-go/internal/constants"
	"github.com/trypinnacle/pinnacle-go/internal/fileutils"
	"github.com/ubuntu/decorate"
)

// ErrNotFound is returned when no credentials were saved yet.
var ErrNotFound = errors.New("no stored credentials")

// Credentials is the content of the credentials file.
type Credentials struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url,omitempty"`
}

// Store reads and writes the credentials file of a directory.
type Store struct {
	path string

	log *slog.Logger
}

// New returns a Store keeping its file in dir.
func New(l *slog.Logger, dir string) Store {
	if l == nil {
		l = slog.Default()
	}
	return Store{path: filepath.Join(dir, constants.CredentialsFileName), log: l}
}

// Path returns the path of the credentials file.
func (s Store) Path() string {
	return s.path
}

// Load reads the stored credentials.
// ErrNotFound is returned if the file does not exist.
func (s Store) Load() (c Credentials, err error) {
	defer decorate.OnError(&err, "could not load credentials")

	md, err := toml.DecodeFile(s.path, &c)
	if errors.Is(err, fs.ErrNotExist) {
		return Credentials{}, ErrNotFound
	}
	if err != nil {
		return Credentials{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		s.log.Warn("Ignoring unknown keys in credentials file", "file", s.path, "keys", undecoded)
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return Credentials{}, fmt.Errorf("%s has an empty api_key", s.path)
	}

	s.log.Debug("Loaded credentials", "file", s.path, "key", Mask(c.APIKey))
	return c, nil
}

// Save writes c, replacing any stored credentials.
func (s Store) Save(c Credentials) (err error) {
	defer decorate.OnError(&err, "could not save credentials")

	c.APIKey = strings.TrimSpace(c.APIKey)
	if c.APIKey == "" {
		return errors.New("the API key cannot be empty")
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("could not encode credentials: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("could not create directory: %v", err)
	}
	if err := fileutils.AtomicWrite(s.path, buf.Bytes()); err != nil {
		return err
	}

	s.log.Debug("Saved credentials", "file", s.path, "key", Mask(c.APIKey))
	return nil
}

// Mask hides all but the edges of an API key.
func Mask(key string) string {
	const visible = 4
	if len(key) <= 3*visible {
		return strings.Repeat("*", len(key))
	}
	return key[:visible] + strings.Repeat("*", len(key)-2*visible) + key[len(key)-visible:]
}
