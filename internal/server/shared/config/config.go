// Package config loads the dynamic configuration of the webhook daemons and reloads it when its file changes.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/trypinnacle/pinnacle-go/internal/constants"
	"github.com/trypinnacle/pinnacle-go/internal/fileutils"
	"github.com/ubuntu/decorate"
)

// Provider gives read access to the current configuration.
type Provider interface {
	AllowList() []string
	IsAllowed(receiver string) bool
	Secret(receiver string) string
}

// Conf is the content of the configuration file.
type Conf struct {
	// AllowList names the receivers webhooks are accepted for.
	AllowList []string `json:"allowList"`
	// Secrets maps a receiver to the signing secret its deliveries carry.
	Secrets map[string]string `json:"secrets,omitempty"`
	// SharedSecret is used by receivers without an entry in Secrets.
	SharedSecret string `json:"sharedSecret,omitempty"`
}

// receiverRE restricts names to what is safe as a single path element.
var receiverRE = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)

// reservedNames cannot be receivers as they are folders of the spool.
var reservedNames = map[string]struct{}{
	constants.InvalidFolder: {},
}

// Manager holds the configuration read from a file.
type Manager struct {
	config     Conf
	allowSet   map[string]struct{}
	lock       sync.RWMutex
	configPath string

	log *slog.Logger
}

type options struct {
	Logger *slog.Logger
}

// Options represents an optional function to override Manager default values.
type Options func(*options)

// New returns a Manager reading path. Nothing is loaded until Load or Watch is called.
func New(path string, args ...Options) *Manager {
	opts := options{
		Logger: slog.Default(),
	}
	for _, opt := range args {
		opt(&opts)
	}

	return &Manager{
		configPath: path,
		log:        opts.Logger,
	}
}

// ValidReceiver reports whether name can be used as a receiver.
func ValidReceiver(name string) bool {
	if _, reserved := reservedNames[name]; reserved {
		return false
	}
	return receiverRE.MatchString(name)
}

// Load reads the configuration file and replaces the current configuration.
// Invalid receiver names are dropped from the allow list with a warning.
// On error the current configuration is kept.
func (cm *Manager) Load() (err error) {
	defer decorate.OnError(&err, "could not load configuration %s", cm.configPath)

	f, err := os.Open(cm.configPath)
	if err != nil {
		return fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	var newConfig Conf
	if err := fileutils.ParseJSON(f, &newConfig); err != nil {
		return fmt.Errorf("decoding config file: %w", err)
	}

	allowSet := make(map[string]struct{}, len(newConfig.AllowList))
	allowList := make([]string, 0, len(newConfig.AllowList))
	for _, name := range newConfig.AllowList {
		if !ValidReceiver(name) {
			cm.log.Warn("Ignoring invalid receiver name", "receiver", name)
			continue
		}
		if _, dup := allowSet[name]; dup {
			continue
		}
		allowSet[name] = struct{}{}
		allowList = append(allowList, name)
	}
	newConfig.AllowList = allowList

	cm.lock.Lock()
	cm.config = newConfig
	cm.allowSet = allowSet
	cm.lock.Unlock()

	cm.log.Info("Configuration loaded", "allowList", allowList, "secrets", slices.Sorted(maps.Keys(newConfig.Secrets)))
	return nil
}

// Watch loads the configuration and reloads it every time its file changes, until ctx is done.
//
// It returns a channel notified after each successful reload and a channel receiving unrecoverable
// watcher errors. Both are closed when watching stops.
func (cm *Manager) Watch(ctx context.Context) (changes <-chan struct{}, errors <-chan error, err error) {
	defer decorate.OnError(&err, "could not watch configuration")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create watcher: %v", err)
	}

	// Editors and config management replace the file, so the directory is watched.
	configDir := filepath.Dir(cm.configPath)
	if err := watcher.Add(configDir); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("failed to add directory %s to watcher: %v", configDir, err)
	}
	cm.log.Info("Watching configuration directory", "dir", configDir)

	if err := cm.Load(); err != nil {
		cm.log.Warn("Error loading initial config", "err", err)
	}

	changesCh := make(chan struct{}, 1)
	errorsCh := make(chan error, 1)
	go func() {
		defer close(changesCh)
		defer close(errorsCh)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				cm.log.Info("Configuration watcher stopped")
				return
			case event, ok := <-watcher.Events:
				if !ok {
					errorsCh <- fmt.Errorf("watcher events channel closed unexpectedly")
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || filepath.Clean(event.Name) != filepath.Clean(cm.configPath) {
					continue
				}

				cm.log.Debug("Configuration file changed, reloading")
				if err := cm.Load(); err != nil {
					cm.log.Warn("Error reloading config", "err", err)
					continue
				}
				select {
				case changesCh <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					errorsCh <- fmt.Errorf("watcher errors channel closed unexpectedly")
					return
				}
				cm.log.Warn("Watcher error", "err", err)
			}
		}
	}()

	return changesCh, errorsCh, nil
}

// AllowList returns a copy of the receivers webhooks are accepted for.
func (cm *Manager) AllowList() []string {
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	return slices.Clone(cm.config.AllowList)
}

// IsAllowed reports whether receiver is in the allow list.
func (cm *Manager) IsAllowed(receiver string) bool {
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	_, ok := cm.allowSet[receiver]
	return ok
}

// Secret returns the signing secret of receiver, falling back to the shared secret.
// An empty string means deliveries are checked against the environment.
func (cm *Manager) Secret(receiver string) string {
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	if s, ok := cm.config.Secrets[receiver]; ok {
		return s
	}
	return cm.config.SharedSecret
}
