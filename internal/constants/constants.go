// Package constants is responsible for defining the constants used in the application.
// It also provides the default configuration path of the command line tool.
package constants

import (
	"log/slog"
	"os"
	"path/filepath"
)

var (
	// Version is the version of the application, set at build time.
	Version = "Dev"
)

const (
	// CmdName is the name of the command line tool.
	CmdName = "pinnacle"

	// WebhookServiceCmdName is the name of the webhook receiver daemon.
	WebhookServiceCmdName = "pinnacle-webhook-service"

	// IngestServiceCmdName is the name of the ingest daemon.
	IngestServiceCmdName = "pinnacle-ingest-service"

	// DefaultAppFolder is the name of the default root folder.
	DefaultAppFolder = "pinnacle"

	// DefaultLogLevel is the default log level selected without any verbosity flags.
	DefaultLogLevel = slog.LevelWarn

	// CredentialsFileName is the base name of the file holding the stored API key.
	CredentialsFileName = "credentials.toml"

	// SpoolFolder is the name of the folder holding accepted webhook events until they are ingested.
	SpoolFolder = "spool"

	// InvalidFolder is the name of the folder events which could not be ingested are moved to.
	InvalidFolder = "invalid"

	// EventExtension is the extension of spooled webhook events.
	EventExtension = ".json"

	// DefaultServiceSpoolDir is the default spool directory shared by the webhook and ingest services.
	DefaultServiceSpoolDir = "/var/lib/" + DefaultAppFolder + "/" + SpoolFolder

	// DefaultServiceConfigPath is the default path of the receivers configuration of the services.
	DefaultServiceConfigPath = "/etc/" + DefaultAppFolder + "/receivers.json"
)

type options struct {
	baseDir func() (string, error)
}

type option func(*options)

// GetDefaultConfigPath is the default path to the configuration directory.
func GetDefaultConfigPath(opts ...option) string {
	o := options{baseDir: os.UserConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	return filepath.Join(userConfigDir(o.baseDir), DefaultAppFolder)
}

// userConfigDir returns the directory returned by dirFunc, or an empty string on error.
func userConfigDir(dirFunc func() (string, error)) string {
	return baseDir(dirFunc)
}

func baseDir(dirFunc func() (string, error)) string {
	dir, err := dirFunc()
	if err != nil {
		return ""
	}
	return dir
}
