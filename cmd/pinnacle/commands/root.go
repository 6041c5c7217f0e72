// Package commands implements the pinnacle command line tool.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trypinnacle/pinnacle-go/internal/cli"
	"github.com/trypinnacle/pinnacle-go/internal/constants"
	"github.com/trypinnacle/pinnacle-go/internal/credentials"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle"
)

// App represents the application.
type App struct {
	cmd    *cobra.Command
	viper  *viper.Viper
	config appConfig
}

// appConfig holds the configuration of the tool.
type appConfig struct {
	Verbosity int
	JSONLogs  bool
	ConfigDir string
	BaseURL   string
	Timeout   time.Duration

	Validate struct {
		Format  string
		Offline bool
	}
	Send struct {
		From      string
		To        string
		Text      string
		MediaURLs []string
	}
}

// New registers commands and returns a new App.
func New() (*App, error) {
	a := App{}
	a.cmd = &cobra.Command{
		Use:   constants.CmdName + " [COMMAND]",
		Short: "Send messages and check payloads with the Pinnacle API",
		Long: `Send messages and check payloads with the Pinnacle API.

The API key is read from PINNACLE_API_KEY, or from the credentials saved with "auth set-key".`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Command parsing has been successful. Returns to not print usage anymore.
			a.cmd.SilenceUsage = true
			cli.SetSlog(a.config.Verbosity, a.config.JSONLogs, os.Stderr) // Set verbosity before loading config
			if err := cli.InitViperConfig(constants.CmdName, a.cmd, a.viper); err != nil {
				return err
			}
			if err := a.viper.Unmarshal(&a.config); err != nil {
				return fmt.Errorf("unable to decode configuration into struct: %w", err)
			}

			cli.SetSlog(a.config.Verbosity, a.config.JSONLogs, os.Stderr)
			return nil
		},
	}
	a.viper = viper.New()
	a.cmd.CompletionOptions.HiddenDefaultCmd = true

	installRootCmd(&a)
	cli.InstallConfigFlag(a.cmd)

	if err := a.viper.BindPFlags(a.cmd.PersistentFlags()); err != nil {
		return nil, err
	}

	installAuthCmd(&a)
	installValidateCmd(&a)
	installSendCmd(&a)
	installMessageCmd(&a)
	a.installVersion()

	return &a, nil
}

func installRootCmd(app *App) {
	cmd := app.cmd

	cmd.PersistentFlags().CountVarP(&app.config.Verbosity, "verbose", "v", "issue INFO (-v), DEBUG (-vv)")
	cmd.PersistentFlags().BoolVar(&app.config.JSONLogs, "json-logs", false, "enable JSON formatted logs")
	cmd.PersistentFlags().StringVar(&app.config.ConfigDir, "config-dir", constants.GetDefaultConfigPath(), "directory holding the saved credentials")
	cmd.PersistentFlags().StringVar(&app.config.BaseURL, "base-url", "", "base URL of the API (default "+pinnacle.DefaultBaseURL+")")
	cmd.PersistentFlags().DurationVar(&app.config.Timeout, "timeout", pinnacle.DefaultTimeout, "timeout of each API request")

	if err := cmd.MarkPersistentFlagDirname("config-dir"); err != nil {
		// This should never happen.
		panic(fmt.Sprintf("failed to mark config-dir flag as directory: %v", err))
	}
}

// Run executes the command and associated process, returning an error if any.
// Interrupting the program cancels the API call in flight.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.cmd.ExecuteContext(ctx)
}

// UsageError returns if the error is a command parsing or runtime one.
func (a *App) UsageError() bool {
	return !a.cmd.SilenceUsage
}

// RootCmd returns the root command.
func (a *App) RootCmd() *cobra.Command {
	return a.cmd
}

// credStore returns the credentials store of the configured directory.
func (a *App) credStore() credentials.Store {
	return credentials.New(slog.Default(), a.config.ConfigDir)
}

// newClient returns an API client. The environment takes precedence over saved credentials.
func (a *App) newClient() (*pinnacle.Client, error) {
	conf := pinnacle.Config{
		BaseURL: a.config.BaseURL,
		Timeout: a.config.Timeout,
	}

	if os.Getenv(pinnacle.APIKeyEnv) == "" {
		creds, err := a.credStore().Load()
		switch {
		case errors.Is(err, credentials.ErrNotFound):
			slog.Debug("No saved credentials", "dir", a.config.ConfigDir)
		case err != nil:
			return nil, err
		default:
			conf.APIKey = creds.APIKey
			if conf.BaseURL == "" {
				conf.BaseURL = creds.BaseURL
			}
		}
	}

	c, err := pinnacle.New(conf)
	if errors.Is(err, pinnacle.ErrMissingAPIKey) {
		return nil, fmt.Errorf("%v, or run %s auth set-key", err, constants.CmdName)
	}
	return c, err
}
