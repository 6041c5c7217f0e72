// Package daemon provides the ingest service daemon storing spooled webhook events in PostgreSQL.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trypinnacle/pinnacle-go/internal/cli"
	"github.com/trypinnacle/pinnacle-go/internal/constants"
	"github.com/trypinnacle/pinnacle-go/internal/server/ingest"
	"github.com/trypinnacle/pinnacle-go/internal/server/ingest/database"
	"github.com/trypinnacle/pinnacle-go/internal/server/ingest/processor"
	"github.com/trypinnacle/pinnacle-go/internal/server/ingest/workers"
	"github.com/trypinnacle/pinnacle-go/internal/server/metrics"
	"github.com/trypinnacle/pinnacle-go/internal/server/shared/config"
)

// App represents the application.
type App struct {
	cmd    *cobra.Command
	viper  *viper.Viper
	config appConfig

	daemon *ingest.Service

	ready     chan struct{}
	readyOnce sync.Once
}

// appConfig holds the configuration for the application.
type appConfig struct {
	Verbosity     int
	JSONLogs      bool
	DBconfig      database.Config
	MetricsConfig metrics.Config
	SpoolDir      string
	ConfigPath    string
	PollInterval  time.Duration
	MigrationsDir string
}

// New creates a new App instance with default values.
func New() (*App, error) {
	a := App{ready: make(chan struct{})}

	a.cmd = &cobra.Command{
		Use:   constants.IngestServiceCmdName,
		Short: "Pinnacle ingest service",
		Long: `Pinnacle ingest service reads the webhook events spooled by the webhook service
and inserts them into a PostgreSQL database.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Command parsing has been successful. Returns to not print usage anymore.
			a.cmd.SilenceUsage = true
			cli.SetSlog(a.config.Verbosity, a.config.JSONLogs, os.Stderr) // Set verbosity before loading config
			if err := cli.InitViperConfig(constants.IngestServiceCmdName, a.cmd, a.viper); err != nil {
				return err
			}
			hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			))
			if err := a.viper.Unmarshal(&a.config, hooks); err != nil {
				return fmt.Errorf("unable to decode configuration into struct: %w", err)
			}
			slog.Debug("Got app config", "spool", a.config.SpoolDir, "config", a.config.ConfigPath)

			cli.SetSlog(a.config.Verbosity, a.config.JSONLogs, os.Stderr)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run()
		},
	}
	a.viper = viper.New()
	a.cmd.CompletionOptions.HiddenDefaultCmd = true

	installRootCmd(&a)
	cli.InstallConfigFlag(a.cmd)

	if err := a.viper.BindPFlags(a.cmd.PersistentFlags()); err != nil {
		return nil, err
	}

	a.installVersion()
	installMigrateCmd(&a)

	return &a, nil
}

func installRootCmd(app *App) {
	cmd := app.cmd

	cmd.PersistentFlags().CountVarP(&app.config.Verbosity, "verbose", "v", "issue INFO (-v), DEBUG (-vv)")
	cmd.PersistentFlags().BoolVar(&app.config.JSONLogs, "json-logs", false, "enable JSON formatted logs")

	// Database flags, shared with migrate.
	cmd.PersistentFlags().StringVar(&app.config.DBconfig.Host, "db-host", "", "database host")
	cmd.PersistentFlags().IntVarP(&app.config.DBconfig.Port, "db-port", "p", 5432, "database port")
	cmd.PersistentFlags().StringVarP(&app.config.DBconfig.User, "db-user", "u", "", "database user")
	cmd.PersistentFlags().StringVarP(&app.config.DBconfig.Password, "db-password", "P", "", "database password")
	cmd.PersistentFlags().StringVarP(&app.config.DBconfig.DBName, "db-name", "n", "", "database name")
	cmd.PersistentFlags().StringVarP(&app.config.DBconfig.SSLMode, "db-sslmode", "s", "", "database SSL mode")

	// Daemon flags
	cmd.Flags().StringVarP(&app.config.ConfigPath, "daemon-config", "c", constants.DefaultServiceConfigPath, "path to the receivers configuration file")
	cmd.Flags().StringVar(&app.config.SpoolDir, "spool-dir", constants.DefaultServiceSpoolDir, "directory to read spooled events from")
	cmd.Flags().DurationVar(&app.config.PollInterval, "poll-interval", 2*time.Second, "delay between two reads of a receiver spool")

	cmd.Flags().StringVar(&app.config.MetricsConfig.Host, "metrics-host", "", "host for the metrics endpoint")
	cmd.Flags().IntVar(&app.config.MetricsConfig.Port, "metrics-port", 2113, "port for the metrics endpoint")

	if err := cmd.MarkFlagFilename("daemon-config", "json"); err != nil {
		// This should never happen.
		panic(fmt.Sprintf("failed to mark daemon-config flag as filename: %v", err))
	}

	if err := cmd.MarkFlagDirname("spool-dir"); err != nil {
		// This should never happen.
		panic(fmt.Sprintf("failed to mark spool-dir flag as directory: %v", err))
	}
}

// Run executes the command and associated process, returning an error if any.
func (a *App) Run() error {
	defer a.markReady()
	return a.cmd.Execute()
}

// UsageError returns if the error is a command parsing or runtime one.
func (a *App) UsageError() bool {
	return !a.cmd.SilenceUsage
}

// Hup prints all goroutine stack traces and return false to signal you shouldn't quit.
func (a *App) Hup() (shouldQuit bool) {
	buf := make([]byte, 1<<16)
	n := runtime.Stack(buf, true)
	fmt.Printf("%s", buf[:n])
	return false
}

// Quit gracefully shuts down the daemon.
func (a *App) Quit() {
	a.WaitReady()
	if a.daemon != nil {
		a.daemon.Quit(false)
	}
}

// WaitReady waits for the daemon to be created, or for Run to return without creating it.
func (a *App) WaitReady() {
	<-a.ready
}

func (a *App) markReady() {
	a.readyOnce.Do(func() { close(a.ready) })
}

func (a *App) run() (err error) {
	a.config.ConfigPath, err = filepath.Abs(a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for config file: %v", err)
	}

	cm := config.New(a.config.ConfigPath)
	if err := cm.Load(); err != nil {
		return fmt.Errorf("failed to load receivers configuration: %v", err)
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, a.config.DBconfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	a.daemon, err = newService(ctx, cm, db, a.config)
	a.markReady()
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to create service: %v", err)
	}

	return a.daemon.Run()
}

// newService wires the spool processor, the worker pool and the metrics server around db.
// db is closed by the returned service once it stops.
func newService(ctx context.Context, cm *config.Manager, db *database.Manager, conf appConfig) (*ingest.Service, error) {
	proc, err := processor.New(conf.SpoolDir, db)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	pool, err := workers.New(cm, proc, reg, workers.WithPollInterval(conf.PollInterval))
	if err != nil {
		return nil, err
	}

	return ingest.New(ctx, pool, metrics.New(conf.MetricsConfig, reg), ingest.WithDatabase(db)), nil
}
