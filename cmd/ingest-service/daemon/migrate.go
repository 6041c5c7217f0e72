package daemon

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // PGX v5 driver for golang-migrate
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"
	"github.com/trypinnacle/pinnacle-go/migrations"
)

func installMigrateCmd(app *App) {
	migrateCmd := &cobra.Command{
		Use:   "migrate [path-to-migration-scripts]",
		Short: "Run migration scripts",
		Long: `Run migration scripts to update the database schema.
If no path is provided, the scripts embedded in the binary are used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.cmd.SilenceUsage = false

			app.config.MigrationsDir = ""
			if len(args) == 1 {
				app.config.MigrationsDir = args[0]

				fileInfo, err := os.Stat(app.config.MigrationsDir)
				if err != nil {
					return fmt.Errorf("the provided path to migration scripts is not valid: %v", err)
				}
				if !fileInfo.IsDir() {
					return errors.New("the provided path to migration scripts should be a directory, not a file")
				}
			}

			app.cmd.SilenceUsage = true

			slog.Info("Running migrate command")
			return app.migrateRun()
		},
	}
	app.cmd.AddCommand(migrateCmd)
}

func (a *App) migrateRun() error {
	m, err := a.newMigrate()
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %v", err)
	}
	defer func() {
		if sErr, dbErr := m.Close(); sErr != nil || dbErr != nil {
			if sErr != nil {
				slog.Error("Failed to close migration source", "err", sErr)
			}
			if dbErr != nil {
				slog.Error("Failed to close database connection", "err", dbErr)
			}
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("No new migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %v", err)
	}
	slog.Info("Migrations applied successfully")
	return nil
}

func (a *App) newMigrate() (*migrate.Migrate, error) {
	dsn := a.config.DBconfig.URI("pgx5")

	if a.config.MigrationsDir != "" {
		return migrate.New("file://"+a.config.MigrationsDir, dsn)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", src, dsn)
}
