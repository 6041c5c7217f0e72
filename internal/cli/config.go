// Package cli holds the helpers shared by the command line tools of the module.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trypinnacle/pinnacle-go/internal/constants"
)

// InitViperConfig reads the configuration file of the command and binds its environment.
//
// The file is the one passed with --config or, failing that, a file named after cmdName in the
// working directory, the user configuration directory, /etc/<cmdName> or next to the executable.
// Environment variables are prefixed with the upper case command name, dashes replaced by
// underscores. A nested key a.b is read from PREFIX_A_B.
func InitViperConfig(cmdName string, cmd *cobra.Command, vip *viper.Viper) error {
	if v, err := cmd.Flags().GetString("config"); err == nil && v != "" {
		vip.SetConfigFile(v)
	} else {
		vip.SetConfigName(cmdName)
		for _, p := range configDirs(cmdName) {
			vip.AddConfigPath(p)
		}
	}

	if err := vip.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return fmt.Errorf("invalid configuration file: %w", err)
		}
		slog.Info("No configuration file, using defaults, environment and flags only", "error", e)
	} else {
		slog.Info("Using configuration file", "file", vip.ConfigFileUsed())
	}

	prefix := EnvPrefix(cmdName)
	vip.SetEnvPrefix(prefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	vip.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows, which Unmarshal misses for nested structs.
	for _, e := range os.Environ() {
		name, _, _ := strings.Cut(e, "=")
		if !strings.HasPrefix(name, prefix+"_") {
			continue
		}
		k := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(name, prefix+"_"), "_", "."))
		if err := vip.BindEnv(k, name); err != nil {
			return fmt.Errorf("could not bind environment variable %s: %w", name, err)
		}
	}

	return nil
}

// EnvPrefix returns the prefix of the environment variables read for cmdName.
func EnvPrefix(cmdName string) string {
	return strings.ToUpper(strings.ReplaceAll(cmdName, "-", "_"))
}

// InstallConfigFlag adds the --config flag to cmd.
func InstallConfigFlag(cmd *cobra.Command) *string {
	p := cmd.PersistentFlags().String("config", "", "use a specific configuration file")
	if err := cmd.MarkPersistentFlagFilename("config", "yaml", "yml", "json", "toml"); err != nil {
		// Only fails if the flag does not exist.
		panic(fmt.Sprintf("failed to mark config flag as filename: %v", err))
	}
	return p
}

func configDirs(cmdName string) []string {
	dirs := []string{"."}
	if p := constants.GetDefaultConfigPath(); p != constants.DefaultAppFolder {
		dirs = append(dirs, p)
	}
	dirs = append(dirs, filepath.Join("/etc", cmdName))

	if binPath, err := os.Executable(); err != nil {
		slog.Warn("Failed to get current executable path, not adding it as a config dir", "error", err)
	} else {
		dirs = append(dirs, filepath.Dir(binPath))
	}
	return dirs
}
