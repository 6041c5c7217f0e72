package commands

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trypinnacle/pinnacle-go/internal/credentials"
)

func installAuthCmd(app *App) {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the saved API key",
		Args:  cobra.NoArgs,
	}

	setKeyCmd := &cobra.Command{
		Use:   "set-key <key|->",
		Short: "Save the API key used when PINNACLE_API_KEY is not set",
		Long: `Save the API key used when PINNACLE_API_KEY is not set.

Pass "-" to read the key from the standard input. The base URL is saved alongside the key when --base-url is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if key == "-" {
				var err error
				if key, err = bufio.NewReader(cmd.InOrStdin()).ReadString('\n'); err != nil && key == "" {
					return fmt.Errorf("could not read the API key from stdin: %v", err)
				}
			}

			slog.Debug("Running auth set-key command")
			return app.setKeyRun(cmd, strings.TrimSpace(key))
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved API key, masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("Running auth show command")
			return app.showRun(cmd)
		},
	}

	authCmd.AddCommand(setKeyCmd, showCmd)
	app.cmd.AddCommand(authCmd)
}

func (a *App) setKeyRun(cmd *cobra.Command, key string) error {
	s := a.credStore()
	if err := s.Save(credentials.Credentials{APIKey: key, BaseURL: a.config.BaseURL}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "API key %s saved to %s\n", credentials.Mask(strings.TrimSpace(key)), s.Path())
	return nil
}

func (a *App) showRun(cmd *cobra.Command) error {
	s := a.credStore()
	c, err := s.Load()
	if errors.Is(err, credentials.ErrNotFound) {
		return fmt.Errorf("no API key saved in %s", s.Path())
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "file:\t%s\n", s.Path())
	fmt.Fprintf(w, "key:\t%s\n", credentials.Mask(c.APIKey))
	if c.BaseURL != "" {
		fmt.Fprintf(w, "url:\t%s\n", c.BaseURL)
	}
	return nil
}
