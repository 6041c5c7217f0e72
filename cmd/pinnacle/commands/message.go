package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func installMessageCmd(app *App) {
	messageCmd := &cobra.Command{
		Use:   "message",
		Short: "Look up sent and received messages",
		Args:  cobra.NoArgs,
	}

	var format string
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print a message",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				app.cmd.SilenceUsage = false
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("Running message get command", "id", args[0])

			c, err := app.newClient()
			if err != nil {
				return err
			}
			m, err := c.Messages.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeModel(cmd.OutOrStdout(), m, format)
		},
	}
	getCmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format, json or yaml")

	messageCmd.AddCommand(getCmd)
	app.cmd.AddCommand(messageCmd)
}
