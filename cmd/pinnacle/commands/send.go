package commands

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
)

func installSendCmd(app *App) {
	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		Args:  cobra.NoArgs,
	}
	sendCmd.PersistentFlags().StringVar(&app.config.Send.From, "from", "", "sending phone number, in E.164 format")
	sendCmd.PersistentFlags().StringVar(&app.config.Send.To, "to", "", "recipient phone number, in E.164 format")
	sendCmd.PersistentFlags().StringVar(&app.config.Send.Text, "text", "", "text of the message")
	for _, f := range []string{"from", "to"} {
		if err := sendCmd.MarkPersistentFlagRequired(f); err != nil {
			// This should never happen.
			panic(err)
		}
	}

	smsCmd := &cobra.Command{
		Use:   "sms",
		Short: "Send an SMS",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if app.config.Send.Text == "" {
				app.cmd.SilenceUsage = false
				return errors.New("--text is required to send an SMS")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("Running send sms command")
			return app.sendSMSRun(cmd)
		},
	}

	mmsCmd := &cobra.Command{
		Use:   "mms",
		Short: "Send an MMS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("Running send mms command", "media", len(app.config.Send.MediaURLs))
			return app.sendMMSRun(cmd)
		},
	}
	mmsCmd.Flags().StringArrayVar(&app.config.Send.MediaURLs, "media-url", nil, "URL of a media to attach, can be repeated")
	if err := mmsCmd.MarkFlagRequired("media-url"); err != nil {
		// This should never happen.
		panic(err)
	}

	sendCmd.AddCommand(smsCmd, mmsCmd)
	app.cmd.AddCommand(sendCmd)
}

func (a *App) sendSMSRun(cmd *cobra.Command) error {
	c, err := a.newClient()
	if err != nil {
		return err
	}

	s := a.config.Send
	res, err := c.Messages.SendSMS(cmd.Context(), pinnacle.NewSendSMSParams(s.From, s.To, s.Text))
	if err != nil {
		return err
	}
	return writeModel(cmd.OutOrStdout(), res, formatJSON)
}

func (a *App) sendMMSRun(cmd *cobra.Command) error {
	c, err := a.newClient()
	if err != nil {
		return err
	}

	s := a.config.Send
	params := pinnacle.NewSendMMSParams(s.From, s.To, s.MediaURLs...)
	if s.Text != "" {
		params.Text = field.Of(s.Text)
	}
	res, err := c.Messages.SendMMS(cmd.Context(), params)
	if err != nil {
		return err
	}
	return writeModel(cmd.OutOrStdout(), res, formatJSON)
}
