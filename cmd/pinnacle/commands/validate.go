package commands

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle"
)

// decoder checks a payload and decodes it into its model.
type decoder func(data []byte) (pinnacle.Model, error)

// records maps the names accepted by the validate command to their decoder.
var records = map[string]decoder{
	"brand":              decodeAs[pinnacle.UpsertBrandParams],
	"contact":            decodeAs[pinnacle.Contact],
	"conversation":       decodeAs[pinnacle.Conversation],
	"dlc-campaign":       decodeAs[pinnacle.DLCCampaign],
	"message":            decodeAs[pinnacle.Message],
	"message-event":      decodeAs[pinnacle.MessageEvent],
	"phone-number":       decodeAs[pinnacle.PhoneInformation],
	"rcs-campaign":       decodeAs[pinnacle.RCSCampaign],
	"rcs-content":        decodeAs[pinnacle.RCSContent],
	"rich-button":        decodeAs[pinnacle.RichButton],
	"rich-message":       decodeAs[pinnacle.RichMessage],
	"send-mms":           decodeAs[pinnacle.SendMMSParams],
	"send-sms":           decodeAs[pinnacle.SendSMSParams],
	"toll-free-campaign": decodeAs[pinnacle.TollFreeCampaign],
	"user-event":         decodeAs[pinnacle.UserEvent],
	"vcard":              decodeAs[pinnacle.VCard],
	"webhook-event":      decodeAs[pinnacle.WebhookEvent],
}

// decodeAs checks the shape of data against T before decoding and validating it.
func decodeAs[T pinnacle.Model, PT interface {
	*T
	pinnacle.Model
}](data []byte) (pinnacle.Model, error) {
	if err := pinnacle.ValidateRaw[T](data); err != nil {
		return nil, err
	}
	v, err := pinnacle.Decode[T, PT](data)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func installValidateCmd(app *App) {
	names := slices.Sorted(maps.Keys(records))

	validateCmd := &cobra.Command{
		Use:   "validate <record> <file|->",
		Short: "Check a JSON payload against a model",
		Long: `Check a JSON payload against a model and print its normalised encoding.

Pass "-" to read the payload from the standard input. Known records are:
  ` + strings.Join(names, ", "),
		Args:      cobra.ExactArgs(2),
		ValidArgs: names,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(app.config.Validate.Format); err != nil {
				app.cmd.SilenceUsage = false
				return err
			}
			if _, ok := records[args[0]]; !ok {
				app.cmd.SilenceUsage = false
				return fmt.Errorf("unknown record %q, expected one of: %s", args[0], strings.Join(names, ", "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("Running validate command", "record", args[0])
			return app.validateRun(cmd, args[0], args[1])
		},
	}
	validateCmd.PersistentFlags().StringVarP(&app.config.Validate.Format, "format", "f", formatJSON, "output format, json or yaml")
	if err := app.viper.BindPFlag("validate.format", validateCmd.PersistentFlags().Lookup("format")); err != nil {
		// This should never happen.
		panic(fmt.Sprintf("failed to bind format flag: %v", err))
	}

	smsCmd := &cobra.Command{
		Use:   "sms <text>",
		Short: "Check how an SMS body is split in segments",
		Long: `Check how an SMS body is split in segments.

With --offline, the segments are estimated locally from the GSM-7 and UTF-16 encodings
without calling the API.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(app.config.Validate.Format); err != nil {
				app.cmd.SilenceUsage = false
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("Running validate sms command", "offline", app.config.Validate.Offline)
			if app.config.Validate.Offline {
				return estimateRun(cmd, args[0])
			}
			return app.validateSMSRun(cmd, args[0])
		},
	}
	smsCmd.Flags().BoolVar(&app.config.Validate.Offline, "offline", false, "estimate segments without calling the API")
	if err := app.viper.BindPFlag("validate.offline", smsCmd.Flags().Lookup("offline")); err != nil {
		// This should never happen.
		panic(fmt.Sprintf("failed to bind offline flag: %v", err))
	}

	validateCmd.AddCommand(smsCmd)
	app.cmd.AddCommand(validateCmd)
}

func checkFormat(format string) error {
	if format != formatJSON && format != formatYAML {
		return fmt.Errorf("format must be %s or %s, got %q", formatJSON, formatYAML, format)
	}
	return nil
}

func (a *App) validateRun(cmd *cobra.Command, record, path string) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("could not read payload: %v", err)
	}

	v, err := records[record](data)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", record, err)
	}
	return writeModel(cmd.OutOrStdout(), v, a.config.Validate.Format)
}

func (a *App) validateSMSRun(cmd *cobra.Command, text string) error {
	c, err := a.newClient()
	if err != nil {
		return err
	}

	res, err := c.Messages.ValidateSMS(cmd.Context(), pinnacle.ValidateSMSParams{Text: text})
	if err != nil {
		return err
	}
	return writeModel(cmd.OutOrStdout(), res, a.config.Validate.Format)
}

func estimateRun(cmd *cobra.Command, text string) error {
	e := pinnacle.EstimateSegments(text)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "encoding:\t%s\n", e.Encoding)
	fmt.Fprintf(w, "units:\t%d\n", e.Units)
	fmt.Fprintf(w, "segments:\t%d\n", e.Segments)
	if len(e.Unsupported) > 0 {
		fmt.Fprintf(w, "unsupported:\t%q\n", string(e.Unsupported))
	}
	return nil
}
