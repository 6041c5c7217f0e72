package daemon

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trypinnacle/pinnacle-go/internal/constants"
)

func (a *App) installVersion() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Returns the running version of " + constants.IngestServiceCmdName + " and exits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", constants.IngestServiceCmdName, constants.Version)
			return nil
		},
	}
	a.cmd.AddCommand(cmd)
}
