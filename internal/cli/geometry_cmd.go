package cli

import (
	"fmt"

	"github.com/alexanderramin/timewheel/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newGeometryCmd(app *App) *cobra.Command {
	var lo layoutOptions

	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Print the computed angles and coordinates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lo.resolve(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGeometry(l))
			return nil
		},
	}

	lo.register(cmd, app)
	return cmd
}
