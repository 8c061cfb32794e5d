package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/timewheel/internal/cli/formatter"
	"github.com/alexanderramin/timewheel/internal/layout"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newDesignCmd(app *App) *cobra.Command {
	var (
		lo  layoutOptions
		out string
	)

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Build a layout file with an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			start, err := lo.resolve(cmd)
			if err != nil {
				return err
			}

			st := newDesignState(start)
			if err := designForm(st).RunWithContext(cmd.Context()); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Cancelled."))
					return nil
				}
				return fmt.Errorf("running design form: %w", err)
			}

			l, err := st.layout()
			if err != nil {
				return err
			}
			data, err := layout.Marshal(layout.FromDomain(l))
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing layout file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n\n", out)
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderLegend(l))
			return nil
		},
	}

	lo.register(cmd, app)
	cmd.Flags().StringVarP(&out, "out", "o", "timewheel.yaml", "Layout file to write")
	return cmd
}
