package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/timewheel/internal/cli/formatter"
	"github.com/alexanderramin/timewheel/internal/page"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// errNotInteractive is returned by commands that need a keyboard.
var errNotInteractive = errors.New("this command needs an interactive terminal")

func newPreviewCmd(app *App) *cobra.Command {
	var (
		lo        layoutOptions
		writePath string
		faceSize  int
		logFile   string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Turn the wheel interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			l, err := lo.resolve(cmd)
			if err != nil {
				return err
			}

			opts := sessionOptions(app, app.Config.TickLines, false, nil)
			if logFile != "" {
				f, err := tea.LogToFile(logFile, "timewheel")
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer f.Close()
				opts = append(opts, page.WithObserver(page.NewLogObserver(f)))
			}

			sess := page.NewSession(l, opts...)
			if err := sess.Ready(cmd.Context()); err != nil {
				return err
			}

			p := tea.NewProgram(newPreviewModel(sess, writePath, faceSize), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running preview: %w", err)
			}
			return nil
		},
	}

	lo.register(cmd, app)
	cmd.Flags().StringVar(&writePath, "write", "timewheel.html", "File the w key writes the page to")
	cmd.Flags().IntVar(&faceSize, "face-size", formatter.DefaultFaceRadius, "Terminal wheel radius in rows")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Log page events to this file")
	return cmd
}
