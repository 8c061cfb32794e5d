package cli

import (
	"github.com/alexanderramin/timewheel/internal/clock"
	"github.com/alexanderramin/timewheel/internal/config"
	"github.com/alexanderramin/timewheel/internal/page"
	"github.com/spf13/cobra"
)

// App holds the configuration and collaborators shared by all commands.
type App struct {
	Config   config.Config
	Clock    clock.Clock
	Observer page.Observer

	// IsInteractive reports whether stdin is a terminal. Commands that
	// take keyboard input refuse to start when it returns false.
	IsInteractive func() bool
}

func (a *App) clock() clock.Clock {
	if a.Clock == nil {
		return clock.Real{}
	}
	return a.Clock
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "timewheel" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "timewheel",
		Short: "Render and explore a 24-hour time wheel",
		Long: `timewheel draws a circular 24-hour clock face with coloured
activity bands, hour labels and location markers, and lets you
turn the wheel with the arrow keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRenderCmd(app),
		newGeometryCmd(app),
		newPreviewCmd(app),
		newDesignCmd(app),
	)

	return root
}
