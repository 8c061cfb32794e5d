package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/timewheel/internal/clock"
	"github.com/alexanderramin/timewheel/internal/dom"
	"github.com/alexanderramin/timewheel/internal/page"
	"github.com/alexanderramin/timewheel/internal/wheel"
	"github.com/spf13/cobra"
)

const (
	formatHTML = "html"
	formatSVG  = "svg"
)

func newRenderCmd(app *App) *cobra.Command {
	var (
		lo        layoutOptions
		out       string
		format    string
		tickLines bool
		rotate    int
		logEvents bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the wheel page as HTML or SVG",
		Long: `Build the page, run the page-ready render and write the result.
--rotate replays that many arrow presses (negative turns left) through
the same throttled handler the interactive preview uses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatHTML && format != formatSVG {
				return fmt.Errorf("unknown format %q (use html or svg)", format)
			}
			l, err := lo.resolve(cmd)
			if err != nil {
				return err
			}

			opts := sessionOptions(app, tickLines, logEvents, cmd.ErrOrStderr())
			// Replayed presses are spaced one window apart on a private
			// clock so none of them is throttled away.
			replay := clock.NewManual(app.clock().Now())
			opts = append(opts, page.WithClock(replay))
			sess := page.NewSession(l, opts...)

			ctx := cmd.Context()
			if err := sess.Ready(ctx); err != nil {
				return err
			}
			replayRotation(ctx, sess, replay, rotate, app.Config.ThrottleWindow)

			if out == "" || out == "-" {
				return writePage(cmd.OutOrStdout(), sess.Document(), format)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			if err := writePage(f, sess.Document(), format); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing output file: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", out)
			return nil
		},
	}

	lo.register(cmd, app)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", formatHTML, "Output format: html or svg")
	cmd.Flags().BoolVar(&tickLines, "tick-lines", app.Config.TickLines, "Draw a tick line at every hour")
	cmd.Flags().IntVar(&rotate, "rotate", 0, "Arrow presses to replay before writing (negative = left)")
	cmd.Flags().BoolVar(&logEvents, "log-events", app.Config.LogEvents, "Log page events to stderr")

	return cmd
}

func sessionOptions(app *App, tickLines, logEvents bool, logOut io.Writer) []page.Option {
	opts := []page.Option{
		page.WithTickLines(tickLines),
		page.WithThrottleWindow(app.Config.ThrottleWindow),
		page.WithClock(app.clock()),
	}
	switch {
	case logEvents:
		opts = append(opts, page.WithObserver(page.NewLogObserver(logOut)))
	case app.Observer != nil:
		opts = append(opts, page.WithObserver(app.Observer))
	}
	return opts
}

func replayRotation(ctx context.Context, sess *page.Session, c *clock.Manual, steps int, window time.Duration) {
	if window <= 0 {
		window = time.Millisecond
	}
	code := wheel.KeyRight
	if steps < 0 {
		code = wheel.KeyLeft
		steps = -steps
	}
	for i := 0; i < steps; i++ {
		if i > 0 {
			c.Advance(window)
		}
		sess.KeyDown(ctx, code)
	}
}

func writePage(w io.Writer, doc *dom.HTMLDocument, format string) error {
	if format == formatSVG {
		return doc.WriteSVG(w, dom.WheelID)
	}
	return doc.WriteHTML(w)
}
