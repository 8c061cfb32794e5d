package cli

import (
	"fmt"

	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/alexanderramin/timewheel/internal/layout"
	"github.com/spf13/cobra"
)

// layoutOptions are the flags shared by every command that draws a wheel.
type layoutOptions struct {
	layoutPath string
	radius     int
	slices     sliceListFlag
	locations  locationListFlag
}

func (o *layoutOptions) register(cmd *cobra.Command, app *App) {
	cmd.Flags().StringVar(&o.layoutPath, "layout", app.Config.LayoutPath, "Layout file (YAML or JSON)")
	cmd.Flags().IntVar(&o.radius, "radius", app.Config.Radius, "Wheel radius in pixels")
	cmd.Flags().Var(&o.slices, "slice", "Activity band, repeatable (e.g. work-hours:9-17)")
	cmd.Flags().Var(&o.locations, "location", "Location marker, repeatable (e.g. berlin:10)")
}

// resolve builds the layout: the layout file or built-in tables first,
// then --slice and --location replace their whole lists, and an explicit
// --radius wins over the file.
func (o *layoutOptions) resolve(cmd *cobra.Command) (domain.Layout, error) {
	l := domain.DefaultLayout()
	l.Radius = o.radius

	if o.layoutPath != "" {
		f, err := layout.LoadFile(o.layoutPath)
		if err != nil {
			return domain.Layout{}, err
		}
		l = layout.ToDomain(f, o.radius)
		if cmd.Flags().Changed("radius") {
			l.Radius = o.radius
		}
	}

	if len(o.slices) > 0 {
		l.Slices = append([]domain.TimeSlice(nil), o.slices...)
	}
	if len(o.locations) > 0 {
		l.Locations = append([]domain.LocationMarker(nil), o.locations...)
	}
	if l.Radius < layout.MinRadius {
		return domain.Layout{}, fmt.Errorf("radius %d is too small (minimum %d)", l.Radius, layout.MinRadius)
	}
	return l, nil
}
