package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/alexanderramin/timewheel/internal/geometry"
)

// FormatGeometry renders the computed coordinates for every slice, hour
// tick and location marker of the layout.
func FormatGeometry(layout domain.Layout) string {
	var b strings.Builder

	b.WriteString(Header("Slices") + "\n")
	sliceRows := make([][]string, 0, len(layout.Slices))
	for _, s := range layout.Slices {
		arc := geometry.SliceArc(s, layout.Radius)
		sliceRows = append(sliceRows, []string{
			s.Label,
			strconv.Itoa(s.StartHour),
			strconv.Itoa(s.EndHour),
			strconv.Itoa(arc.LargeArc),
			arc.Path(),
		})
	}
	b.WriteString(RenderTable(
		[]string{"LABEL", "START", "END", "LARGE", "PATH"},
		sliceRows,
		AlignLeft, AlignRight, AlignRight, AlignRight, AlignLeft,
	))

	b.WriteString("\n" + Header("Hours") + "\n")
	tickRows := make([][]string, 0, domain.WedgeCount)
	for h := 0; h < domain.WedgeCount; h++ {
		tick := geometry.Tick(h, layout.Radius)
		tickRows = append(tickRows, []string{
			strconv.Itoa(h),
			fmt.Sprintf("%.4f", geometry.AngleForTick(h)),
			formatPoint(tick.Label),
			formatPoint(tick.Outer),
			formatPoint(tick.Inner),
		})
	}
	b.WriteString(RenderTable(
		[]string{"HOUR", "ANGLE", "LABEL", "OUTER", "INNER"},
		tickRows,
		AlignRight, AlignRight, AlignLeft, AlignLeft, AlignLeft,
	))

	b.WriteString("\n" + Header("Locations") + "\n")
	locRows := make([][]string, 0, len(layout.Locations))
	for _, loc := range layout.Locations {
		p := geometry.PlaceMarker(loc.HourOffset, layout.Radius)
		flipped := ""
		if p.Flipped {
			flipped = StyleYellow.Render("flipped")
		}
		locRows = append(locRows, []string{
			loc.Name,
			strconv.Itoa(loc.HourOffset),
			fmt.Sprintf("%.2f", p.Top),
			fmt.Sprintf("%.2f", p.Left),
			fmt.Sprintf("%.4f", p.Rotation),
			flipped,
		})
	}
	b.WriteString(RenderTable(
		[]string{"NAME", "HOUR", "TOP", "LEFT", "ROTATION", ""},
		locRows,
		AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft,
	))

	return b.String()
}

func formatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
