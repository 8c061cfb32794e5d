// Package geometry converts hours on the 24-wedge clock into screen
// coordinates and transforms.
//
// Two coordinate conventions are in use and they are deliberately kept
// apart:
//
//   - RadialConvention places SVG elements (sector arcs, tick marks,
//     hour labels) inside the wheel's own coordinate system, centered on
//     the origin. Hour 0 sits at the top and hours advance clockwise.
//     Coordinates are snapped to whole pixels.
//
//   - MarkerConvention places the HTML location labels, which live in a
//     box positioned with CSS top/left offsets. The sine component feeds
//     the vertical offset and the cosine component the horizontal one,
//     the reverse of the radial convention. Coordinates are not snapped.
package geometry

import (
	"math"
	"strconv"

	"github.com/alexanderramin/timewheel/internal/domain"
)

// Point is a pixel position in the wheel's coordinate system.
type Point struct {
	X int
	Y int
}

// RadialConvention maps an hour to an angle measured from the positive
// y axis, with a small constant Offset added to nudge elements off the
// exact wedge boundary.
type RadialConvention struct {
	Offset float64
}

var (
	// ArcConvention is used for sector endpoints.
	ArcConvention = RadialConvention{Offset: 3.0 / domain.WedgeCount}
	// TickConvention is used for hour labels and tick lines.
	TickConvention = RadialConvention{}
)

// Angle returns θ(h) = -2π·h/WedgeCount + π + Offset.
func (c RadialConvention) Angle(hour int) float64 {
	return float64(hour)*-2*math.Pi/domain.WedgeCount + math.Pi + c.Offset
}

// Point returns the floored (x, y) = (r·sin θ, r·cos θ) for the hour.
func (c RadialConvention) Point(hour, radius int) Point {
	return polarPoint(c.Angle(hour), float64(radius))
}

func polarPoint(theta, r float64) Point {
	return Point{
		X: int(math.Floor(r * math.Sin(theta))),
		Y: int(math.Floor(r * math.Cos(theta))),
	}
}

// AngleForTick is the screen angle of the hour label for the given hour.
func AngleForTick(hour int) float64 {
	return TickConvention.Angle(hour)
}

// MarkerConvention maps an hour to the rotation of a location label,
// measured so that hour 0 starts at the top of the wheel.
type MarkerConvention struct{}

// Angle returns θ(h) = 2π·h/WedgeCount - π/2.
func (MarkerConvention) Angle(hour int) float64 {
	return 2*math.Pi/domain.WedgeCount*float64(hour) - math.Pi/2
}

// Offsets returns the CSS (top, left) pair for a marker at the given
// radius. Top takes r·sin θ and Left takes r·cos θ.
func (c MarkerConvention) Offsets(hour int, radius float64) (top, left float64) {
	theta := c.Angle(hour)
	return radius * math.Sin(theta), radius * math.Cos(theta)
}

// FormatNumber renders a float in its shortest round-tripping form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
