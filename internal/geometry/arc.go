package geometry

import (
	"fmt"

	"github.com/alexanderramin/timewheel/internal/domain"
)

// SliceInset is how far inside the wheel radius sector arcs are drawn.
const SliceInset = 10

// SectorArc is a closed wedge from Start along the circle to End and
// back to the wheel center.
type SectorArc struct {
	Start    Point
	End      Point
	Radius   int
	LargeArc int
}

// LargeArcFlag is 1 when the slice spans more than half the clock, so
// SVG fills the longer of the two possible arcs.
func LargeArcFlag(s domain.TimeSlice) int {
	if s.Span() > domain.WedgeCount/2 {
		return 1
	}
	return 0
}

// SliceArc computes the sector for a slice on a wheel of the given radius.
func SliceArc(s domain.TimeSlice, radius int) SectorArc {
	r := radius - SliceInset
	return SectorArc{
		Start:    ArcConvention.Point(s.StartHour, r),
		End:      ArcConvention.Point(s.EndHour, r),
		Radius:   r,
		LargeArc: LargeArcFlag(s),
	}
}

// Path renders the arc as SVG path data. The sweep flag is always 1.
func (a SectorArc) Path() string {
	return fmt.Sprintf("M %d %d A %d %d 0 %d 1 %d %d L 0 0 Z",
		a.Start.X, a.Start.Y,
		a.Radius, a.Radius,
		a.LargeArc,
		a.End.X, a.End.Y)
}
