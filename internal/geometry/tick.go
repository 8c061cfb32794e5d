package geometry

// Radial distances for the parts of an hour tick, measured inward from
// the wheel radius.
const (
	TickLabelInset = 40
	TickLineInset  = 20
)

// HourTick holds every point needed to draw one hour: the label anchor
// and the two ends of the optional tick line.
type HourTick struct {
	Hour  int
	Label Point
	Outer Point
	Inner Point
}

// Tick computes the points for hour on a wheel of the given radius.
func Tick(hour, radius int) HourTick {
	return HourTick{
		Hour:  hour,
		Label: TickConvention.Point(hour, radius-TickLabelInset),
		Outer: TickConvention.Point(hour, radius),
		Inner: TickConvention.Point(hour, radius-TickLineInset),
	}
}
