package geometry

import (
	"math"

	"github.com/alexanderramin/timewheel/internal/domain"
)

// MarkerInset is how far inside the wheel radius location labels sit.
const MarkerInset = 15

// MarkerPlacement is where and how a location label is drawn.
type MarkerPlacement struct {
	Angle    float64
	Top      float64
	Left     float64
	Rotation float64
	// Flipped is set when the label was turned by an extra half-turn to
	// stay upright on the left half of the wheel.
	Flipped bool
}

// PlaceMarker positions a marker for hour on a wheel of the given radius.
//
// The flip test θ > π/2 is evaluated on the exact hour (2h > WedgeCount)
// so the hour at the bottom of the wheel never flips through rounding.
func PlaceMarker(hour, radius int) MarkerPlacement {
	var conv MarkerConvention
	theta := conv.Angle(hour)
	top, left := conv.Offsets(hour, float64(radius-MarkerInset))

	p := MarkerPlacement{
		Angle:    theta,
		Top:      top,
		Left:     left,
		Rotation: theta,
	}
	if 2*hour > domain.WedgeCount {
		p.Rotation += math.Pi
		p.Flipped = true
	}
	return p
}

// Transform is the CSS transform applied to the label.
func (p MarkerPlacement) Transform() string {
	return RotateZ(p.Rotation)
}

// RotateZ formats a rotation in radians as a CSS transform.
func RotateZ(rad float64) string {
	return "rotateZ(" + FormatNumber(rad) + "rad)"
}
