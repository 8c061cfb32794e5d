package geometry

import (
	"math"
	"testing"

	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/stretchr/testify/assert"
)

func normalize(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func TestAngleForTick_InjectiveModuloTurn(t *testing.T) {
	seen := make(map[int]float64)
	for h := 0; h < domain.WedgeCount; h++ {
		a := normalize(AngleForTick(h))
		for other, b := range seen {
			diff := math.Abs(a - b)
			diff = math.Min(diff, 2*math.Pi-diff)
			assert.Greater(t, diff, 1e-9, "hours %d and %d share an angle", h, other)
		}
		seen[h] = a
	}
}

func TestRadialConvention_HourZeroAtTop(t *testing.T) {
	assert.InDelta(t, math.Pi, AngleForTick(0), 1e-12)
	assert.InDelta(t, math.Pi+0.125, ArcConvention.Angle(0), 1e-12)

	// y grows downward on screen, so the top of the wheel is negative y.
	p := TickConvention.Point(0, 100)
	assert.Equal(t, -100, p.Y)
}

func TestRadialConvention_AdvancesClockwise(t *testing.T) {
	// Hour 6 is on the right, hour 18 on the left.
	right := TickConvention.Point(6, 110)
	left := TickConvention.Point(18, 110)
	assert.Equal(t, 110, right.X)
	assert.Equal(t, -110, left.X)
}

func TestRadialConvention_FloorsCoordinates(t *testing.T) {
	p := TickConvention.Point(3, 110)
	assert.Equal(t, Point{X: 77, Y: -78}, p)

	p = TickConvention.Point(15, 110)
	assert.Equal(t, Point{X: -78, Y: 77}, p)
}

func TestMarkerConvention_Angle(t *testing.T) {
	var c MarkerConvention
	assert.InDelta(t, -math.Pi/2, c.Angle(0), 1e-12)
	assert.InDelta(t, math.Pi/2, c.Angle(12), 1e-12)
	assert.InDelta(t, math.Pi, c.Angle(18), 1e-12)
}

func TestMarkerConvention_OffsetsAreSwapped(t *testing.T) {
	var c MarkerConvention
	top, left := c.Offsets(2, 135)
	// θ(2) = -π/3: sine drives top, cosine drives left.
	assert.InDelta(t, -116.913429510899, top, 1e-9)
	assert.InDelta(t, 67.5, left, 1e-9)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "-0.2617993877991494", FormatNumber(-0.2617993877991494))
	assert.Equal(t, "135", FormatNumber(135))
}
