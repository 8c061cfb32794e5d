package formatter

import (
	"testing"

	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatGeometry(t *testing.T) {
	out := stripANSI(FormatGeometry(domain.DefaultLayout()))

	assert.Contains(t, out, "SLICES")
	assert.Contains(t, out, "M 110 85 A 140 140 0 0 1 -130 52 L 0 0 Z")
	assert.Contains(t, out, "HOURS")
	assert.Contains(t, out, "(77, 77)")
	assert.Contains(t, out, "3.1416")
	assert.Contains(t, out, "LOCATIONS")
	assert.Contains(t, out, "san francisco")
	assert.NotContains(t, out, "flipped")
}

func TestFormatGeometry_FlaggedMarker(t *testing.T) {
	l := domain.Layout{
		Radius:    150,
		Locations: []domain.LocationMarker{{Name: "tokyo", HourOffset: 18}},
	}
	out := stripANSI(FormatGeometry(l))
	assert.Contains(t, out, "flipped")
	assert.Contains(t, out, "-135.00")
}
