package wheel

import (
	"math"
	"strconv"
	"testing"

	"github.com/alexanderramin/timewheel/internal/dom"
	"github.com/stretchr/testify/assert"
)

const step = 2 * math.Pi / 24

func TestRotation_StartsAtZero(t *testing.T) {
	c := NewRotationController(nil)
	assert.Equal(t, 0.0, c.Angle())
	assert.Equal(t, "rotateZ(0rad)", c.Transform())
}

func TestRotation_SingleSteps(t *testing.T) {
	left := NewRotationController(nil)
	assert.True(t, left.HandleKey(KeyLeft))
	assert.Equal(t, -step, left.Angle())

	right := NewRotationController(nil)
	assert.True(t, right.HandleKey(KeyRight))
	assert.Equal(t, step, right.Angle())
}

func TestRotation_AlternatingReturnsToZero(t *testing.T) {
	c := NewRotationController(nil)
	for i := 0; i < 5; i++ {
		c.HandleKey(KeyLeft)
		c.HandleKey(KeyRight)
	}
	assert.Equal(t, 0.0, c.Angle())

	for i := 0; i < 5; i++ {
		c.HandleKey(KeyLeft)
	}
	for i := 0; i < 5; i++ {
		c.HandleKey(KeyRight)
	}
	assert.Equal(t, 0.0, c.Angle())
}

func TestRotation_Unbounded(t *testing.T) {
	c := NewRotationController(nil)
	for i := 0; i < 30; i++ {
		c.Rotate(RotateRight)
	}
	assert.Equal(t, 30, c.Steps())
	assert.InDelta(t, 30*step, c.Angle(), 1e-12)
	assert.Greater(t, c.Angle(), 2*math.Pi)
}

func TestRotation_IgnoresOtherKeys(t *testing.T) {
	doc := dom.NewWheelPage(150)
	wheel := doc.GetElementByID(dom.WheelID)
	c := NewRotationController(wheel)

	for _, code := range []int{0, 13, 38, 40, 65} {
		assert.False(t, c.HandleKey(code), "key %d", code)
	}
	assert.Equal(t, 0.0, c.Angle())
	assert.Equal(t, "", wheel.Style("transform"), "no-op keys do not touch the target")
}

func TestRotation_ProjectsSoleTransform(t *testing.T) {
	doc := dom.NewWheelPage(150)
	wheel := doc.GetElementByID(dom.WheelID)
	wheel.SetStyle("transform", "scale(2) rotateZ(9rad)")

	c := NewRotationController(wheel)
	c.HandleKey(KeyRight)

	assert.Equal(t, c.Transform(), wheel.Style("transform"))
	assert.NotContains(t, wheel.Style("transform"), "scale")
}

func TestRotation_SetTarget(t *testing.T) {
	doc := dom.NewWheelPage(150)
	wheel := doc.GetElementByID(dom.WheelID)

	c := NewRotationController(nil)
	c.SetTarget(wheel)
	assert.Equal(t, "", wheel.Style("transform"), "an unturned wheel is left alone")

	c.SetTarget(nil)
	c.HandleKey(KeyLeft)
	c.SetTarget(wheel)
	assert.Equal(t, "rotateZ("+strconv.FormatFloat(-step, 'g', -1, 64)+"rad)", wheel.Style("transform"))

	c.HandleKey(KeyRight)
	assert.Equal(t, "rotateZ(0rad)", wheel.Style("transform"))
}

func TestRotation_NeverReadsTargetBack(t *testing.T) {
	doc := dom.NewWheelPage(150)
	wheel := doc.GetElementByID(dom.WheelID)
	c := NewRotationController(wheel)
	c.HandleKey(KeyRight)

	wheel.SetStyle("transform", "rotateZ(5rad)")
	c.HandleKey(KeyRight)
	assert.Equal(t, 2*step, c.Angle())
}

func TestParseRotation_RoundTrip(t *testing.T) {
	c := NewRotationController(nil)
	for i := 0; i < 7; i++ {
		c.HandleKey(KeyLeft)
		assert.InDelta(t, c.Angle(), ParseRotation(c.Transform()), 1e-15)
	}
	for i := 0; i < 20; i++ {
		c.HandleKey(KeyRight)
		assert.InDelta(t, c.Angle(), ParseRotation(c.Transform()), 1e-15)
	}
}

func TestParseRotation_Defaults(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"scale(2)", 0},
		{"rotateZ(abcrad)", 0},
		{"rotateZ(-0.5rad)", -0.5},
		{"rotateZ(1e-3rad)", 0.001},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRotation(tt.in), tt.in)
	}
}

func TestDirectionForKey(t *testing.T) {
	assert.Equal(t, RotateLeft, DirectionForKey(37))
	assert.Equal(t, RotateRight, DirectionForKey(39))
	assert.Equal(t, RotateNone, DirectionForKey(40))
	assert.Equal(t, "left", RotateLeft.String())
	assert.Equal(t, "none", RotateNone.String())
}
