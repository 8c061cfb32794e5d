package wheel

import (
	"regexp"
	"strconv"

	"github.com/alexanderramin/timewheel/internal/dom"
	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/alexanderramin/timewheel/internal/geometry"
)

// Key codes for the arrow keys that turn the wheel.
const (
	KeyLeft  = 37
	KeyRight = 39
)

// Direction is a single rotation step.
type Direction int

const (
	RotateNone Direction = iota
	RotateLeft
	RotateRight
)

func (d Direction) String() string {
	switch d {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionForKey maps a key code to a rotation step. Unknown keys map
// to RotateNone.
func DirectionForKey(code int) Direction {
	switch code {
	case KeyLeft:
		return RotateLeft
	case KeyRight:
		return RotateRight
	default:
		return RotateNone
	}
}

// RotationController owns the wheel's rotation. The angle is kept as a
// whole number of wedge steps and is never read back from the target;
// the target's transform is a write-only projection of it.
type RotationController struct {
	steps  int
	target *dom.Element
}

// NewRotationController creates a controller at angle 0. target may be
// nil, in which case nothing is projected.
func NewRotationController(target *dom.Element) *RotationController {
	return &RotationController{target: target}
}

// Angle returns the current rotation in radians. It is unbounded.
func (c *RotationController) Angle() float64 {
	return float64(c.steps) * domain.WedgeAngle
}

// Steps returns the signed number of wedges turned so far.
func (c *RotationController) Steps() int {
	return c.steps
}

// Rotate applies one step and projects the result. RotateNone changes nothing.
func (c *RotationController) Rotate(d Direction) bool {
	switch d {
	case RotateLeft:
		c.steps--
	case RotateRight:
		c.steps++
	default:
		return false
	}
	c.project()
	return true
}

// HandleKey rotates for the arrow key codes and ignores everything else.
func (c *RotationController) HandleKey(code int) bool {
	return c.Rotate(DirectionForKey(code))
}

// Transform is the CSS transform for the current angle.
func (c *RotationController) Transform() string {
	return geometry.RotateZ(c.Angle())
}

// SetTarget points the controller at a new element. A wheel that has
// already turned is projected onto it straight away.
func (c *RotationController) SetTarget(target *dom.Element) {
	c.target = target
	if c.steps != 0 {
		c.project()
	}
}

func (c *RotationController) project() {
	if c.target == nil {
		return
	}
	c.target.SetStyle("transform", c.Transform())
}

var rotatePattern = regexp.MustCompile(`rotateZ\((.*)rad\)`)

// ParseRotation extracts the angle from a rotateZ(...rad) transform.
// Anything that does not parse yields 0.
func ParseRotation(transform string) float64 {
	m := rotatePattern.FindStringSubmatch(transform)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}
