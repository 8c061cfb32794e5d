package domain

import "math"

// WedgeCount is the number of equal wedges the wheel is divided into,
// one per hour of the day.
const WedgeCount = 24

// WedgeAngle is the angular width of a single wedge in radians.
const WedgeAngle = 2 * math.Pi / WedgeCount

// DefaultRadius is the outer radius of the wheel in pixels.
const DefaultRadius = 150
