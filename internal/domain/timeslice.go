package domain

import (
	"fmt"
	"regexp"
)

var labelPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// TimeSlice is a named band of hours drawn as a sector of the wheel.
// Label doubles as the CSS class that an external stylesheet colours.
type TimeSlice struct {
	Label     string
	StartHour int
	EndHour   int
}

// Span returns EndHour - StartHour. It may be negative for slices that
// wrap past midnight.
func (s TimeSlice) Span() int {
	return s.EndHour - s.StartHour
}

// Validate checks that the label is a usable class selector and that
// both hours fall on the clock.
func (s TimeSlice) Validate() error {
	if s.Label == "" {
		return fmt.Errorf("slice label is required")
	}
	if !labelPattern.MatchString(s.Label) {
		return fmt.Errorf("slice label %q must be a CSS identifier (letters, digits, '-', '_')", s.Label)
	}
	if !ValidHour(s.StartHour) {
		return fmt.Errorf("slice %q: start hour %d out of range [0,%d)", s.Label, s.StartHour, WedgeCount)
	}
	if !ValidHour(s.EndHour) {
		return fmt.Errorf("slice %q: end hour %d out of range [0,%d)", s.Label, s.EndHour, WedgeCount)
	}
	return nil
}

// ValidHour reports whether h is a wedge index on the clock.
func ValidHour(h int) bool {
	return h >= 0 && h < WedgeCount
}
