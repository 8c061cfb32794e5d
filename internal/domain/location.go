package domain

import "fmt"

// LocationMarker is a named place pinned to the wheel at an hour offset.
type LocationMarker struct {
	Name       string
	HourOffset int
}

// Validate checks that the marker has a name and sits on the clock.
func (l LocationMarker) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("location name is required")
	}
	if !ValidHour(l.HourOffset) {
		return fmt.Errorf("location %q: hour %d out of range [0,%d)", l.Name, l.HourOffset, WedgeCount)
	}
	return nil
}
