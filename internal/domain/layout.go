package domain

// Layout is everything the renderer draws: the sectors, the markers and
// the wheel radius. It is built once at startup and never mutated.
type Layout struct {
	Radius    int
	Slices    []TimeSlice
	Locations []LocationMarker
}

// DefaultTimeSlices returns the built-in activity bands. Order matters:
// later slices are stacked on top of earlier ones.
func DefaultTimeSlices() []TimeSlice {
	return []TimeSlice{
		{Label: "awake-hours", StartHour: 7, EndHour: 23},
		{Label: "work-hours", StartHour: 9, EndHour: 17},
		{Label: "social-hours", StartHour: 8, EndHour: 22},
	}
}

// DefaultLocations returns the built-in location markers.
func DefaultLocations() []LocationMarker {
	return []LocationMarker{
		{Name: "montreal", HourOffset: 5},
		{Name: "san francisco", HourOffset: 2},
		{Name: "berlin", HourOffset: 10},
	}
}

// DefaultLayout returns the built-in layout at DefaultRadius.
func DefaultLayout() Layout {
	return Layout{
		Radius:    DefaultRadius,
		Slices:    DefaultTimeSlices(),
		Locations: DefaultLocations(),
	}
}

// Validate returns every problem found in the layout.
func (l Layout) Validate() []error {
	var errs []error
	for _, s := range l.Slices {
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, loc := range l.Locations {
		if err := loc.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
