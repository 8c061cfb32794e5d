package layout

import (
	"fmt"

	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/alexanderramin/timewheel/internal/geometry"
)

// MinRadius is the smallest radius that leaves room for the hour labels.
const MinRadius = geometry.TickLabelInset + 1

// Validate checks the layout file for errors before conversion.
// Returns every problem found.
func Validate(f *File) []error {
	var errs []error

	if f.Radius != 0 && f.Radius < MinRadius {
		errs = append(errs, fmt.Errorf("radius: %d is too small (minimum %d)", f.Radius, MinRadius))
	}

	for i, s := range f.Slices {
		errs = append(errs, validateSlice(i, s)...)
	}
	for i, l := range f.Locations {
		errs = append(errs, validateLocation(i, l)...)
	}
	return errs
}

func validateSlice(i int, s SliceEntry) []error {
	var errs []error
	prefix := fmt.Sprintf("slices[%d]", i)

	if s.Start == nil {
		errs = append(errs, fmt.Errorf("%s.start is required", prefix))
	}
	if s.End == nil {
		errs = append(errs, fmt.Errorf("%s.end is required", prefix))
	}
	if len(errs) > 0 {
		if s.Label == "" {
			errs = append(errs, fmt.Errorf("%s.label is required", prefix))
		}
		return errs
	}

	ts := domain.TimeSlice{Label: s.Label, StartHour: *s.Start, EndHour: *s.End}
	if err := ts.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
	}
	return errs
}

func validateLocation(i int, l LocationEntry) []error {
	prefix := fmt.Sprintf("locations[%d]", i)
	if l.Hour == nil {
		return []error{fmt.Errorf("%s.hour is required", prefix)}
	}
	loc := domain.LocationMarker{Name: l.Name, HourOffset: *l.Hour}
	if err := loc.Validate(); err != nil {
		return []error{fmt.Errorf("%s: %w", prefix, err)}
	}
	return nil
}
