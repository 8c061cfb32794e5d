package layout

import "github.com/alexanderramin/timewheel/internal/domain"

// ToDomain converts a validated layout file into a domain.Layout.
// Missing radius falls back to fallbackRadius.
func ToDomain(f *File, fallbackRadius int) domain.Layout {
	l := domain.Layout{Radius: f.Radius}
	if l.Radius == 0 {
		l.Radius = fallbackRadius
	}
	for _, s := range f.Slices {
		l.Slices = append(l.Slices, domain.TimeSlice{
			Label:     s.Label,
			StartHour: deref(s.Start),
			EndHour:   deref(s.End),
		})
	}
	for _, loc := range f.Locations {
		l.Locations = append(l.Locations, domain.LocationMarker{
			Name:       loc.Name,
			HourOffset: deref(loc.Hour),
		})
	}
	return l
}

// FromDomain builds a layout file describing l.
func FromDomain(l domain.Layout) *File {
	f := &File{Radius: l.Radius}
	for _, s := range l.Slices {
		f.Slices = append(f.Slices, SliceEntry{Label: s.Label, Start: intPtr(s.StartHour), End: intPtr(s.EndHour)})
	}
	for _, loc := range l.Locations {
		f.Locations = append(f.Locations, LocationEntry{Name: loc.Name, Hour: intPtr(loc.HourOffset)})
	}
	return f
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func intPtr(v int) *int { return &v }
