package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/spf13/pflag"
)

// sliceListFlag collects repeated --slice label:start-end values.
type sliceListFlag []domain.TimeSlice

var _ pflag.Value = (*sliceListFlag)(nil)

func (f *sliceListFlag) String() string {
	parts := make([]string, 0, len(*f))
	for _, s := range *f {
		parts = append(parts, fmt.Sprintf("%s:%d-%d", s.Label, s.StartHour, s.EndHour))
	}
	return strings.Join(parts, ",")
}

func (f *sliceListFlag) Set(v string) error {
	s, err := parseSlice(v)
	if err != nil {
		return err
	}
	*f = append(*f, s)
	return nil
}

func (f *sliceListFlag) Type() string { return "label:start-end" }

// locationListFlag collects repeated --location name:hour values.
type locationListFlag []domain.LocationMarker

var _ pflag.Value = (*locationListFlag)(nil)

func (f *locationListFlag) String() string {
	parts := make([]string, 0, len(*f))
	for _, l := range *f {
		parts = append(parts, fmt.Sprintf("%s:%d", l.Name, l.HourOffset))
	}
	return strings.Join(parts, ",")
}

func (f *locationListFlag) Set(v string) error {
	l, err := parseLocation(v)
	if err != nil {
		return err
	}
	*f = append(*f, l)
	return nil
}

func (f *locationListFlag) Type() string { return "name:hour" }

func parseSlice(v string) (domain.TimeSlice, error) {
	label, hours, ok := strings.Cut(v, ":")
	if !ok {
		return domain.TimeSlice{}, fmt.Errorf("slice %q: expected label:start-end", v)
	}
	startStr, endStr, ok := strings.Cut(hours, "-")
	if !ok {
		return domain.TimeSlice{}, fmt.Errorf("slice %q: expected label:start-end", v)
	}
	start, err := strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil {
		return domain.TimeSlice{}, fmt.Errorf("slice %q: invalid start hour", v)
	}
	end, err := strconv.Atoi(strings.TrimSpace(endStr))
	if err != nil {
		return domain.TimeSlice{}, fmt.Errorf("slice %q: invalid end hour", v)
	}
	s := domain.TimeSlice{Label: strings.TrimSpace(label), StartHour: start, EndHour: end}
	if err := s.Validate(); err != nil {
		return domain.TimeSlice{}, err
	}
	return s, nil
}

// parseLocation splits on the last colon so names may contain colons.
func parseLocation(v string) (domain.LocationMarker, error) {
	i := strings.LastIndex(v, ":")
	if i < 0 {
		return domain.LocationMarker{}, fmt.Errorf("location %q: expected name:hour", v)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(v[i+1:]))
	if err != nil {
		return domain.LocationMarker{}, fmt.Errorf("location %q: invalid hour", v)
	}
	l := domain.LocationMarker{Name: strings.TrimSpace(v[:i]), HourOffset: hour}
	if err := l.Validate(); err != nil {
		return domain.LocationMarker{}, err
	}
	return l, nil
}

// parseLocationList parses a comma separated list of name:hour pairs.
// Blank entries are skipped.
func parseLocationList(v string) ([]domain.LocationMarker, error) {
	var out []domain.LocationMarker
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		l, err := parseLocation(part)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
