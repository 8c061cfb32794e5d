package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/timewheel/internal/cli/formatter"
	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/alexanderramin/timewheel/internal/layout"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// wheelHuhTheme returns a huh theme using the formatter palette.
func wheelHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// designState holds the raw answers of the design wizard.
type designState struct {
	Slices      []string // labels picked from the built-in slices
	ExtraSlices string   // "label:start-end, ..."
	Locations   string   // "name:hour, ..."
	Radius      string
}

// newDesignState pre-fills the wizard from an existing layout.
func newDesignState(l domain.Layout) *designState {
	st := &designState{Radius: strconv.Itoa(l.Radius)}

	builtin := make(map[string]bool)
	for _, s := range domain.DefaultTimeSlices() {
		builtin[s.Label] = true
	}
	var extra []string
	for _, s := range l.Slices {
		if builtin[s.Label] {
			st.Slices = append(st.Slices, s.Label)
			continue
		}
		extra = append(extra, fmt.Sprintf("%s:%d-%d", s.Label, s.StartHour, s.EndHour))
	}
	st.ExtraSlices = strings.Join(extra, ", ")

	locs := make([]string, 0, len(l.Locations))
	for _, m := range l.Locations {
		locs = append(locs, fmt.Sprintf("%s:%d", m.Name, m.HourOffset))
	}
	st.Locations = strings.Join(locs, ", ")
	return st
}

// layout converts the answers into a layout. Built-in slices keep their
// table order, followed by the extra slices in the order typed.
func (st *designState) layout() (domain.Layout, error) {
	radius := parsePositiveInt(st.Radius, domain.DefaultRadius)
	if radius < layout.MinRadius {
		return domain.Layout{}, fmt.Errorf("radius %d is too small (minimum %d)", radius, layout.MinRadius)
	}

	picked := make(map[string]bool, len(st.Slices))
	for _, label := range st.Slices {
		picked[label] = true
	}
	var slices []domain.TimeSlice
	for _, s := range domain.DefaultTimeSlices() {
		if picked[s.Label] {
			slices = append(slices, s)
		}
	}
	extra, err := parseSliceList(st.ExtraSlices)
	if err != nil {
		return domain.Layout{}, err
	}
	slices = append(slices, extra...)

	locs, err := parseLocationList(st.Locations)
	if err != nil {
		return domain.Layout{}, err
	}

	return domain.Layout{Radius: radius, Slices: slices, Locations: locs}, nil
}

// designForm builds the huh form that fills st.
func designForm(st *designState) *huh.Form {
	options := make([]huh.Option[string], 0, 3)
	for _, s := range domain.DefaultTimeSlices() {
		label := fmt.Sprintf("%s (%s to %s)", s.Label, formatter.FormatHour(s.StartHour), formatter.FormatHour(s.EndHour))
		options = append(options, huh.NewOption(label, s.Label))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Activity bands").
				Description("Drawn in this order, later bands on top").
				Options(options...).
				Value(&st.Slices),
			huh.NewInput().
				Title("Extra bands").
				Description("label:start-end, comma separated").
				Placeholder("gym:6-7").
				Value(&st.ExtraSlices).
				Validate(validateSliceList),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Locations").
				Description("name:hour, comma separated").
				Placeholder("montreal:5, berlin:10").
				Value(&st.Locations).
				Validate(validateLocationList),
			huh.NewInput().
				Title("Radius (pixels)").
				Placeholder(strconv.Itoa(domain.DefaultRadius)).
				Value(&st.Radius).
				Validate(validateRadius),
		),
	).WithTheme(wheelHuhTheme()).WithShowHelp(false)
}

// parseSliceList parses a comma separated list of label:start-end values.
func parseSliceList(v string) ([]domain.TimeSlice, error) {
	var out []domain.TimeSlice
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		s, err := parseSlice(part)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// parsePositiveInt parses s as a positive integer, returning fallback if s is
// empty, non-numeric, or non-positive.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// validateRadius accepts empty or a radius large enough for the hour labels.
func validateRadius(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	if v < layout.MinRadius {
		return fmt.Errorf("radius must be at least %d", layout.MinRadius)
	}
	return nil
}

func validateSliceList(s string) error {
	_, err := parseSliceList(s)
	return err
}

func validateLocationList(s string) error {
	_, err := parseLocationList(s)
	return err
}
