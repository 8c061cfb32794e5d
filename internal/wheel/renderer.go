// Package wheel draws the 24-hour time wheel into a document and owns
// its rotation state.
package wheel

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/timewheel/internal/dom"
	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/alexanderramin/timewheel/internal/geometry"
)

// ErrMissingContainer means the page lacks an element the wheel renders into.
var ErrMissingContainer = errors.New("missing container element")

// Renderer turns a Layout into SVG and HTML elements. It emits no
// colours: each sector carries its slice label as a class and an
// external stylesheet decides how it looks.
type Renderer struct {
	doc       dom.Document
	radius    int
	tickLines bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTickLines enables the short radial line drawn at every hour.
func WithTickLines(enabled bool) Option {
	return func(r *Renderer) { r.tickLines = enabled }
}

// NewRenderer creates a Renderer drawing a wheel of the given radius into doc.
func NewRenderer(doc dom.Document, radius int, opts ...Option) *Renderer {
	r := &Renderer{doc: doc, radius: radius}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Radius returns the wheel radius in pixels.
func (r *Renderer) Radius() int {
	return r.radius
}

// Render draws the whole layout: sectors first, then hour labels, then
// location markers. Containers are looked up by id and must exist.
func (r *Renderer) Render(layout domain.Layout) error {
	wheel := r.doc.GetElementByID(dom.WheelID)
	if wheel == nil {
		return fmt.Errorf("#%s: %w", dom.WheelID, ErrMissingContainer)
	}
	locations := r.doc.GetElementByID(dom.LocationsID)
	if locations == nil {
		return fmt.Errorf("#%s: %w", dom.LocationsID, ErrMissingContainer)
	}

	r.RenderTimeSlices(wheel, layout.Slices)
	r.RenderHourTicks(wheel)
	r.RenderLocations(locations, layout.Locations)
	return nil
}

// RenderTimeSlices appends one closed sector path per slice, in order,
// so later slices stack on top of earlier ones.
func (r *Renderer) RenderTimeSlices(wheel *dom.Element, slices []domain.TimeSlice) {
	for _, s := range slices {
		arc := geometry.SliceArc(s, r.radius)
		path := r.doc.CreateElementNS(dom.SVGNamespace, "path")
		path.SetAttribute("d", arc.Path())
		path.SetAttribute("class", s.Label)
		wheel.AppendChild(path)
	}
}

// RenderHourTicks appends a text label for every hour, preceded by a
// tick line when tick lines are enabled.
func (r *Renderer) RenderHourTicks(wheel *dom.Element) {
	for i := 0; i < domain.WedgeCount; i++ {
		tick := geometry.Tick(i, r.radius)

		if r.tickLines {
			line := r.doc.CreateElementNS(dom.SVGNamespace, "line")
			line.SetAttribute("x1", strconv.Itoa(tick.Outer.X))
			line.SetAttribute("y1", strconv.Itoa(tick.Outer.Y))
			line.SetAttribute("x2", strconv.Itoa(tick.Inner.X))
			line.SetAttribute("y2", strconv.Itoa(tick.Inner.Y))
			wheel.AppendChild(line)
		}

		text := r.doc.CreateElementNS(dom.SVGNamespace, "text")
		text.SetAttribute("x", strconv.Itoa(tick.Label.X))
		text.SetAttribute("y", strconv.Itoa(tick.Label.Y))
		text.SetText(strconv.Itoa(i))
		wheel.AppendChild(text)
	}
}

// RenderLocations appends a positioned, rotated label per marker.
func (r *Renderer) RenderLocations(box *dom.Element, locations []domain.LocationMarker) {
	for _, loc := range locations {
		p := geometry.PlaceMarker(loc.HourOffset, r.radius)
		el := r.doc.CreateElement("div")
		el.SetText(loc.Name)
		el.SetAttribute("class", "location")
		el.SetStyle("top", geometry.FormatNumber(p.Top)+"px")
		el.SetStyle("left", geometry.FormatNumber(p.Left)+"px")
		el.SetStyle("transform", p.Transform())
		box.AppendChild(el)
	}
}
