package formatter

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// DefaultFaceRadius is the disk radius, in terminal rows, of the wheel face.
const DefaultFaceRadius = 8

type faceCell struct {
	ch    rune
	style *lipgloss.Style
}

// face is a character grid. Columns are twice as dense as rows so the
// wheel looks round in a typical terminal font.
type face struct {
	cells  [][]faceCell
	cx, cy int
}

func newFace(radius int) *face {
	cy := radius + 4
	rows := 2*cy + 1
	cols := 4*cy + 1
	cells := make([][]faceCell, rows)
	for r := range cells {
		cells[r] = make([]faceCell, cols)
		for c := range cells[r] {
			cells[r][c] = faceCell{ch: ' '}
		}
	}
	return &face{cells: cells, cx: 2 * cy, cy: cy}
}

// polar returns the cell at distance dist (rows) and clockwise angle phi
// from the top.
func (f *face) polar(dist, phi float64) (row, col int) {
	row = f.cy - int(math.Round(dist*math.Cos(phi)))
	col = f.cx + int(math.Round(2*dist*math.Sin(phi)))
	return row, col
}

func (f *face) put(row, col int, ch rune, style *lipgloss.Style) {
	if row < 0 || row >= len(f.cells) || col < 0 || col >= len(f.cells[row]) {
		return
	}
	f.cells[row][col] = faceCell{ch: ch, style: style}
}

func (f *face) text(row, col int, s string, style *lipgloss.Style) {
	for i, r := range []rune(s) {
		f.put(row, col+i, r, style)
	}
}

func (f *face) String() string {
	var b strings.Builder
	for _, row := range f.cells {
		line := make([]string, 0, len(row))
		for _, c := range row {
			if c.style == nil {
				line = append(line, string(c.ch))
				continue
			}
			line = append(line, c.style.Render(string(c.ch)))
		}
		b.WriteString(strings.TrimRight(strings.Join(line, ""), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// HourAt converts a clockwise angle from the top of the screen into a
// fractional hour on a wheel turned by rotation radians.
func HourAt(phi, rotation float64) float64 {
	h := math.Mod((phi-rotation)/domain.WedgeAngle, domain.WedgeCount)
	if h < 0 {
		h += domain.WedgeCount
	}
	return h
}

// SliceContains reports whether the fractional hour h lies in the slice,
// following the clockwise sweep from start to end.
func SliceContains(s domain.TimeSlice, h float64) bool {
	start, end := float64(s.StartHour), float64(s.EndHour)
	if start <= end {
		return h >= start && h < end
	}
	return h >= start || h < end
}

// RenderWheelFace draws the wheel in the terminal. Slices and hour
// labels turn with rotation; location markers stay fixed, as they do on
// the page, so turning the wheel moves hours under the locations.
func RenderWheelFace(layout domain.Layout, rotation float64, radius int) string {
	if radius <= 0 {
		radius = DefaultFaceRadius
	}
	f := newFace(radius)

	styles := make([]lipgloss.Style, len(layout.Slices))
	for i, s := range layout.Slices {
		styles[i] = SliceStyle(s.Label, i)
	}

	for row := range f.cells {
		for col := range f.cells[row] {
			dx := float64(col-f.cx) / 2
			dy := float64(row - f.cy)
			if math.Hypot(dx, dy) > float64(radius) {
				continue
			}
			h := HourAt(math.Atan2(dx, -dy), rotation)
			// Later slices stack on top.
			for i := len(layout.Slices) - 1; i >= 0; i-- {
				if SliceContains(layout.Slices[i], h) {
					f.put(row, col, '█', &styles[i])
					break
				}
			}
			if f.cells[row][col].style == nil {
				f.put(row, col, '·', &StyleDim)
			}
		}
	}

	for h := 0; h < domain.WedgeCount; h++ {
		label := strconv.Itoa(h)
		row, col := f.polar(float64(radius+1), float64(h)*domain.WedgeAngle+rotation)
		f.text(row, col-len(label)/2, label, &StyleFg)
	}

	for _, loc := range layout.Locations {
		row, col := f.polar(float64(radius+3), float64(loc.HourOffset)*domain.WedgeAngle)
		f.put(row, col, markerRune(loc.Name), &StyleHeader)
	}

	return f.String()
}

func markerRune(name string) rune {
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
	}
	return '◆'
}

// RenderLegend lists slices and locations with their terminal colours.
func RenderLegend(layout domain.Layout) string {
	var b strings.Builder
	for i, s := range layout.Slices {
		style := SliceStyle(s.Label, i)
		b.WriteString(style.Render("██") + " " + s.Label + Dim(" "+strconv.Itoa(s.StartHour)+"–"+strconv.Itoa(s.EndHour)) + "\n")
	}
	for _, loc := range layout.Locations {
		b.WriteString(StyleHeader.Render(string(markerRune(loc.Name))) + "  " + loc.Name + Dim(" @"+strconv.Itoa(loc.HourOffset)) + "\n")
	}
	return b.String()
}
