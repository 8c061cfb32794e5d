package dom

import "strconv"

// Container ids the renderer expects to find in the page.
const (
	PageID      = "page"
	WheelBoxID  = "wheel-box"
	LocationsID = "locations"
	WheelID     = "wheel"
)

// DefaultStylesheet colours the built-in slice classes and positions the
// location labels. Slice colours are keyed purely by class name.
const DefaultStylesheet = `body{margin:0;background:#282828;color:#ebdbb2;font-family:sans-serif}
#page{display:flex;align-items:center;justify-content:center;min-height:100vh}
#wheel-box{position:relative}
#wheel{overflow:visible;transition:transform .2s ease-out}
#wheel text{fill:#ebdbb2;font-size:11px;text-anchor:middle;dominant-baseline:middle}
#wheel line{stroke:#928374}
#locations{position:absolute;top:50%;left:50%;width:0;height:0;pointer-events:none}
.location{position:absolute;white-space:nowrap;font-size:12px;transform-origin:0 0}
.awake-hours{fill:#458588;opacity:.6}
.work-hours{fill:#d79921;opacity:.7}
.social-hours{fill:#b16286;opacity:.5}
`

// NewWheelPage builds an empty page holding the three containers the
// wheel renders into. The svg viewBox is centered on the wheel origin.
func NewWheelPage(radius int) *HTMLDocument {
	d := NewHTMLDocument()
	d.Stylesheet = DefaultStylesheet

	head := d.CreateElement("head")
	meta := d.CreateElement("meta")
	meta.SetAttribute("charset", "utf-8")
	title := d.CreateElement("title")
	title.SetText("timewheel")
	style := d.CreateElement("style")
	style.SetText(d.Stylesheet)
	head.AppendChild(meta)
	head.AppendChild(title)
	head.AppendChild(style)

	body := d.CreateElement("body")
	page := d.CreateElement("div")
	page.SetAttribute("id", PageID)
	box := d.CreateElement("div")
	box.SetAttribute("id", WheelBoxID)

	locations := d.CreateElement("div")
	locations.SetAttribute("id", LocationsID)

	size := strconv.Itoa(2 * radius)
	wheel := d.CreateElementNS(SVGNamespace, "svg")
	wheel.SetAttribute("id", WheelID)
	wheel.SetAttribute("xmlns", SVGNamespace)
	wheel.SetAttribute("width", size)
	wheel.SetAttribute("height", size)
	wheel.SetAttribute("viewBox", strconv.Itoa(-radius)+" "+strconv.Itoa(-radius)+" "+size+" "+size)

	box.AppendChild(wheel)
	box.AppendChild(locations)
	page.AppendChild(box)
	body.AppendChild(page)

	root := d.Root()
	root.SetAttribute("lang", "en")
	root.AppendChild(head)
	root.AppendChild(body)
	return d
}
