package dom

// HTMLDocument is an in-memory Document. Elements are only reachable
// through GetElementByID once they are attached to the tree.
type HTMLDocument struct {
	root *Element
	ids  map[string]*Element

	// Stylesheet is emitted in the head of the page and inside
	// standalone SVG output.
	Stylesheet string
}

// NewHTMLDocument returns a document whose root is an empty <html> element.
func NewHTMLDocument() *HTMLDocument {
	d := &HTMLDocument{ids: make(map[string]*Element)}
	d.root = d.CreateElement("html")
	return d
}

// Root returns the <html> element.
func (d *HTMLDocument) Root() *Element {
	return d.root
}

func (d *HTMLDocument) CreateElement(tag string) *Element {
	return &Element{Tag: tag, owner: d}
}

func (d *HTMLDocument) CreateElementNS(namespace, tag string) *Element {
	return &Element{Tag: tag, Namespace: namespace, owner: d}
}

func (d *HTMLDocument) GetElementByID(id string) *Element {
	return d.ids[id]
}

func (d *HTMLDocument) attached(e *Element) bool {
	for n := e; n != nil; n = n.parent {
		if n == d.root {
			return true
		}
	}
	return false
}

// index registers e and its subtree once they are part of the tree.
func (d *HTMLDocument) index(e *Element) {
	if d == nil || !d.attached(e) {
		return
	}
	if id := e.ID(); id != "" {
		if _, taken := d.ids[id]; !taken {
			d.ids[id] = e
		}
	}
	for _, c := range e.children {
		d.index(c)
	}
}

func (d *HTMLDocument) unindex(e *Element) {
	if d == nil {
		return
	}
	if id := e.ID(); id != "" && d.ids[id] == e {
		delete(d.ids, id)
	}
	for _, c := range e.children {
		d.unindex(c)
	}
}

// reindex refreshes the lookup entry after an attribute change on e.
func (d *HTMLDocument) reindex(e *Element) {
	if d == nil {
		return
	}
	for id, el := range d.ids {
		if el == e {
			delete(d.ids, id)
		}
	}
	d.index(e)
}
