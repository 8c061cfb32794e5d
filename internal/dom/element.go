// Package dom is the render target the wheel draws into: a small
// document tree with namespaced element creation, attributes, inline
// style, text content and lookup by id.
package dom

import "strings"

// SVGNamespace is the namespace URI for vector graphics elements.
const SVGNamespace = "http://www.w3.org/2000/svg"

// Document is the subset of a document object model the renderer needs.
type Document interface {
	CreateElement(tag string) *Element
	CreateElementNS(namespace, tag string) *Element
	GetElementByID(id string) *Element
}

type attr struct {
	name  string
	value string
}

// Element is a node in the document tree.
type Element struct {
	Tag       string
	Namespace string

	attrs    []attr
	style    []attr
	text     string
	children []*Element
	parent   *Element
	owner    *HTMLDocument
}

// SetAttribute sets name to value, replacing any earlier value in place.
func (e *Element) SetAttribute(name, value string) {
	if name == "style" {
		e.style = parseStyle(value)
		return
	}
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs[i].value = value
			e.owner.reindex(e)
			return
		}
	}
	e.attrs = append(e.attrs, attr{name: name, value: value})
	e.owner.reindex(e)
}

// Attribute returns the value of name and whether it was set.
func (e *Element) Attribute(name string) (string, bool) {
	if name == "style" {
		if len(e.style) == 0 {
			return "", false
		}
		return formatStyle(e.style), true
	}
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// ID is shorthand for the id attribute.
func (e *Element) ID() string {
	v, _ := e.Attribute("id")
	return v
}

// SetStyle sets a single inline style property, replacing any earlier
// value. An empty value removes the property.
func (e *Element) SetStyle(property, value string) {
	for i := range e.style {
		if e.style[i].name == property {
			if value == "" {
				e.style = append(e.style[:i], e.style[i+1:]...)
				return
			}
			e.style[i].value = value
			return
		}
	}
	if value != "" {
		e.style = append(e.style, attr{name: property, value: value})
	}
}

// Style returns the inline value of property, or "".
func (e *Element) Style(property string) string {
	for _, s := range e.style {
		if s.name == property {
			return s.value
		}
	}
	return ""
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) {
	e.text = text
}

// Text returns the element's own text content.
func (e *Element) Text() string {
	return e.text
}

// AppendChild adds child as the last child of e, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	e.owner.index(child)
}

func (e *Element) removeChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.owner.unindex(child)
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Children returns the element's children in document order.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element {
	return e.parent
}

// ChildrenByTag returns the direct children with the given tag.
func (e *Element) ChildrenByTag(tag string) []*Element {
	var out []*Element
	for _, c := range e.children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

func parseStyle(s string) []attr {
	var out []attr
	for _, decl := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		out = append(out, attr{name: name, value: value})
	}
	return out
}

func formatStyle(style []attr) string {
	parts := make([]string, 0, len(style))
	for _, s := range style {
		parts = append(parts, s.name+": "+s.value)
	}
	return strings.Join(parts, "; ")
}
