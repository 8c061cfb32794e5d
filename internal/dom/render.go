package dom

import (
	"bufio"
	"fmt"
	"html"
	"io"
)

var voidElements = map[string]bool{
	"meta": true,
	"link": true,
	"br":   true,
}

// WriteHTML serialises the whole document, doctype included.
func (d *HTMLDocument) WriteHTML(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<!DOCTYPE html>\n")
	writeElement(bw, d.root, false)
	bw.WriteString("\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing html: %w", err)
	}
	return nil
}

// WriteSVG serialises the element with the given id as a standalone SVG
// document, embedding the stylesheet so class-based theming still applies.
func (d *HTMLDocument) WriteSVG(w io.Writer, id string) error {
	svg := d.GetElementByID(id)
	if svg == nil {
		return fmt.Errorf("element #%s: %w", id, ErrNotFound)
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	writeOpenTag(bw, svg, true)
	if d.Stylesheet != "" {
		bw.WriteString("<style>")
		bw.WriteString(html.EscapeString(d.Stylesheet))
		bw.WriteString("</style>")
	}
	writeContent(bw, svg)
	fmt.Fprintf(bw, "</%s>\n", svg.Tag)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

func writeElement(w *bufio.Writer, e *Element, standalone bool) {
	writeOpenTag(w, e, standalone)
	if voidElements[e.Tag] && e.Namespace == "" {
		return
	}
	writeContent(w, e)
	fmt.Fprintf(w, "</%s>", e.Tag)
}

func writeOpenTag(w *bufio.Writer, e *Element, standalone bool) {
	w.WriteString("<" + e.Tag)
	if standalone && e.Namespace != "" {
		if _, ok := e.Attribute("xmlns"); !ok {
			fmt.Fprintf(w, ` xmlns="%s"`, e.Namespace)
		}
	}
	for _, a := range e.attrs {
		fmt.Fprintf(w, ` %s="%s"`, a.name, html.EscapeString(a.value))
	}
	if len(e.style) > 0 {
		fmt.Fprintf(w, ` style="%s"`, html.EscapeString(formatStyle(e.style)))
	}
	w.WriteString(">")
}

func writeContent(w *bufio.Writer, e *Element) {
	if e.text != "" {
		if e.Tag == "style" {
			w.WriteString(e.text)
		} else {
			w.WriteString(html.EscapeString(e.text))
		}
	}
	for _, c := range e.children {
		writeElement(w, c, false)
	}
}
