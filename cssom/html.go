package cssom

import (
	"io"
	"strings"

	"github.com/cssparse/selectors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and returns the text of the embedded <style> elements, in document
// order.
func ExtractStyleElements(doc *html.Node) []string {
	var styles []string
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		if h := findElement(a, doc); h != nil {
			styles = append(styles, extractStyles(h)...)
		}
	}
	return styles
}

func extractStyles(h *html.Node) []string {
	var styles []string
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode || ch.DataAtom != atom.Style {
			continue
		}
		var b strings.Builder
		for t := ch.FirstChild; t != nil; t = t.NextSibling {
			if t.Type == html.TextNode {
				b.WriteString(t.Data)
			}
		}
		styles = append(styles, b.String())
	}
	return styles
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

// ParseHTML reads an HTML document and compiles the selectors of its
// embedded style sheets. Documents without doctype are compiled in quirks
// mode.
func ParseHTML(r io.Reader) ([]*StyleSheet, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	mode := selectors.HTMLQuirksMode
	for ch := doc.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.DoctypeNode {
			mode = selectors.HTMLStandardMode
			break
		}
	}
	var sheets []*StyleSheet
	for _, text := range ExtractStyleElements(doc) {
		sheet, err := Parse(text, mode)
		if err != nil {
			tracer().Errorf("skipping <style>: %v", err)
			continue
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}
