package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses an HTML fragment into elements owned by d. It returns the
// top-level elements of the fragment in order. Text directly inside an
// element becomes its text; whitespace-only text is dropped.
func (d *Document) Parse(r io.Reader) ([]*Element, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	var out []*Element
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		out = append(out, d.convert(n))
	}
	return out, nil
}

func (d *Document) convert(n *html.Node) *Element {
	el := d.CreateElement(n.Data)
	for _, a := range n.Attr {
		el.SetAttr(a.Key, a.Val)
	}
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			el.AppendChild(d.convert(c))
		case html.TextNode:
			text.WriteString(c.Data)
		}
	}
	el.text = strings.TrimSpace(text.String())
	return el
}
