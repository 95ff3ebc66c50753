package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML tree. Full pages keep their doctype; fragments
// are rooted directly under the document root.
type Document struct {
	root    *Element
	doctype string
}

// New returns an empty document.
func New() *Document {
	return &Document{root: &Element{Kind: KindElement}}
}

// Parse reads a complete HTML page.
func Parse(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("document: parse: %w", err)
	}

	doc := New()
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.DoctypeNode {
			doc.doctype = child.Data
			continue
		}
		if el := fromNode(child); el != nil {
			doc.root.AppendChild(el)
		}
	}
	return doc, nil
}

// ParseFragment reads an HTML fragment as if it appeared inside <body>.
func ParseFragment(r io.Reader) (*Document, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, fmt.Errorf("document: parse fragment: %w", err)
	}

	doc := New()
	for _, node := range nodes {
		if el := fromNode(node); el != nil {
			doc.root.AppendChild(el)
		}
	}
	return doc, nil
}

// ParseString is a convenience wrapper around ParseFragment.
func ParseString(markup string) (*Document, error) {
	return ParseFragment(strings.NewReader(markup))
}

// Root returns the document root. It has no tag and is never rendered.
func (d *Document) Root() *Element {
	return d.root
}

// Query returns the first element matching selector, or nil.
func (d *Document) Query(selector string) *Element {
	return d.root.Query(selector)
}

// QueryAll returns every element matching selector.
func (d *Document) QueryAll(selector string) []*Element {
	return d.root.QueryAll(selector)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if d.doctype != "" {
		if _, err := io.WriteString(w, "<!DOCTYPE "+d.doctype+">"); err != nil {
			return err
		}
	}
	for _, child := range d.root.children {
		if err := RenderElement(w, child); err != nil {
			return err
		}
	}
	return nil
}

// HTML returns the rendered document.
func (d *Document) HTML() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// RenderElement writes a single element and its subtree as HTML.
func RenderElement(w io.Writer, e *Element) error {
	if e == nil {
		return nil
	}
	if err := html.Render(w, toNode(e)); err != nil {
		return fmt.Errorf("document: render: %w", err)
	}
	return nil
}

// OuterHTML returns the markup of e and its subtree.
func OuterHTML(e *Element) string {
	var buf bytes.Buffer
	if err := RenderElement(&buf, e); err != nil {
		return ""
	}
	return buf.String()
}

func fromNode(n *html.Node) *Element {
	switch n.Type {
	case html.TextNode:
		return NewText(n.Data)
	case html.ElementNode:
		el := NewElement(n.Data)
		for _, attr := range n.Attr {
			if attr.Namespace != "" {
				continue
			}
			el.SetAttr(attr.Key, attr.Val)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if sub := fromNode(child); sub != nil {
				el.AppendChild(sub)
			}
		}
		return el
	default:
		return nil
	}
}

func toNode(e *Element) *html.Node {
	node := shallowNode(e)
	for _, child := range e.children {
		node.AppendChild(toNode(child))
	}
	return node
}

// shallowNode converts e without its children.
func shallowNode(e *Element) *html.Node {
	if e.Kind == KindText {
		return &html.Node{Type: html.TextNode, Data: e.text}
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     e.Tag,
		DataAtom: atom.Lookup([]byte(e.Tag)),
	}
	for _, attr := range e.attrs {
		node.Attr = append(node.Attr, html.Attribute{Key: attr.Name, Val: attr.Value})
	}
	if len(e.classes) > 0 {
		node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: strings.Join(e.classes, " ")})
	}
	if len(e.style) > 0 {
		node.Attr = append(node.Attr, html.Attribute{Key: "style", Val: e.StyleString()})
	}
	return node
}
