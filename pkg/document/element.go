package document

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Kind distinguishes element nodes from text nodes.
type Kind int

const (
	KindElement Kind = iota
	KindText
)

// Attribute is a single element attribute. The class and style attributes
// are managed separately through the class and style helpers.
type Attribute struct {
	Name  string
	Value string
}

// StyleProperty is one inline style declaration.
type StyleProperty struct {
	Name  string
	Value string
}

// Element is a node of the document tree.
type Element struct {
	Kind Kind
	Tag  string

	attrs    []Attribute
	classes  []string
	style    []StyleProperty
	text     string
	parent   *Element
	children []*Element
}

// NewElement creates a detached element.
func NewElement(tag string) *Element {
	return &Element{Kind: KindElement, Tag: strings.ToLower(strings.TrimSpace(tag))}
}

// NewText creates a detached text node.
func NewText(text string) *Element {
	return &Element{Kind: KindText, text: text}
}

// ID returns the id attribute.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// Attr returns the named attribute. The class and style attributes are
// reported in their serialised form.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	switch name {
	case "class":
		if len(e.classes) == 0 {
			return "", false
		}
		return strings.Join(e.classes, " "), true
	case "style":
		if len(e.style) == 0 {
			return "", false
		}
		return e.StyleString(), true
	}
	for _, attr := range e.attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets the named attribute, keeping its position if it exists.
func (e *Element) SetAttr(name, value string) {
	switch name {
	case "class":
		e.classes = strings.Fields(value)
		return
	case "style":
		e.style = parseStyle(value)
		return
	}
	for i, attr := range e.attrs {
		if attr.Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attribute{Name: name, Value: value})
}

// RemoveAttr deletes the named attribute.
func (e *Element) RemoveAttr(name string) {
	switch name {
	case "class":
		e.classes = nil
		return
	case "style":
		e.style = nil
		return
	}
	for i, attr := range e.attrs {
		if attr.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Attrs returns a copy of the plain attributes.
func (e *Element) Attrs() []Attribute {
	out := make([]Attribute, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// Classes returns a copy of the class list.
func (e *Element) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	if e == nil {
		return false
	}
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends classes that are not already present.
func (e *Element) AddClass(classes ...string) {
	for _, class := range classes {
		class = strings.TrimSpace(class)
		if class == "" || e.HasClass(class) {
			continue
		}
		e.classes = append(e.classes, class)
	}
}

// RemoveClass removes class if present.
func (e *Element) RemoveClass(class string) {
	for i, c := range e.classes {
		if c == class {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// Style returns the inline value of property.
func (e *Element) Style(property string) string {
	for _, prop := range e.style {
		if prop.Name == property {
			return prop.Value
		}
	}
	return ""
}

// SetStyle sets an inline style property. An empty value removes it.
func (e *Element) SetStyle(property, value string) {
	property = strings.ToLower(strings.TrimSpace(property))
	value = strings.TrimSpace(value)
	for i, prop := range e.style {
		if prop.Name != property {
			continue
		}
		if value == "" {
			e.style = append(e.style[:i], e.style[i+1:]...)
			return
		}
		e.style[i].Value = value
		return
	}
	if value == "" {
		return
	}
	e.style = append(e.style, StyleProperty{Name: property, Value: value})
}

// StyleString serialises the inline style declarations.
func (e *Element) StyleString() string {
	if len(e.style) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.style))
	for _, prop := range e.style {
		parts = append(parts, prop.Name+": "+prop.Value+";")
	}
	return strings.Join(parts, " ")
}

// Text returns the concatenated text of the element and its descendants.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	if e.Kind == KindText {
		return e.text
	}
	var b strings.Builder
	for _, child := range e.children {
		b.WriteString(child.Text())
	}
	return b.String()
}

// SetText replaces the children of e with a single text node.
func (e *Element) SetText(text string) {
	if e.Kind == KindText {
		e.text = text
		return
	}
	for _, child := range e.children {
		child.parent = nil
	}
	e.children = nil
	if text != "" {
		e.AppendChild(NewText(text))
	}
}

// Value returns the current value of a form control.
func (e *Element) Value() string {
	if e.Tag == "textarea" {
		return e.Text()
	}
	value, _ := e.Attr("value")
	return value
}

// SetValue sets the current value of a form control.
func (e *Element) SetValue(value string) {
	if e.Tag == "textarea" {
		e.SetText(value)
		return
	}
	e.SetAttr("value", value)
}

// Parent returns the parent element, or nil for a detached or root node.
func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// AppendChild attaches child as the last child of e, detaching it from its
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child == nil {
		return
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
}

// Remove detaches e from its parent.
func (e *Element) Remove() {
	if e == nil || e.parent == nil {
		return
	}
	siblings := e.parent.children
	for i, sibling := range siblings {
		if sibling == e {
			e.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// Query returns the first descendant of e matching the CSS selector in
// document order, or nil. Invalid selectors match nothing.
func (e *Element) Query(selector string) *Element {
	if e == nil {
		return nil
	}
	sel, err := compileSelector(selector)
	if err != nil {
		return nil
	}
	if found := e.match(sel, true); len(found) > 0 {
		return found[0]
	}
	return nil
}

// QueryAll returns every descendant of e matching the CSS selector.
func (e *Element) QueryAll(selector string) []*Element {
	if e == nil {
		return nil
	}
	sel, err := compileSelector(selector)
	if err != nil {
		return nil
	}
	return e.match(sel, false)
}

// parseStyle reads an inline style attribute. Malformed declarations drop
// the whole attribute.
func parseStyle(raw string) []StyleProperty {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if !strings.HasSuffix(raw, ";") {
		raw += ";"
	}
	decls, err := parser.ParseDeclarations(raw)
	if err != nil {
		return nil
	}
	var out []StyleProperty
	for _, decl := range decls {
		name := strings.ToLower(strings.TrimSpace(decl.Property))
		value := strings.TrimSpace(decl.Value)
		if name == "" || value == "" {
			continue
		}
		if decl.Important {
			value += " !important"
		}
		out = append(out, StyleProperty{Name: name, Value: value})
	}
	return out
}
