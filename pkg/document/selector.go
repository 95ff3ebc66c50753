package document

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

func compileSelector(raw string) (cascadia.Selector, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty selector", ErrInvalidSelector)
	}
	sel, err := cascadia.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, raw, err)
	}
	return sel, nil
}

// ValidateSelector reports whether raw is a valid CSS selector.
func ValidateSelector(raw string) error {
	_, err := compileSelector(raw)
	return err
}

// match runs sel against the descendants of e. The whole tree e belongs to
// is mirrored so combinators can see ancestors outside e.
func (e *Element) match(sel cascadia.Selector, first bool) []*Element {
	top := e
	for top.parent != nil {
		top = top.parent
	}

	index := make(map[*html.Node]*Element)
	var scope *html.Node
	var build func(el *Element) *html.Node
	build = func(el *Element) *html.Node {
		var n *html.Node
		if el.Kind == KindElement && el.Tag == "" {
			n = &html.Node{Type: html.DocumentNode}
		} else {
			n = shallowNode(el)
		}
		index[n] = el
		if el == e {
			scope = n
		}
		for _, child := range el.children {
			n.AppendChild(build(child))
		}
		return n
	}
	build(top)

	if first {
		if n := cascadia.Query(scope, sel); n != nil {
			return []*Element{index[n]}
		}
		return nil
	}
	nodes := cascadia.QueryAll(scope, sel)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, index[n])
	}
	return out
}
