// Package formcheck validates a name and email form live. The root package
// offers shortcuts over the pkg/ building blocks for callers that only need
// to bind markup or serve the embedded page.
package formcheck

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formcheck/pkg/document"
	"github.com/goliatone/go-formcheck/pkg/page"
	"github.com/goliatone/go-formcheck/pkg/presenter/dom"
	"github.com/goliatone/go-formcheck/pkg/styles"
	"github.com/goliatone/go-formcheck/pkg/validator"
)

// Messages aliases validator.Messages for callers customising texts.
type Messages = validator.Messages

// Snapshot aliases dom.Snapshot.
type Snapshot = dom.Snapshot

// BindHTML parses markup and binds a validator to its #name, #email and
// .btn-validate elements.
func BindHTML(markup string, options ...dom.Option) (*dom.Binding, error) {
	doc, err := document.ParseFragment(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	return dom.Bind(doc, options...)
}

// RenderForm renders the embedded form fragment with data.
func RenderForm(data page.Data, options ...page.Option) (string, error) {
	engine, err := page.New(options...)
	if err != nil {
		return "", err
	}
	return engine.RenderForm(data)
}

// BindDefault renders the embedded form and binds it.
func BindDefault(options ...dom.Option) (*dom.Binding, error) {
	markup, err := RenderForm(page.DefaultData())
	if err != nil {
		return nil, err
	}
	return BindHTML(markup, options...)
}

// WithThemeSelector resolves styles through a go-theme selector. It returns
// an error when the selection fails so callers can fall back explicitly.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) (dom.Option, error) {
	st, err := styles.FromSelector(selector, name, variant)
	if err != nil {
		return nil, err
	}
	return dom.WithStyles(st), nil
}
