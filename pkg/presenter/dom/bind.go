package dom

import (
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-formcheck/pkg/document"
	"github.com/goliatone/go-formcheck/pkg/styles"
	"github.com/goliatone/go-formcheck/pkg/validator"
)

// Selectors of the elements the widget binds to.
const (
	SelectorName   = "#name"
	SelectorEmail  = "#email"
	SelectorSubmit = ".btn-validate"
)

// Option configures Bind.
type Option func(*bindConfig)

type bindConfig struct {
	styles     styles.Styles
	validators []validator.Option
}

// WithStyles overrides the visual cues.
func WithStyles(s styles.Styles) Option {
	return func(cfg *bindConfig) {
		cfg.styles = s
	}
}

// WithValidatorOptions forwards options to the FormValidator.
func WithValidatorOptions(options ...validator.Option) Option {
	return func(cfg *bindConfig) {
		cfg.validators = append(cfg.validators, options...)
	}
}

// Binding ties a FormValidator to the elements of a document. Input, Submit,
// Snapshot, HTML and the scheduled reset serialise on the binding's lock, so
// any scheduler is safe. Callers that touch the document directly must do so
// from the goroutine that drives the binding.
type Binding struct {
	mu sync.Mutex

	doc       *document.Document
	validator *validator.FormValidator
	fields    map[validator.FieldID]*FieldPresenter
	submit    *SubmitControl
	notice    *Notice
}

// Bind looks up the name and email inputs and the submit button in doc and
// returns a validator wired to them.
func Bind(doc *document.Document, options ...Option) (*Binding, error) {
	if doc == nil {
		return nil, missing("document")
	}

	cfg := &bindConfig{styles: styles.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	nameInput := doc.Query(SelectorName)
	if nameInput == nil {
		return nil, missing(SelectorName)
	}
	emailInput := doc.Query(SelectorEmail)
	if emailInput == nil {
		return nil, missing(SelectorEmail)
	}
	button := doc.Query(SelectorSubmit)
	if button == nil {
		return nil, missing(SelectorSubmit)
	}
	if button.Parent() == nil {
		return nil, missing("parent of " + SelectorSubmit)
	}

	name, err := NewFieldPresenter(nameInput, cfg.styles)
	if err != nil {
		return nil, err
	}
	email, err := NewFieldPresenter(emailInput, cfg.styles)
	if err != nil {
		return nil, err
	}

	b := &Binding{
		doc: doc,
		fields: map[validator.FieldID]*FieldPresenter{
			validator.FieldName:  name,
			validator.FieldEmail: email,
		},
		submit: NewSubmitControl(button),
		notice: NewNotice(button.Parent(), cfg.styles),
	}

	opts := []validator.Option{
		validator.WithFieldLabel(validator.FieldName, inputLabel(nameInput)),
		validator.WithFieldLabel(validator.FieldEmail, inputLabel(emailInput)),
	}
	opts = append(opts, cfg.validators...)
	opts = append(opts, validator.WithResetLocker(&b.mu))

	v, err := validator.New(name, email, b.submit, b.notice, opts...)
	if err != nil {
		return nil, fmt.Errorf("dom: bind validator: %w", err)
	}
	b.validator = v
	return b, nil
}

// Input records raw as the field's current text and runs validation, the
// way an input event would.
func (b *Binding) Input(id validator.FieldID, raw string) (validator.FieldState, error) {
	field, ok := b.fields[id]
	if !ok {
		return validator.FieldState{}, fmt.Errorf("%w: %q", validator.ErrUnknownField, id)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	field.Input().SetValue(raw)
	return b.validator.OnFieldInput(id, raw)
}

// Submit clicks the submit button.
func (b *Binding) Submit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.validator.OnSubmit()
}

// HTML renders the bound document.
func (b *Binding) HTML() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.doc.HTML()
}

// Close cancels a pending reset.
func (b *Binding) Close() {
	b.validator.Close()
}

// Validator returns the bound validator.
func (b *Binding) Validator() *validator.FormValidator {
	return b.validator
}

// Document returns the bound document.
func (b *Binding) Document() *document.Document {
	return b.doc
}

// Field returns the presenter of id.
func (b *Binding) Field(id validator.FieldID) (*FieldPresenter, bool) {
	field, ok := b.fields[id]
	return field, ok
}

// Notice returns the confirmation notice presenter.
func (b *Binding) Notice() *Notice {
	return b.notice
}

// SubmitControl returns the submit control.
func (b *Binding) SubmitControl() *SubmitControl {
	return b.submit
}

func inputLabel(input *document.Element) string {
	if name, ok := input.Attr("name"); ok && strings.TrimSpace(name) != "" {
		return name
	}
	return input.ID()
}
