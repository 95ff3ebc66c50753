package dom

import (
	"github.com/goliatone/go-formcheck/pkg/document"
	"github.com/goliatone/go-formcheck/pkg/styles"
	"github.com/goliatone/go-formcheck/pkg/validator"
)

// Class names used as styling hooks.
const (
	ClassError       = "text-danger"
	ClassFormControl = "form-control"
	ClassBorder      = "border"
)

// FieldPresenter renders one field. The container is the input's parent; the
// control is the .form-control element inside it.
type FieldPresenter struct {
	input     *document.Element
	container *document.Element
	control   *document.Element
	styles    styles.Styles
}

var _ validator.FieldPresenter = (*FieldPresenter)(nil)

// NewFieldPresenter builds a presenter for input. It fails when input has no
// parent or the parent holds no .form-control element.
func NewFieldPresenter(input *document.Element, s styles.Styles) (*FieldPresenter, error) {
	if input == nil {
		return nil, ErrElementMissing
	}
	container := input.Parent()
	if container == nil {
		return nil, missing("parent of #" + input.ID())
	}
	control := container.Query("." + ClassFormControl)
	if control == nil {
		return nil, missing("." + ClassFormControl + " near #" + input.ID())
	}
	return &FieldPresenter{
		input:     input,
		container: container,
		control:   control,
		styles:    s,
	}, nil
}

// ShowError replaces the current error message and applies the error border.
func (p *FieldPresenter) ShowError(message string) {
	p.removeMessage()

	msg := document.NewElement("p")
	msg.SetText(sanitizeMessage(message))
	msg.AddClass(ClassError)
	p.container.AppendChild(msg)

	p.control.RemoveClass(ClassBorder)
	p.control.SetStyle("border-color", p.styles.ErrorBorder)
	p.control.SetStyle("box-shadow", p.styles.ErrorShadow)
}

// ClearError removes the current error message and applies the success
// border.
func (p *FieldPresenter) ClearError() {
	p.removeMessage()
	p.control.SetStyle("border-color", p.styles.SuccessBorder)
	p.control.SetStyle("box-shadow", p.styles.SuccessShadow)
}

// Reset empties the input and drops the inline border styling. Error
// messages and the removed border class are left in place.
func (p *FieldPresenter) Reset() {
	p.input.SetValue("")
	p.control.SetStyle("border-color", "")
	p.control.SetStyle("box-shadow", "")
}

// Input returns the bound input element.
func (p *FieldPresenter) Input() *document.Element {
	return p.input
}

// Message returns the visible error text, if any.
func (p *FieldPresenter) Message() string {
	if msg := p.container.Query("." + ClassError); msg != nil {
		return msg.Text()
	}
	return ""
}

// Style returns the control's inline style declarations.
func (p *FieldPresenter) Style() string {
	return p.control.StyleString()
}

// Class returns the control's class attribute.
func (p *FieldPresenter) Class() string {
	class, _ := p.control.Attr("class")
	return class
}

func (p *FieldPresenter) removeMessage() {
	if msg := p.container.Query("." + ClassError); msg != nil {
		msg.Remove()
	}
}
