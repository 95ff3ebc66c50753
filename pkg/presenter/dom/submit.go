package dom

import (
	"github.com/goliatone/go-formcheck/pkg/document"
	"github.com/goliatone/go-formcheck/pkg/styles"
	"github.com/goliatone/go-formcheck/pkg/validator"
)

// SubmitControl toggles the disabled attribute of the submit button.
type SubmitControl struct {
	button *document.Element
}

var _ validator.SubmitControl = (*SubmitControl)(nil)

// NewSubmitControl wraps button.
func NewSubmitControl(button *document.Element) *SubmitControl {
	return &SubmitControl{button: button}
}

func (s *SubmitControl) Enabled() bool {
	return !s.button.HasAttr("disabled")
}

func (s *SubmitControl) SetEnabled(enabled bool) {
	if enabled {
		s.button.RemoveAttr("disabled")
		return
	}
	s.button.SetAttr("disabled", "true")
}

// Notice appends the confirmation paragraph to the submit button's parent.
type Notice struct {
	parent  *document.Element
	styles  styles.Styles
	current *document.Element
}

var _ validator.Notice = (*Notice)(nil)

// NewNotice attaches notices under parent.
func NewNotice(parent *document.Element, s styles.Styles) *Notice {
	return &Notice{parent: parent, styles: s}
}

func (n *Notice) Show(message string) {
	n.Hide()

	msg := document.NewElement("p")
	msg.SetText(sanitizeMessage(message))
	msg.AddClass(n.styles.NoticeClasses...)
	msg.SetStyle("color", n.styles.NoticeColor)
	msg.SetStyle("background-color", n.styles.NoticeBackground)
	n.parent.AppendChild(msg)
	n.current = msg
}

func (n *Notice) Hide() {
	if n.current == nil {
		return
	}
	n.current.Remove()
	n.current = nil
}

// Text returns the visible notice, if any.
func (n *Notice) Text() string {
	if n.current == nil {
		return ""
	}
	return n.current.Text()
}

// Element returns the visible notice element, or nil.
func (n *Notice) Element() *document.Element {
	return n.current
}
