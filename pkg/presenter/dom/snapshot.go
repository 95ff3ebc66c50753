package dom

import (
	"github.com/goliatone/go-formcheck/pkg/validator"
)

// FieldSnapshot is the rendered state of one field.
type FieldSnapshot struct {
	ID    validator.FieldID `json:"id"`
	Value string            `json:"value"`
	Class string            `json:"class"`
	Style string            `json:"style"`
	Error string            `json:"error,omitempty"`
	Phase string            `json:"phase"`
}

// NoticeSnapshot is the rendered confirmation notice.
type NoticeSnapshot struct {
	Text  string `json:"text"`
	Class string `json:"class"`
	Style string `json:"style"`
}

// Snapshot is the rendered state of the whole widget, suitable for pushing
// to a browser that mirrors the document.
type Snapshot struct {
	Fields         []FieldSnapshot `json:"fields"`
	SubmitDisabled bool            `json:"submitDisabled"`
	Notice         *NoticeSnapshot `json:"notice,omitempty"`
}

// Snapshot captures the current document state.
func (b *Binding) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := Snapshot{
		SubmitDisabled: !b.submit.Enabled(),
	}
	for _, state := range b.validator.States() {
		field := b.fields[state.ID]
		out.Fields = append(out.Fields, FieldSnapshot{
			ID:    state.ID,
			Value: field.Input().Value(),
			Class: field.Class(),
			Style: field.Style(),
			Error: field.Message(),
			Phase: state.Phase.String(),
		})
	}
	if el := b.notice.Element(); el != nil {
		class, _ := el.Attr("class")
		out.Notice = &NoticeSnapshot{
			Text:  el.Text(),
			Class: class,
			Style: el.StyleString(),
		}
	}
	return out
}
