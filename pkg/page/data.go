package page

import (
	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formcheck/pkg/validator"
)

// Field describes one rendered input.
type Field struct {
	ID          validator.FieldID
	Label       string
	Type        string
	Placeholder string
}

// Data feeds the form and page templates.
type Data struct {
	Title       string
	Heading     string
	SubmitLabel string
	Fields      []Field
	SocketPath  string
	AssetsPath  string
}

// DefaultData returns the stock two-field form.
func DefaultData() Data {
	return Data{
		Title:       "Form validation",
		Heading:     "Contact",
		SubmitLabel: "Validate",
		Fields: []Field{
			{ID: validator.FieldName, Label: "Name", Type: "text", Placeholder: "Your name"},
			{ID: validator.FieldEmail, Label: "Email", Type: "email", Placeholder: "you@example.com"},
		},
		SocketPath: "/ws",
		AssetsPath: "/assets",
	}
}

func (d Data) context() pongo2.Context {
	fields := make([]map[string]any, 0, len(d.Fields))
	for _, f := range d.Fields {
		fields = append(fields, map[string]any{
			"id":          string(f.ID),
			"label":       f.Label,
			"type":        f.Type,
			"placeholder": f.Placeholder,
		})
	}
	return pongo2.Context{
		"title":        d.Title,
		"heading":      d.Heading,
		"submit_label": d.SubmitLabel,
		"fields":       fields,
		"socket_path":  d.SocketPath,
		"assets_path":  d.AssetsPath,
	}
}
