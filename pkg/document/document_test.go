package document_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/document"
)

const formMarkup = `<form id="form">
  <div class="field">
    <input type="text" id="name" name="name" class="form-control border">
  </div>
  <div class="field">
    <input type="email" id="email" name="email" class="form-control border" style="color: blue">
  </div>
  <div class="actions">
    <button type="button" class="btn btn-validate" disabled>Validate</button>
  </div>
</form>`

func mustParse(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.ParseString(formMarkup)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestQuery_Selectors(t *testing.T) {
	doc := mustParse(t)

	cases := map[string]string{
		"#name":                "name",
		"#email":               "email",
		"input.form-control":   "name",
		"input#email":          "email",
		".form-control.border": "name",
	}
	for sel, wantID := range cases {
		el := doc.Query(sel)
		if el == nil {
			t.Fatalf("%s: no match", sel)
		}
		if el.ID() != wantID {
			t.Fatalf("%s: got id %q, want %q", sel, el.ID(), wantID)
		}
	}

	button := doc.Query(".btn-validate")
	if button == nil || button.Tag != "button" || !button.HasAttr("disabled") {
		t.Fatalf("unexpected button %+v", button)
	}
	if got := len(doc.QueryAll(".field")); got != 2 {
		t.Fatalf("expected 2 fields, got %d", got)
	}
	if doc.Query("#missing") != nil {
		t.Fatalf("expected nil for missing id")
	}
	if got := doc.Query("div > input"); got == nil || got.ID() != "name" {
		t.Fatalf("child combinator: got %+v", got)
	}
	if got := doc.Query(".actions button[disabled]"); got != button {
		t.Fatalf("descendant with attribute: got %+v", got)
	}
	if got := doc.Query(`input[type="email"]`); got == nil || got.ID() != "email" {
		t.Fatalf("attribute selector: got %+v", got)
	}
}

func TestQuery_CombinatorsSeeAncestors(t *testing.T) {
	doc := mustParse(t)
	field := doc.Query("#email").Parent()
	if got := field.Query("form .field input"); got == nil || got.ID() != "email" {
		t.Fatalf("expected #email through ancestor context, got %+v", got)
	}
	if got := field.QueryAll("#name"); len(got) != 0 {
		t.Fatalf("matches outside the scope: %+v", got)
	}
}

func TestParseStyle_Declarations(t *testing.T) {
	doc, err := document.ParseString(`<input id="x" style="COLOR: red ; background: url(a;b.png); margin: 0 !important">`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	x := doc.Query("#x")
	want := "color: red; background: url(a;b.png); margin: 0 !important;"
	if diff := cmp.Diff(want, x.StyleString()); diff != "" {
		t.Fatalf("style mismatch (-want +got):\n%s", diff)
	}
}

func TestQuery_SearchesDescendantsOnly(t *testing.T) {
	doc := mustParse(t)
	field := doc.Query("#name").Parent()
	if field.Query(".field") != nil {
		t.Fatalf("query must not match the element itself")
	}
	if field.Query(".form-control") == nil {
		t.Fatalf("expected form-control under the field container")
	}
}

func TestElement_StylesAndClasses(t *testing.T) {
	doc := mustParse(t)
	email := doc.Query("#email")

	if email.Style("color") != "blue" {
		t.Fatalf("inline style not parsed: %q", email.StyleString())
	}
	email.SetStyle("border-color", "red")
	email.SetStyle("box-shadow", "0 0 0 0.3rem rgba(255, 0, 0, 0.25)")
	email.SetStyle("color", "")
	if got := email.StyleString(); got != "border-color: red; box-shadow: 0 0 0 0.3rem rgba(255, 0, 0, 0.25);" {
		t.Fatalf("unexpected style %q", got)
	}

	email.RemoveClass("border")
	email.AddClass("is-invalid", "form-control")
	if diff := cmp.Diff([]string{"form-control", "is-invalid"}, email.Classes()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}

	email.SetStyle("border-color", "")
	email.SetStyle("box-shadow", "")
	if email.HasAttr("style") {
		t.Fatalf("style attribute should disappear once empty")
	}
}

func TestElement_AppendAndRemove(t *testing.T) {
	doc := mustParse(t)
	field := doc.Query("#name").Parent()

	p := document.NewElement("p")
	p.SetText("field name must not be empty")
	p.AddClass("text-danger")
	field.AppendChild(p)

	found := field.Query(".text-danger")
	if found != p || found.Text() != "field name must not be empty" {
		t.Fatalf("appended element not found")
	}

	p.Remove()
	if field.Query(".text-danger") != nil || p.Parent() != nil {
		t.Fatalf("element not detached")
	}
	p.Remove()
}

func TestElement_Value(t *testing.T) {
	doc := mustParse(t)
	name := doc.Query("#name")
	name.SetValue("Ana")
	if name.Value() != "Ana" {
		t.Fatalf("value not stored")
	}
	name.SetValue("")
	if name.Value() != "" {
		t.Fatalf("value not cleared")
	}

	area := document.NewElement("textarea")
	area.SetValue("hello")
	if area.Text() != "hello" || area.Value() != "hello" {
		t.Fatalf("textarea value should live in its text")
	}
}

func TestRender_RoundTrip(t *testing.T) {
	doc := mustParse(t)
	field := doc.Query("#name").Parent()
	p := document.NewElement("p")
	p.SetText("a < b & c")
	p.AddClass("text-danger")
	field.AppendChild(p)

	out := doc.HTML()
	for _, want := range []string{
		`<p class="text-danger">a &lt; b &amp; c</p>`,
		`<button type="button" disabled="" class="btn btn-validate">Validate</button>`,
		`style="color: blue;"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered output missing %q:\n%s", want, out)
		}
	}

	again, err := document.ParseString(out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if got := again.Query(".text-danger").Text(); got != "a < b & c" {
		t.Fatalf("text lost in round trip: %q", got)
	}
}

func TestParse_FullPageKeepsDoctype(t *testing.T) {
	doc, err := document.Parse(strings.NewReader("<!DOCTYPE html><html><head><title>x</title></head><body>" + formMarkup + "</body></html>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Query("#email") == nil {
		t.Fatalf("expected email input in page")
	}
	if out := doc.HTML(); !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Fatalf("doctype not rendered: %q", out[:20])
	}
}

func TestSelectorErrors(t *testing.T) {
	doc := mustParse(t)
	for _, sel := range []string{"", "#", "#a#b", "a b"} {
		if doc.Query(sel) != nil {
			t.Fatalf("%q should not match", sel)
		}
	}
	for _, sel := range []string{"", "a..b", "div >", "#"} {
		if !errors.Is(document.ValidateSelector(sel), document.ErrInvalidSelector) {
			t.Fatalf("%q: expected ErrInvalidSelector", sel)
		}
	}
	if err := document.ValidateSelector("button.btn-validate"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
