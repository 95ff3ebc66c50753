// Package page renders the browser form with a pongo2 template set. The
// form fragment (form.tpl) is also what a server session parses into its
// document, so the markup rendered to the browser and the markup the
// validator mutates stay identical.
package page
