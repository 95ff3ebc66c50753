package page

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	FormTemplate   = "form"
	PageTemplate   = "page"
	ClientScript   = "formcheck.js"
	templateSubdir = "templates"
)

// TemplatesFS exposes the built-in templates rooted at their directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, templateSubdir)
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// AssetsFS exposes the browser client script.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
