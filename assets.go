package formcheck

import (
	"io/fs"

	"github.com/goliatone/go-formcheck/pkg/page"
)

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}

// RuntimeAssetsFS exposes the browser client.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(formcheck.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return page.AssetsFS()
}
