package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// TemplatesFS exposes the embedded template bundle so callers can wrap or
// override it.
func TemplatesFS() fs.FS {
	return templatesFS
}
