package svg

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Template names resolved against the template bundle.
const (
	ElementTemplate  = "templates/element.tmpl"
	TextTemplate     = "templates/text.tmpl"
	DocumentTemplate = "templates/document.tmpl"
)

// TemplatesFS exposes the embedded template bundle so callers can copy and
// override individual templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
