package shapegen

import (
	"io/fs"

	"github.com/goliatone/go-shapegen/pkg/renderers/svg"
)

// EmbeddedTemplates exposes the built-in SVG renderer templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return svg.TemplatesFS()
}
