package template

import (
	"errors"
	"io"
)

// ErrFilterExists is returned by RegisterFilter when the name is taken.
// Filters are process-wide, so renderers built more than once may ignore it.
var ErrFilterExists = errors.New("template: filter already registered")

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract. Renderers depend on this seam so callers can swap engines.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
