package render

import (
	"context"

	"github.com/goliatone/go-shapegen/pkg/markup"
)

// Renderer converts a markup tree into a byte representation (SVG, PNG, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, node markup.Node, options RenderOptions) ([]byte, error)
}
