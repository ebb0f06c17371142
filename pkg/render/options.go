package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-shapegen/pkg/pathdata"
)

// RenderOptions describe per-request presentation settings. Renderers that do
// not need a field ignore it.
type RenderOptions struct {
	// Width and Height size the output document. Raster renderers require
	// both; the SVG renderer only emits them in standalone mode.
	Width  int
	Height int
	// ViewBox overrides the "0 0 width height" default in standalone mode.
	ViewBox string
	// Standalone wraps fragments in a root <svg> element.
	Standalone bool
	// Theme exposes go-theme tokens and CSS variables. CSS variables become a
	// <style> block in standalone SVG output.
	Theme *theme.RendererConfig
	// Background fills the canvas before drawing. Empty leaves it transparent.
	Background string
}

// ResolvedViewBox returns ViewBox or the default derived from Width/Height.
func (o RenderOptions) ResolvedViewBox() string {
	if vb := strings.TrimSpace(o.ViewBox); vb != "" {
		return vb
	}
	if o.Width <= 0 || o.Height <= 0 {
		return ""
	}
	return "0 0 " + pathdata.Number(float64(o.Width)) + " " + pathdata.Number(float64(o.Height))
}
