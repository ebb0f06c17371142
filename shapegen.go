// Package shapegen builds chart shapes as markup trees and renders them to
// SVG or PNG.
package shapegen

import (
	"context"

	"github.com/goliatone/go-shapegen/pkg/components"
	"github.com/goliatone/go-shapegen/pkg/markup"
	"github.com/goliatone/go-shapegen/pkg/render"
	"github.com/goliatone/go-shapegen/pkg/renderers/raster"
	"github.com/goliatone/go-shapegen/pkg/renderers/svg"
)

// Node aliases markup.Node.
type Node = markup.Node

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

type (
	LineRadialProps[D any] = components.LineRadialProps[D]
	LineRadialArgs[D any]  = components.LineRadialArgs[D]
	StackProps[D any]      = components.StackProps[D]
	StackArgs[D any]       = components.StackArgs[D]
	LinePathProps[D any]   = components.LinePathProps[D]
	AreaProps[D any]       = components.AreaProps[D]
)

// LineRadial builds a radial line path; see components.LineRadial.
func LineRadial[D any](p LineRadialProps[D]) Node { return components.LineRadial(p) }

// Stack builds one area path per stacked series; see components.Stack.
func Stack[D any](p StackProps[D]) Node { return components.Stack(p) }

// LinePath builds a cartesian line path.
func LinePath[D any](p LinePathProps[D]) Node { return components.LinePath(p) }

// Area builds a cartesian area path.
func Area[D any](p AreaProps[D]) Node { return components.Area(p) }

// NewRegistry returns a registry with the SVG and PNG renderers registered.
func NewRegistry(options ...svg.Option) (*render.Registry, error) {
	svgRenderer, err := svg.New(options...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	if err := registry.Register(svgRenderer); err != nil {
		return nil, err
	}
	if err := registry.Register(raster.New()); err != nil {
		return nil, err
	}
	return registry, nil
}

// RenderSVG serialises node with the default SVG renderer.
func RenderSVG(ctx context.Context, node Node, opts RenderOptions) ([]byte, error) {
	r, err := svg.New()
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, node, opts)
}

// RenderPNG rasterises node. opts.Width and opts.Height are required.
func RenderPNG(ctx context.Context, node Node, opts RenderOptions) ([]byte, error) {
	return raster.New().Render(ctx, node, opts)
}
