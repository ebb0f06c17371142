// Package raster draws markup trees into PNG previews. Only path elements
// that carry their source geometry are drawn; group translations and
// fill/stroke colours are honoured.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/goliatone/go-shapegen/pkg/markup"
	"github.com/goliatone/go-shapegen/pkg/render"
)

// Name is the registry name of the PNG renderer.
const Name = "png"

type Option func(*config)

type config struct {
	defaultFill string
	lineWidth   float64
}

// WithDefaultFill sets the colour used for paths without a fill attribute.
// SVG fills such paths black; pass an empty string to skip them instead.
func WithDefaultFill(hex string) Option {
	return func(cfg *config) {
		cfg.defaultFill = strings.TrimSpace(hex)
	}
}

// WithLineWidth sets the stroke width used when stroke-width is absent.
func WithLineWidth(width float64) Option {
	return func(cfg *config) {
		if width > 0 {
			cfg.lineWidth = width
		}
	}
}

type Renderer struct {
	cfg config
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the raster renderer.
func New(options ...Option) *Renderer {
	cfg := config{defaultFill: "#000", lineWidth: 1}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Renderer{cfg: cfg}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "image/png"
}

// Render rasterises node onto a Width x Height canvas and encodes it as PNG.
func (r *Renderer) Render(ctx context.Context, node markup.Node, options render.RenderOptions) ([]byte, error) {
	if node == nil {
		return nil, render.Wrap(Name, "", render.ErrNilNode)
	}
	if options.Width <= 0 || options.Height <= 0 {
		return nil, render.Wrap(Name, "", render.ErrInvalidSize)
	}

	dc := gg.NewContext(options.Width, options.Height)
	defer func() { _ = dc.Close() }()

	if bg, ok := parseColor(options.Background); ok {
		dc.ClearWithColor(gg.Hex(bg))
	}

	if err := r.draw(ctx, dc, node); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, render.Wrap(Name, "", fmt.Errorf("encode png: %w", err))
	}
	render.Logger().Debug("png rendered", "width", options.Width, "height", options.Height, "bytes", buf.Len())
	return buf.Bytes(), nil
}

func (r *Renderer) draw(ctx context.Context, dc *gg.Context, node markup.Node) error {
	if err := ctx.Err(); err != nil {
		return render.Wrap(Name, "", err)
	}
	switch n := node.(type) {
	case *markup.Element:
		if n == nil {
			return nil
		}
		return r.drawElement(ctx, dc, n)
	case markup.Fragment:
		for _, child := range n {
			if err := r.draw(ctx, dc, child); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) drawElement(ctx context.Context, dc *gg.Context, el *markup.Element) error {
	dc.Push()
	defer dc.Pop()

	if transform := el.Attrs.Get("transform"); transform != "" {
		x, y, ok := parseTranslate(transform)
		if !ok {
			render.Logger().Warn("png: ignoring unsupported transform", "transform", transform)
		} else {
			dc.Translate(x, y)
		}
	}

	if el.Geometry != nil {
		if err := r.paint(dc, el); err != nil {
			return render.Wrap(Name, el.Tag, err)
		}
	} else if el.Tag == "path" && el.Attrs.Get("d") != "" {
		render.Logger().Warn("png: skipping path without geometry", "d", el.Attrs.Get("d"))
	}

	for _, child := range el.Children {
		if err := r.draw(ctx, dc, child); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) paint(dc *gg.Context, el *markup.Element) error {
	fill, hasFill := el.Attrs["fill"]
	if !hasFill {
		fill = r.cfg.defaultFill
	}
	if color, ok := parseColor(fill); ok {
		replay(dc, el.Geometry)
		dc.SetHexColor(color)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}

	if color, ok := parseColor(el.Attrs.Get("stroke")); ok {
		width := r.cfg.lineWidth
		if w, err := strconv.ParseFloat(strings.TrimSpace(el.Attrs.Get("stroke-width")), 64); err == nil && w > 0 {
			width = w
		}
		replay(dc, el.Geometry)
		dc.SetHexColor(color)
		dc.SetLineWidth(width)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
	}
	return nil
}

// replay copies path elements into the context so they pick up its current
// transform.
func replay(dc *gg.Context, p *gg.Path) {
	dc.ClearPath()
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}
