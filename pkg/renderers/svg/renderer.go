// Package svg serialises markup trees to SVG text through a template engine.
package svg

import (
	"context"
	"fmt"
	"errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/goliatone/go-shapegen/pkg/markup"
	"github.com/goliatone/go-shapegen/pkg/render"
	rendertemplate "github.com/goliatone/go-shapegen/pkg/render/template"
	gotemplate "github.com/goliatone/go-shapegen/pkg/render/template/gotemplate"
)

// Name is the registry name of the SVG renderer.
const Name = "svg"

// Namespace is exposed to templates as the svgns global.
const Namespace = "http://www.w3.org/2000/svg"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	sanitize         bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templatesDir = path
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitize filters rendered chart markup through an allowlist of SVG
// elements and attributes. Use it when Raw nodes or attribute values come
// from untrusted input.
func WithSanitize(enabled bool) Option {
	return func(cfg *config) {
		cfg.sanitize = enabled
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	sanitize  bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the SVG renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		source := gotemplate.WithFS(cfg.templateFS)
		if cfg.templatesDir != "" {
			source = gotemplate.WithBaseDir(cfg.templatesDir)
		}
		engine, err := gotemplate.New(source, gotemplate.WithExtension(".tmpl"))
		if err != nil {
			return nil, fmt.Errorf("svg renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	if err := renderer.RegisterFilter("cssvars", filterCSSVars); err != nil && !errors.Is(err, rendertemplate.ErrFilterExists) {
		return nil, fmt.Errorf("svg renderer: register cssvars filter: %w", err)
	}
	if err := renderer.GlobalContext(map[string]any{"svgns": Namespace}); err != nil {
		return nil, fmt.Errorf("svg renderer: seed template globals: %w", err)
	}

	return &Renderer{templates: renderer, sanitize: cfg.sanitize}, nil
}

// filterCSSVars renders a map of custom properties as a :root rule.
func filterCSSVars(input any, _ any) (any, error) {
	vars, err := cast.ToStringMapStringE(input)
	if err != nil {
		return nil, fmt.Errorf("cssvars: %w", err)
	}
	return cssVarsStyle(vars), nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "image/svg+xml"
}

// Render serialises node. In standalone mode the output is a complete SVG
// document; otherwise it is a fragment suitable for embedding.
func (r *Renderer) Render(ctx context.Context, node markup.Node, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, render.Wrap(Name, "", fmt.Errorf("template renderer is nil"))
	}
	if node == nil {
		return nil, render.Wrap(Name, "", render.ErrNilNode)
	}
	if err := ctx.Err(); err != nil {
		return nil, render.Wrap(Name, "", err)
	}

	var body strings.Builder
	if err := r.writeNode(&body, node); err != nil {
		return nil, err
	}
	out := body.String()
	if r.sanitize {
		out = sanitizeMarkup(out)
	}
	render.Logger().Debug("svg rendered", "bytes", len(out), "standalone", options.Standalone)

	if !options.Standalone {
		return []byte(out), nil
	}

	doc, err := r.templates.RenderTemplate(DocumentTemplate, documentView(out, options))
	if err != nil {
		return nil, render.Wrap(Name, "svg", err)
	}
	return []byte(doc), nil
}

func (r *Renderer) writeNode(b *strings.Builder, node markup.Node) error {
	switch n := node.(type) {
	case nil:
		return nil
	case *markup.Element:
		if n == nil {
			return nil
		}
		return r.writeElement(b, n)
	case markup.Fragment:
		for _, child := range n {
			if err := r.writeNode(b, child); err != nil {
				return err
			}
		}
		return nil
	case markup.Text:
		if n == "" {
			return nil
		}
		out, err := r.templates.RenderTemplate(TextTemplate, map[string]any{"text": string(n)})
		if err != nil {
			return render.Wrap(Name, "", err)
		}
		b.WriteString(out)
		return nil
	case markup.Raw:
		b.WriteString(string(n))
		return nil
	default:
		render.Logger().Warn("svg: skipping unsupported node", "type", fmt.Sprintf("%T", node))
		return nil
	}
}

func (r *Renderer) writeElement(b *strings.Builder, el *markup.Element) error {
	tag := strings.TrimSpace(el.Tag)
	if !validName(tag) {
		return render.Wrap(Name, el.Tag, fmt.Errorf("invalid tag name"))
	}

	var inner strings.Builder
	for _, child := range el.Children {
		if err := r.writeNode(&inner, child); err != nil {
			return err
		}
	}

	out, err := r.templates.RenderTemplate(ElementTemplate, map[string]any{
		"tag":   tag,
		"attrs": attributeView(el.Attrs),
		"inner": inner.String(),
	})
	if err != nil {
		return render.Wrap(Name, tag, err)
	}
	b.WriteString(out)
	return nil
}

func attributeView(attrs markup.Attributes) []any {
	out := make([]any, 0, len(attrs))
	for _, key := range attrs.Keys() {
		if !validName(key) {
			render.Logger().Warn("svg: dropping invalid attribute", "name", key)
			continue
		}
		out = append(out, map[string]any{"name": key, "value": attrs[key]})
	}
	return out
}

func documentView(body string, options render.RenderOptions) map[string]any {
	view := map[string]any{
		"body":       body,
		"viewBox":    options.ResolvedViewBox(),
		"background": strings.TrimSpace(options.Background),
	}
	if options.Width > 0 {
		view["width"] = strconv.Itoa(options.Width)
	}
	if options.Height > 0 {
		view["height"] = strconv.Itoa(options.Height)
	}
	if cfg := options.Theme; cfg != nil {
		view["theme"] = strings.TrimSpace(strings.Join(nonEmpty(cfg.Theme, cfg.Variant), "-"))
		if len(cfg.CSSVars) > 0 {
			view["cssVars"] = cfg.CSSVars
		}
	}
	return view
}
