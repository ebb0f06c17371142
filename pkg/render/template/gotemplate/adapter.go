// Package gotemplate adapts github.com/goliatone/go-template to the
// template.TemplateRenderer seam and adds the filters chart templates use.
package gotemplate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-shapegen/pkg/pathdata"
	"github.com/goliatone/go-shapegen/pkg/render/template"
)

// DefaultExtension is appended to template names without one.
const DefaultExtension = ".tmpl"

// Option configures the adapter before the engine loads.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
	extension string
	engine    []gotemplatepkg.Option
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides DefaultExtension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGoTemplateOptions forwards options to the go-template engine, applied
// after the adapter's own, e.g. WithTemplateFunc or WithGlobalData.
func WithGoTemplateOptions(options ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		for _, opt := range options {
			if opt != nil {
				cfg.engine = append(cfg.engine, opt)
			}
		}
	}
}

// Engine satisfies template.TemplateRenderer with a go-template engine.
type Engine struct {
	engine *gotemplatepkg.Engine
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New loads a go-template engine with the svgnum filter registered.
func New(options ...Option) (*Engine, error) {
	cfg := config{extension: DefaultExtension}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	engineOptions := []gotemplatepkg.Option{
		gotemplatepkg.WithExtension(cfg.extension),
		gotemplatepkg.WithTemplateFunc(map[string]any{
			"svgnum": pongo2.FilterFunction(filterSVGNumber),
		}),
	}
	if cfg.baseDir != "" {
		engineOptions = append(engineOptions, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}
	if cfg.templates != nil {
		engineOptions = append(engineOptions, gotemplatepkg.WithFS(cfg.templates))
	}
	engineOptions = append(engineOptions, cfg.engine...)

	engine, err := gotemplatepkg.NewRenderer(engineOptions...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load engine: %w", err)
	}
	return &Engine{engine: engine}, nil
}

// Render renders a named template, or template content when name contains
// template syntax.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	return e.engine.Render(name, data, out...)
}

func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	rendered, err := e.engine.RenderTemplate(name, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: render %s: %w", name, err)
	}
	return rendered, nil
}

func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	rendered, err := e.engine.RenderString(templateContent, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: render string: %w", err)
	}
	return rendered, nil
}

// RegisterFilter registers a process-wide filter. Taken names return
// template.ErrFilterExists.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if err := e.ready(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: %w: %q", template.ErrFilterExists, name)
	}
	return e.engine.RegisterFilter(name, fn)
}

// GlobalContext merges data into the values every template sees.
func (e *Engine) GlobalContext(data any) error {
	if err := e.ready(); err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := e.engine.GlobalContext(data); err != nil {
		return fmt.Errorf("gotemplate: global context: %w", err)
	}
	return nil
}

func (e *Engine) ready() error {
	if e == nil || e.engine == nil {
		return errors.New("gotemplate: engine is nil")
	}
	return nil
}

// filterSVGNumber formats numbers the way path descriptions do: shortest
// round-trip form, no exponent, no negative zero.
func filterSVGNumber(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.IsNumber() {
		return in, nil
	}
	return pongo2.AsValue(pathdata.Number(in.Float())), nil
}
