package render

import (
	"errors"
	"fmt"
)

// ErrNilNode is returned when a renderer is asked to render nothing.
var ErrNilNode = errors.New("render: node is nil")

// ErrInvalidSize is returned by renderers that need positive dimensions.
var ErrInvalidSize = errors.New("render: width and height must be positive")

// RenderError wraps a renderer failure with the renderer name and the tag of
// the element being rendered, when known.
type RenderError struct {
	Renderer string
	Node     string
	Err      error
}

func (e *RenderError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("%s renderer: %v", e.Renderer, e.Err)
	}
	return fmt.Sprintf("%s renderer: <%s>: %v", e.Renderer, e.Node, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Wrap returns err as a *RenderError unless it is nil or already one.
func Wrap(renderer, node string, err error) error {
	if err == nil {
		return nil
	}
	var re *RenderError
	if errors.As(err, &re) {
		return err
	}
	return &RenderError{Renderer: renderer, Node: node, Err: err}
}
