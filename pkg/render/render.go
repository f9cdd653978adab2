// Package render hands a sampled surface to a display or file sink.
// The numeric core never imports a graphics library; callers pick a
// Renderer by name from a Registry.
package render

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/chazu/mobius/pkg/surface"
	"github.com/samber/lo"
)

var (
	// ErrUnknownRenderer is returned by Registry.New for unregistered names.
	ErrUnknownRenderer = errors.New("render: unknown renderer")

	// ErrNilMesh is returned when a renderer is handed no surface.
	ErrNilMesh = errors.New("render: nil mesh")
)

// Renderer displays or stores one sampled surface.
type Renderer interface {
	Render(m *surface.Mesh) error
}

// Func adapts a plain function to the Renderer interface.
type Func func(m *surface.Mesh) error

// Render calls f(m).
func (f Func) Render(m *surface.Mesh) error {
	return f(m)
}

// Nop discards the mesh. Used for headless runs and tests.
type Nop struct{}

// Render does nothing.
func (Nop) Render(*surface.Mesh) error { return nil }

// Factory builds a renderer. out is the user-supplied output path (may be
// empty) and stdout is where console output goes.
type Factory func(out string, stdout io.Writer) (Renderer, error)

// Registry maps renderer names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry holding the built-in renderers:
// none, stl, json and term.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("none", func(string, io.Writer) (Renderer, error) {
		return Nop{}, nil
	})
	r.Register("stl", func(out string, _ io.Writer) (Renderer, error) {
		if out == "" {
			out = "mobius.stl"
		}
		return NewSTL(out), nil
	})
	r.Register("json", func(out string, stdout io.Writer) (Renderer, error) {
		if out == "" {
			out = "mobius.json"
		}
		if out == "-" {
			return &JSON{W: stdout, Name: "mobius"}, nil
		}
		return &JSONFile{Path: out, Name: "mobius"}, nil
	})
	r.Register("term", func(_ string, stdout io.Writer) (Renderer, error) {
		return &Term{W: stdout}, nil
	})
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Names returns the registered renderer names in sorted order.
func (r *Registry) Names() []string {
	names := lo.Keys(r.factories)
	sort.Strings(names)
	return names
}

// New builds the renderer registered under name.
func (r *Registry) New(name, out string, stdout io.Writer) (Renderer, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %v", ErrUnknownRenderer, name, r.Names())
	}
	return f(out, stdout)
}
